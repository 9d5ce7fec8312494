package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"workpass/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	jobListCacheKeyPrefix = "jobs:active:"
	jobCacheExpiration    = 30 * time.Minute
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindActive(ctx context.Context, limit int) ([]models.Job, error)
	FindByID(ctx context.Context, id uint) (*models.Job, error)
}

type jobRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db, redis: nil}
}

// NewCachedJobRepository caches active-job listings in redis. Job rows
// change only through the ingestion path, so a short TTL plus
// invalidation on create keeps listings fresh enough.
func NewCachedJobRepository(db *gorm.DB, redisClient *redis.Client) JobRepository {
	return &jobRepository{db: db, redis: redisClient}
}

func jobListCacheKey(limit int) string {
	return fmt.Sprintf("%s%d", jobListCacheKeyPrefix, limit)
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return err
	}
	r.invalidateListings(ctx)
	return nil
}

func (r *jobRepository) FindActive(ctx context.Context, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 50
	}

	if r.redis != nil {
		cached, err := r.redis.Get(ctx, jobListCacheKey(limit)).Result()
		if err == nil {
			var jobs []models.Job
			if err := json.Unmarshal([]byte(cached), &jobs); err == nil {
				return jobs, nil
			}
		} else if err != redis.Nil {
			log.Printf("Job listing cache read failed: %v", err)
		}
	}

	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		if data, err := json.Marshal(jobs); err == nil {
			if err := r.redis.Set(ctx, jobListCacheKey(limit), data, jobCacheExpiration).Err(); err != nil {
				log.Printf("Job listing cache write failed: %v", err)
			}
		}
	}

	return jobs, nil
}

func (r *jobRepository) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) invalidateListings(ctx context.Context) {
	if r.redis == nil {
		return
	}
	iter := r.redis.Scan(ctx, 0, jobListCacheKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.redis.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Job listing cache invalidation failed: %v", err)
		}
	}
}
