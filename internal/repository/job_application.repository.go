package repository

import (
	"context"

	"workpass/internal/models"

	"gorm.io/gorm"
)

type JobApplicationRepository interface {
	Create(ctx context.Context, application *models.JobApplication) error
	FindByUserAndJob(ctx context.Context, userID string, jobID uint) (*models.JobApplication, error)
	FindAllByUserIDWithJobs(ctx context.Context, userID string) ([]models.JobApplicationWithJob, error)
}

type jobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db}
}

func (r *jobApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *jobApplicationRepository) FindByUserAndJob(ctx context.Context, userID string, jobID uint) (*models.JobApplication, error) {
	var application models.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// FindAllByUserIDWithJobs returns the caller's applications joined with
// their job rows, newest application first.
func (r *jobApplicationRepository) FindAllByUserIDWithJobs(ctx context.Context, userID string) ([]models.JobApplicationWithJob, error) {
	var applications []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return []models.JobApplicationWithJob{}, nil
	}

	jobIDs := make([]uint, 0, len(applications))
	for _, app := range applications {
		jobIDs = append(jobIDs, app.JobID)
	}

	var jobs []models.Job
	if err := r.db.WithContext(ctx).Where("id IN ?", jobIDs).Find(&jobs).Error; err != nil {
		return nil, err
	}

	jobsByID := make(map[uint]models.Job, len(jobs))
	for _, job := range jobs {
		jobsByID[job.ID] = job
	}

	result := make([]models.JobApplicationWithJob, 0, len(applications))
	for _, app := range applications {
		result = append(result, models.JobApplicationWithJob{
			JobApplication: app,
			Job:            jobsByID[app.JobID],
		})
	}
	return result, nil
}
