package services

import (
	"context"
	"errors"

	"workpass/internal/models"
	"workpass/internal/repository"
	"workpass/internal/scoring"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	expiringWindowDays  = 60
	recentActivityLimit = 10
)

// DashboardData is the aggregate payload for the dashboard endpoint.
type DashboardData struct {
	User                *models.User                   `json:"user"`
	Profile             *models.UserProfile            `json:"profile"`
	Credentials         []models.Credential            `json:"credentials"`
	ExpiringCredentials []models.Credential            `json:"expiring_credentials"`
	RecentActivity      []models.UserActivity          `json:"recent_activity"`
	JobApplications     []models.JobApplicationWithJob `json:"job_applications"`
	WorkReadinessScore  int                            `json:"work_readiness_score"`
}

type DashboardService struct {
	userRepo        repository.UserRepository
	profileRepo     repository.UserProfileRepository
	credentialRepo  repository.CredentialRepository
	activityRepo    repository.ActivityRepository
	applicationRepo repository.JobApplicationRepository
}

func NewDashboardService(
	userRepo repository.UserRepository,
	profileRepo repository.UserProfileRepository,
	credentialRepo repository.CredentialRepository,
	activityRepo repository.ActivityRepository,
	applicationRepo repository.JobApplicationRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		credentialRepo:  credentialRepo,
		activityRepo:    activityRepo,
		applicationRepo: applicationRepo,
	}
}

// GetDashboard assembles the dashboard payload. The user row must
// exist; the five dependent fetches run concurrently and all must
// finish before the score is computed. Nothing is cached, so repeated
// calls with no intervening writes return identical output.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*DashboardData, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &DashboardData{User: user}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.profileRepo.FindByUserID(gctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// "No profile yet" is a legitimate state.
			return nil
		}
		data.Profile = profile
		return err
	})
	g.Go(func() error {
		credentials, err := s.credentialRepo.FindActiveByUserID(gctx, userID)
		data.Credentials = credentials
		return err
	})
	g.Go(func() error {
		expiring, err := s.credentialRepo.FindExpiringWithin(gctx, userID, expiringWindowDays)
		data.ExpiringCredentials = expiring
		return err
	})
	g.Go(func() error {
		activity, err := s.activityRepo.FindRecentByUserID(gctx, userID, recentActivityLimit)
		data.RecentActivity = activity
		return err
	})
	g.Go(func() error {
		applications, err := s.applicationRepo.FindAllByUserIDWithJobs(gctx, userID)
		data.JobApplications = applications
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Score over the full active credential list, not the expiring subset.
	data.WorkReadinessScore = scoring.Score(data.Credentials)

	return data, nil
}
