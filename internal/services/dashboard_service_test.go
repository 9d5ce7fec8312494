package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workpass/internal/models"
	"workpass/internal/repository/mocks"
	"workpass/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupDashboardServiceWithMocks() (*services.DashboardService, *mocks.MockUserRepository, *mocks.MockUserProfileRepository, *mocks.MockCredentialRepository, *mocks.MockActivityRepository, *mocks.MockJobApplicationRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockProfileRepo := new(mocks.MockUserProfileRepository)
	mockCredentialRepo := new(mocks.MockCredentialRepository)
	mockActivityRepo := new(mocks.MockActivityRepository)
	mockApplicationRepo := new(mocks.MockJobApplicationRepository)
	service := services.NewDashboardService(mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo)
	return service, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo
}

func TestGetDashboardAggregatesAllSections(t *testing.T) {
	service, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo := setupDashboardServiceWithMocks()

	user := &models.User{ID: "usr_1", Email: "worker@example.com"}
	profile := &models.UserProfile{ID: 1, UserID: "usr_1", Trade: "carpenter"}
	expiry := time.Now().AddDate(1, 0, 0)
	credentials := []models.Credential{
		{ID: 1, UserID: "usr_1", Type: models.CredentialTypeWhiteCard, VerificationStatus: models.VerificationVerified, ExpiryDate: &expiry, IsActive: true},
		{ID: 2, UserID: "usr_1", Type: models.CredentialTypeFirstAid, VerificationStatus: models.VerificationVerified, ExpiryDate: &expiry, IsActive: true},
		{ID: 3, UserID: "usr_1", Type: models.CredentialTypeLicense, VerificationStatus: models.VerificationVerified, ExpiryDate: &expiry, IsActive: true},
	}
	expiring := []models.Credential{credentials[1]}
	activity := []models.UserActivity{{ID: 1, UserID: "usr_1", Action: models.ActionUploadCredential}}
	applications := []models.JobApplicationWithJob{
		{
			JobApplication: models.JobApplication{ID: 1, UserID: "usr_1", JobID: 3},
			Job:            models.Job{ID: 3, Title: "Carpenter"},
		},
	}

	mockUserRepo.On("FindByID", mock.Anything, "usr_1").Return(user, nil)
	mockProfileRepo.On("FindByUserID", mock.Anything, "usr_1").Return(profile, nil)
	mockCredentialRepo.On("FindActiveByUserID", mock.Anything, "usr_1").Return(credentials, nil)
	mockCredentialRepo.On("FindExpiringWithin", mock.Anything, "usr_1", 60).Return(expiring, nil)
	mockActivityRepo.On("FindRecentByUserID", mock.Anything, "usr_1", 10).Return(activity, nil)
	mockApplicationRepo.On("FindAllByUserIDWithJobs", mock.Anything, "usr_1").Return(applications, nil)

	data, err := service.GetDashboard(context.Background(), "usr_1")

	assert.NoError(t, err)
	assert.Equal(t, user, data.User)
	assert.Equal(t, profile, data.Profile)
	assert.Len(t, data.Credentials, 3)
	assert.Len(t, data.ExpiringCredentials, 1)
	assert.Len(t, data.RecentActivity, 1)
	assert.Len(t, data.JobApplications, 1)
	// Scored over the full active list: both required types plus one bonus.
	assert.Equal(t, 70, data.WorkReadinessScore)

	mockUserRepo.AssertExpectations(t)
	mockCredentialRepo.AssertExpectations(t)
}

func TestGetDashboardUserNotFound(t *testing.T) {
	service, mockUserRepo, _, _, _, _ := setupDashboardServiceWithMocks()

	mockUserRepo.On("FindByID", mock.Anything, "usr_missing").Return(nil, gorm.ErrRecordNotFound)

	data, err := service.GetDashboard(context.Background(), "usr_missing")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetDashboardToleratesMissingProfile(t *testing.T) {
	service, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo := setupDashboardServiceWithMocks()

	mockUserRepo.On("FindByID", mock.Anything, "usr_1").Return(&models.User{ID: "usr_1"}, nil)
	mockProfileRepo.On("FindByUserID", mock.Anything, "usr_1").Return(nil, gorm.ErrRecordNotFound)
	mockCredentialRepo.On("FindActiveByUserID", mock.Anything, "usr_1").Return([]models.Credential{}, nil)
	mockCredentialRepo.On("FindExpiringWithin", mock.Anything, "usr_1", 60).Return([]models.Credential{}, nil)
	mockActivityRepo.On("FindRecentByUserID", mock.Anything, "usr_1", 10).Return([]models.UserActivity{}, nil)
	mockApplicationRepo.On("FindAllByUserIDWithJobs", mock.Anything, "usr_1").Return([]models.JobApplicationWithJob{}, nil)

	data, err := service.GetDashboard(context.Background(), "usr_1")

	assert.NoError(t, err)
	assert.Nil(t, data.Profile)
	assert.Equal(t, 0, data.WorkReadinessScore)
}

func TestGetDashboardPropagatesFetchError(t *testing.T) {
	service, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo := setupDashboardServiceWithMocks()

	fetchErr := errors.New("database error")

	mockUserRepo.On("FindByID", mock.Anything, "usr_1").Return(&models.User{ID: "usr_1"}, nil)
	mockProfileRepo.On("FindByUserID", mock.Anything, "usr_1").Return(nil, gorm.ErrRecordNotFound)
	mockCredentialRepo.On("FindActiveByUserID", mock.Anything, "usr_1").Return(nil, fetchErr)
	mockCredentialRepo.On("FindExpiringWithin", mock.Anything, "usr_1", 60).Return([]models.Credential{}, nil)
	mockActivityRepo.On("FindRecentByUserID", mock.Anything, "usr_1", 10).Return([]models.UserActivity{}, nil)
	mockApplicationRepo.On("FindAllByUserIDWithJobs", mock.Anything, "usr_1").Return([]models.JobApplicationWithJob{}, nil)

	data, err := service.GetDashboard(context.Background(), "usr_1")

	assert.Nil(t, data)
	assert.ErrorIs(t, err, fetchErr)
}
