package controllers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workpass/internal/controllers"
	"workpass/internal/models"
	"workpass/internal/repository/mocks"
	"workpass/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func setupDashboardControllerWithMocks() (*controllers.DashboardController, *mocks.MockUserRepository, *mocks.MockUserProfileRepository, *mocks.MockCredentialRepository, *mocks.MockActivityRepository, *mocks.MockJobApplicationRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockProfileRepo := new(mocks.MockUserProfileRepository)
	mockCredentialRepo := new(mocks.MockCredentialRepository)
	mockActivityRepo := new(mocks.MockActivityRepository)
	mockApplicationRepo := new(mocks.MockJobApplicationRepository)
	service := services.NewDashboardService(mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo)
	controller := controllers.NewDashboardController(service)
	return controller, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo
}

func TestGetDashboard(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockUserProfileRepository, *mocks.MockCredentialRepository, *mocks.MockActivityRepository, *mocks.MockJobApplicationRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful dashboard",
			setupMocks: func(userRepo *mocks.MockUserRepository, profileRepo *mocks.MockUserProfileRepository, credentialRepo *mocks.MockCredentialRepository, activityRepo *mocks.MockActivityRepository, applicationRepo *mocks.MockJobApplicationRepository) {
				userRepo.On("FindByID", mock.Anything, "usr_1").Return(&models.User{ID: "usr_1"}, nil)
				profileRepo.On("FindByUserID", mock.Anything, "usr_1").Return(&models.UserProfile{ID: 1, UserID: "usr_1"}, nil)
				credentialRepo.On("FindActiveByUserID", mock.Anything, "usr_1").Return([]models.Credential{}, nil)
				credentialRepo.On("FindExpiringWithin", mock.Anything, "usr_1", 60).Return([]models.Credential{}, nil)
				activityRepo.On("FindRecentByUserID", mock.Anything, "usr_1", 10).Return([]models.UserActivity{}, nil)
				applicationRepo.On("FindAllByUserIDWithJobs", mock.Anything, "usr_1").Return([]models.JobApplicationWithJob{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Dashboard retrieved successfully",
		},
		{
			name: "unknown user",
			setupMocks: func(userRepo *mocks.MockUserRepository, profileRepo *mocks.MockUserProfileRepository, credentialRepo *mocks.MockCredentialRepository, activityRepo *mocks.MockActivityRepository, applicationRepo *mocks.MockJobApplicationRepository) {
				userRepo.On("FindByID", mock.Anything, "usr_1").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "User not found",
		},
		{
			name: "database error",
			setupMocks: func(userRepo *mocks.MockUserRepository, profileRepo *mocks.MockUserProfileRepository, credentialRepo *mocks.MockCredentialRepository, activityRepo *mocks.MockActivityRepository, applicationRepo *mocks.MockJobApplicationRepository) {
				userRepo.On("FindByID", mock.Anything, "usr_1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to fetch dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo := setupDashboardControllerWithMocks()
			tt.setupMocks(mockUserRepo, mockProfileRepo, mockCredentialRepo, mockActivityRepo, mockApplicationRepo)

			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/api/dashboard", addAuthMiddleware("usr_1"), controller.GetDashboard)

			req := httptest.NewRequest("GET", "/api/dashboard", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockUserRepo.AssertExpectations(t)
		})
	}
}
