package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"workpass/internal/controllers"
	"workpass/internal/models"
	"workpass/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOtpTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupOtpControllerWithMocks() (*controllers.OtpController, *mocks.MockOtpRepository, *mocks.MockUserRepository) {
	mockOtpRepo := new(mocks.MockOtpRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	controller := controllers.NewOtpController(mockOtpRepo, mockUserRepo)
	return controller, mockOtpRepo, mockUserRepo
}

func TestNewOtpController(t *testing.T) {
	controller, _, _ := setupOtpControllerWithMocks()
	assert.NotNil(t, controller)
}

func TestSendOtp(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockOtpRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful email otp",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"type":       "email",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {
				otpRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OtpVerification")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP sent successfully",
		},
		{
			name: "successful sms otp",
			requestBody: map[string]interface{}{
				"identifier": "+61400123456",
				"type":       "sms",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {
				otpRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OtpVerification")).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP sent successfully",
		},
		{
			name: "missing identifier",
			requestBody: map[string]interface{}{
				"type": "email",
			},
			setupMocks:     func(otpRepo *mocks.MockOtpRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "unknown channel",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"type":       "carrier_pigeon",
			},
			setupMocks:     func(otpRepo *mocks.MockOtpRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "database error",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"type":       "email",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository) {
				otpRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OtpVerification")).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockOtpRepo, _ := setupOtpControllerWithMocks()
			tt.setupMocks(mockOtpRepo)

			router := setupOtpTestRouter()
			router.POST("/api/send-otp", controller.SendOtp)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/send-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockOtpRepo.AssertExpectations(t)
		})
	}
}

func TestSendOtpStoresSixDigitCode(t *testing.T) {
	controller, mockOtpRepo, _ := setupOtpControllerWithMocks()

	var stored *models.OtpVerification
	mockOtpRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.OtpVerification")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.OtpVerification)
		}).Return(nil)

	router := setupOtpTestRouter()
	router.POST("/api/send-otp", controller.SendOtp)

	body, _ := json.Marshal(map[string]interface{}{
		"identifier": "worker@example.com",
		"type":       "email",
	})
	req := httptest.NewRequest("POST", "/api/send-otp", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, stored)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), stored.Code)
	assert.Equal(t, "worker@example.com", stored.Identifier)
	assert.Equal(t, models.OtpChannelEmail, stored.Channel)
	assert.False(t, stored.IsUsed)
	assert.False(t, stored.ExpiresAt.IsZero())
}

func TestVerifyOtp(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockOtpRepository, *mocks.MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "valid code is consumed",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"code":       "483920",
				"type":       "email",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository, userRepo *mocks.MockUserRepository) {
				otpRepo.On("Consume", mock.Anything, "worker@example.com", "483920", "email").Return(true, nil)
				userRepo.On("SetEmailVerified", mock.Anything, "worker@example.com").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP verified successfully",
		},
		{
			name: "valid sms code marks phone verified",
			requestBody: map[string]interface{}{
				"identifier": "+61400123456",
				"code":       "271045",
				"type":       "sms",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository, userRepo *mocks.MockUserRepository) {
				otpRepo.On("Consume", mock.Anything, "+61400123456", "271045", "sms").Return(true, nil)
				userRepo.On("SetPhoneVerified", mock.Anything, "+61400123456").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "OTP verified successfully",
		},
		{
			name: "used or expired code is rejected",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"code":       "483920",
				"type":       "email",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository, userRepo *mocks.MockUserRepository) {
				otpRepo.On("Consume", mock.Anything, "worker@example.com", "483920", "email").Return(false, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid or expired OTP",
		},
		{
			name: "missing code",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"type":       "email",
			},
			setupMocks:     func(otpRepo *mocks.MockOtpRepository, userRepo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "database error",
			requestBody: map[string]interface{}{
				"identifier": "worker@example.com",
				"code":       "483920",
				"type":       "email",
			},
			setupMocks: func(otpRepo *mocks.MockOtpRepository, userRepo *mocks.MockUserRepository) {
				otpRepo.On("Consume", mock.Anything, "worker@example.com", "483920", "email").Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to verify OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockOtpRepo, mockUserRepo := setupOtpControllerWithMocks()
			tt.setupMocks(mockOtpRepo, mockUserRepo)

			router := setupOtpTestRouter()
			router.POST("/api/verify-otp", controller.VerifyOtp)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/verify-otp", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMsg, response["message"])

			mockOtpRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

// Issue then verify twice: the second attempt must fail because the
// code was consumed by the first.
func TestVerifyOtpSingleUse(t *testing.T) {
	controller, mockOtpRepo, mockUserRepo := setupOtpControllerWithMocks()

	mockOtpRepo.On("Consume", mock.Anything, "worker@example.com", "483920", "email").Return(true, nil).Once()
	mockOtpRepo.On("Consume", mock.Anything, "worker@example.com", "483920", "email").Return(false, nil).Once()
	mockUserRepo.On("SetEmailVerified", mock.Anything, "worker@example.com").Return(nil).Once()

	router := setupOtpTestRouter()
	router.POST("/api/verify-otp", controller.VerifyOtp)

	body, _ := json.Marshal(map[string]interface{}{
		"identifier": "worker@example.com",
		"code":       "483920",
		"type":       "email",
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/verify-otp", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/verify-otp", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(second, req)
	assert.Equal(t, http.StatusBadRequest, second.Code)

	mockOtpRepo.AssertExpectations(t)
}
