package controllers

import (
	"log"
	"net/http"
	"time"

	"workpass/internal/models"
	"workpass/internal/repository"
	"workpass/internal/utils"

	"github.com/gin-gonic/gin"
)

const otpValidity = 10 * time.Minute

// SendOtpRequest asks for a code on the given channel.
type SendOtpRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=email sms"`
}

// VerifyOtpRequest submits a code for verification.
type VerifyOtpRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Type       string `json:"type" binding:"required,oneof=email sms"`
}

type OtpController struct {
	otpRepo    repository.OtpRepository
	userRepo   repository.UserRepository
	mailConfig utils.MailConfig
}

func NewOtpController(otpRepo repository.OtpRepository, userRepo repository.UserRepository) *OtpController {
	return &OtpController{
		otpRepo:    otpRepo,
		userRepo:   userRepo,
		mailConfig: utils.LoadMailConfig(),
	}
}

// SendOtp godoc
// @Summary Send a one-time code
// @Description Issues a 6-digit code valid for 10 minutes and dispatches it on the requested channel
// @Tags otp
// @Accept json
// @Produce json
// @Param request body SendOtpRequest true "Identifier and channel"
// @Success 200 {object} map[string]interface{} "OTP sent successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create OTP"
// @Router /api/send-otp [post]
func (oc *OtpController) SendOtp(c *gin.Context) {
	var req SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	code := utils.GenerateOtpCode()

	otp := &models.OtpVerification{
		Identifier: req.Identifier,
		Code:       code,
		Channel:    req.Type,
		ExpiresAt:  time.Now().Add(otpValidity),
	}

	if err := oc.otpRepo.Create(c.Request.Context(), otp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create OTP",
			"error":   "Database error",
		})
		return
	}

	// Delivery happens off the request path; the ledger row is the
	// contract, the send is best effort.
	go oc.deliver(req.Identifier, req.Type, code)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "OTP sent successfully",
		"data":    nil,
	})
}

// VerifyOtp godoc
// @Summary Verify a one-time code
// @Description Consumes the code on first successful match; expired, used or mismatched codes are rejected
// @Tags otp
// @Accept json
// @Produce json
// @Param request body VerifyOtpRequest true "Identifier, code and channel"
// @Success 200 {object} map[string]interface{} "OTP verified successfully"
// @Failure 400 {object} map[string]interface{} "Invalid or expired OTP"
// @Failure 500 {object} map[string]interface{} "Failed to verify OTP"
// @Router /api/verify-otp [post]
func (oc *OtpController) VerifyOtp(c *gin.Context) {
	var req VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	verified, err := oc.otpRepo.Consume(ctx, req.Identifier, req.Code, req.Type)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify OTP",
			"error":   "Database error",
		})
		return
	}
	if !verified {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid or expired OTP",
			"error":   "Code is incorrect, expired or already used",
		})
		return
	}

	// Flip the matching verification flag when the identifier belongs
	// to a known user. Unknown identifiers still verify fine.
	var flagErr error
	switch req.Type {
	case models.OtpChannelEmail:
		flagErr = oc.userRepo.SetEmailVerified(ctx, req.Identifier)
	case models.OtpChannelSMS:
		flagErr = oc.userRepo.SetPhoneVerified(ctx, req.Identifier)
	}
	if flagErr != nil {
		log.Printf("Failed to mark %s verified for %s: %v", req.Type, req.Identifier, flagErr)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "OTP verified successfully",
		"data":    nil,
	})
}

func (oc *OtpController) deliver(identifier, channel, code string) {
	switch channel {
	case models.OtpChannelEmail:
		if !oc.mailConfig.Configured() {
			log.Printf("SMTP not configured, OTP for %s: %s", identifier, code)
			return
		}
		if err := utils.SendEmail(oc.mailConfig, identifier, "Your WorkPass verification code",
			"Your verification code is: "+code); err != nil {
			log.Printf("Failed to send OTP email to %s: %v", identifier, err)
		}
	case models.OtpChannelSMS:
		if err := utils.SendSMS(identifier, "Your WorkPass verification code is: "+code); err != nil {
			log.Printf("Failed to send OTP SMS to %s: %v", identifier, err)
		}
	}
}
