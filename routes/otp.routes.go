package routes

import (
	"workpass/internal/controllers"

	"github.com/gin-gonic/gin"
)

// OTP endpoints are reachable without a session: they are how an
// identifier gets verified in the first place.
func RegisterOtpRoutes(router *gin.Engine, otpController *controllers.OtpController) {
	router.POST("/api/send-otp", otpController.SendOtp)
	router.POST("/api/verify-otp", otpController.VerifyOtp)
}
