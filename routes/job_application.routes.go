package routes

import (
	"workpass/internal/controllers"
	"workpass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterJobApplicationRoutes(router *gin.Engine, applicationController *controllers.JobApplicationController) {
	applicationRoutes := router.Group("/api/job-applications")
	applicationRoutes.Use(middleware.AuthMiddleware())
	{
		applicationRoutes.GET("", applicationController.ListApplications)
		applicationRoutes.POST("", applicationController.Apply)
	}
}
