package routes

import (
	"workpass/internal/controllers"
	"workpass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterJobRoutes(router *gin.Engine, jobController *controllers.JobController) {
	jobRoutes := router.Group("/api/jobs")
	jobRoutes.Use(middleware.AuthMiddleware())
	{
		jobRoutes.GET("", jobController.ListJobs)
		jobRoutes.GET("/:id", jobController.GetJob)
	}
}
