package routes

import (
	"workpass/internal/controllers"
	"workpass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterActivityRoutes(router *gin.Engine, activityController *controllers.ActivityController) {
	activityRoutes := router.Group("/api/activity")
	activityRoutes.Use(middleware.AuthMiddleware())
	{
		activityRoutes.GET("", activityController.GetUserActivity)
	}
}
