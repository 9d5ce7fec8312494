package routes

import (
	"workpass/internal/controllers"
	"workpass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	authRoutes := router.Group("/api/auth")
	authRoutes.Use(middleware.AuthMiddleware())
	{
		authRoutes.GET("/user", userController.GetAuthUser)
	}
}
