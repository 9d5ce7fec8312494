package routes

import (
	"workpass/internal/controllers"
	"workpass/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterCredentialRoutes(router *gin.Engine, credentialController *controllers.CredentialController) {
	credentialRoutes := router.Group("/api/credentials")
	credentialRoutes.Use(middleware.AuthMiddleware())
	{
		credentialRoutes.GET("", credentialController.ListCredentials)
		credentialRoutes.POST("", credentialController.UploadCredential)
		credentialRoutes.PUT("/:id", credentialController.UpdateCredential)
		credentialRoutes.DELETE("/:id", credentialController.DeleteCredential)
	}
}
