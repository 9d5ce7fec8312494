package controllers

import (
	"net/http"

	"workpass/internal/models"
	"workpass/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type UserController struct {
	userRepo repository.UserRepository
}

func NewUserController(userRepo repository.UserRepository) *UserController {
	return &UserController{userRepo: userRepo}
}

// GetAuthUser godoc
// @Summary Get the authenticated user
// @Description Returns the locally mirrored user record, creating it from the identity-provider claims on first login
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to fetch user"
// @Router /api/auth/user [get]
func (uc *UserController) GetAuthUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	user := userFromClaims(c, userID.(string))
	if err := uc.userRepo.Upsert(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch user",
			"error":   "Database error",
		})
		return
	}

	stored, err := uc.userRepo.FindByID(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch user",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    stored,
	})
}

// userFromClaims builds the mirror row from whatever profile claims
// the identity provider includes in its token.
func userFromClaims(c *gin.Context, userID string) *models.User {
	user := &models.User{ID: userID}

	rawClaims, exists := c.Get("claims")
	if !exists {
		return user
	}
	claims, ok := rawClaims.(jwt.MapClaims)
	if !ok {
		return user
	}

	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if firstName, ok := claims["first_name"].(string); ok {
		user.FirstName = firstName
	}
	if lastName, ok := claims["last_name"].(string); ok {
		user.LastName = lastName
	}
	if imageURL, ok := claims["profile_image_url"].(string); ok {
		user.ProfileImageURL = imageURL
	}
	if phone, ok := claims["phone"].(string); ok {
		user.Phone = phone
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}
	if level, ok := claims["experience_level"].(string); ok {
		user.ExperienceLevel = level
	}
	return user
}
