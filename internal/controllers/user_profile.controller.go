package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"workpass/internal/models"
	"workpass/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileRequest is the tagged shape of the profile endpoint body.
type ProfileRequest struct {
	Trade              string                 `json:"trade"`
	YearsExperience    *int                   `json:"years_experience" binding:"omitempty,gte=0"`
	Location           string                 `json:"location"`
	AvailabilityStatus string                 `json:"availability_status" binding:"omitempty,oneof=available working unavailable"`
	HourlyRate         *float64               `json:"hourly_rate" binding:"omitempty,gte=0"`
	Bio                string                 `json:"bio"`
	Skills             []string               `json:"skills"`
	Preferences        map[string]interface{} `json:"preferences"`
}

type UserProfileController struct {
	profileRepo  repository.UserProfileRepository
	activityRepo repository.ActivityRepository
}

func NewUserProfileController(profileRepo repository.UserProfileRepository, activityRepo repository.ActivityRepository) *UserProfileController {
	return &UserProfileController{
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
	}
}

// GetUserProfile godoc
// @Summary Get user profile
// @Description Retrieve the authenticated user's profile; null when none exists yet
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to fetch profile"
// @Router /api/profile [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	profile, err := pc.profileRepo.FindByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No profile yet is a valid state, not an error.
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "No profile exists for this user",
				"data":    nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch profile",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    profile,
	})
}

// SaveUserProfile godoc
// @Summary Create or update user profile
// @Description Creates the authenticated user's profile or updates the existing one
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /api/profile [post]
func (pc *UserProfileController) SaveUserProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	skills, _ := json.Marshal(req.Skills)
	preferences, _ := json.Marshal(req.Preferences)

	ctx := c.Request.Context()
	existing, err := pc.profileRepo.FindByUserID(ctx, userID.(string))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   "Database error",
		})
		return
	}

	var profile *models.UserProfile
	action := models.ActionCreateProfile

	if existing != nil {
		action = models.ActionUpdateProfile
		existing.Trade = req.Trade
		existing.YearsExperience = req.YearsExperience
		existing.Location = req.Location
		if req.AvailabilityStatus != "" {
			existing.AvailabilityStatus = req.AvailabilityStatus
		}
		existing.HourlyRate = req.HourlyRate
		existing.Bio = req.Bio
		existing.Skills = datatypes.JSON(skills)
		existing.Preferences = datatypes.JSON(preferences)
		profile = existing
		err = pc.profileRepo.Update(ctx, profile)
	} else {
		profile = &models.UserProfile{
			UserID:             userID.(string),
			Trade:              req.Trade,
			YearsExperience:    req.YearsExperience,
			Location:           req.Location,
			AvailabilityStatus: req.AvailabilityStatus,
			HourlyRate:         req.HourlyRate,
			Bio:                req.Bio,
			Skills:             datatypes.JSON(skills),
			Preferences:        datatypes.JSON(preferences),
		}
		if profile.AvailabilityStatus == "" {
			profile.AvailabilityStatus = models.AvailabilityAvailable
		}
		err = pc.profileRepo.Create(ctx, profile)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   "Database error",
		})
		return
	}

	logActivity(ctx, pc.activityRepo, userID.(string), action, "User profile updated", nil)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}
