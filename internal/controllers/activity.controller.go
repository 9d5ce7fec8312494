package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"workpass/internal/models"
	"workpass/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type ActivityController struct {
	activityRepo repository.ActivityRepository
}

func NewActivityController(activityRepo repository.ActivityRepository) *ActivityController {
	return &ActivityController{activityRepo: activityRepo}
}

// GetUserActivity godoc
// @Summary Get recent activity
// @Description Returns the authenticated user's most recent activity entries
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return" default(20)
// @Success 200 {object} map[string]interface{} "Activity retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to fetch activity"
// @Router /api/activity [get]
func (ac *ActivityController) GetUserActivity(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "limit must be a non-negative integer",
			})
			return
		}
		limit = parsed
	}

	activities, err := ac.activityRepo.FindRecentByUserID(c.Request.Context(), userID.(string), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch activity",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity retrieved successfully",
		"data":    activities,
	})
}

// logActivity appends a timeline entry as a side effect of a mutating
// request. Failures are logged, never surfaced: the main operation has
// already succeeded.
func logActivity(ctx context.Context, repo repository.ActivityRepository, userID, action, description string, metadata map[string]interface{}) {
	entry := &models.UserActivity{
		UserID:      userID,
		Action:      action,
		Description: description,
	}
	if metadata != nil {
		if data, err := json.Marshal(metadata); err == nil {
			entry.Metadata = datatypes.JSON(data)
		}
	}
	if err := repo.Create(ctx, entry); err != nil {
		log.Printf("Failed to log activity %q for user %s: %v", action, userID, err)
	}
}
