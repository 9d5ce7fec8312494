package controllers

import (
	"errors"
	"net/http"

	"workpass/internal/models"
	"workpass/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationRequest is the body of the apply endpoint.
type ApplicationRequest struct {
	JobID      uint `json:"job_id" binding:"required"`
	MatchScore *int `json:"match_score" binding:"omitempty,gte=0,lte=100"`
}

type JobApplicationController struct {
	applicationRepo repository.JobApplicationRepository
	jobRepo         repository.JobRepository
	activityRepo    repository.ActivityRepository
}

func NewJobApplicationController(applicationRepo repository.JobApplicationRepository, jobRepo repository.JobRepository, activityRepo repository.ActivityRepository) *JobApplicationController {
	return &JobApplicationController{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		activityRepo:    activityRepo,
	}
}

// ListApplications godoc
// @Summary List job applications
// @Description Returns the authenticated user's applications joined with their jobs, newest first
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Applications retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to fetch applications"
// @Router /api/job-applications [get]
func (jac *JobApplicationController) ListApplications(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	applications, err := jac.applicationRepo.FindAllByUserIDWithJobs(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch applications",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Applications retrieved successfully",
		"data":    applications,
	})
}

// Apply godoc
// @Summary Apply to a job
// @Description Creates a pending application; a second application to the same job is rejected
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param application body ApplicationRequest true "Application data"
// @Success 200 {object} map[string]interface{} "Application created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid data or already applied"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 500 {object} map[string]interface{} "Failed to create application"
// @Router /api/job-applications [post]
func (jac *JobApplicationController) Apply(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	if _, err := jac.jobRepo.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Job not found",
				"error":   "No job exists with this id",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create application",
			"error":   "Database error",
		})
		return
	}

	// One application per (user, job).
	existing, err := jac.applicationRepo.FindByUserAndJob(ctx, userID.(string), req.JobID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create application",
			"error":   "Database error",
		})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Already applied to this job",
			"error":   "An application for this job already exists",
		})
		return
	}

	application := &models.JobApplication{
		UserID:     userID.(string),
		JobID:      req.JobID,
		Status:     models.ApplicationPending,
		MatchScore: req.MatchScore,
	}

	if err := jac.applicationRepo.Create(ctx, application); err != nil {
		// The unique index backstops the pre-check under concurrency.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Already applied to this job",
				"error":   "An application for this job already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create application",
			"error":   "Database error",
		})
		return
	}

	logActivity(ctx, jac.activityRepo, userID.(string), models.ActionApplyJob,
		"Applied to job",
		map[string]interface{}{"job_id": req.JobID, "application_id": application.ID})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Application created successfully",
		"data":    application,
	})
}
