package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"workpass/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JobController struct {
	jobRepo repository.JobRepository
}

func NewJobController(jobRepo repository.JobRepository) *JobController {
	return &JobController{jobRepo: jobRepo}
}

// ListJobs godoc
// @Summary List active jobs
// @Description Returns active job listings, newest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum listings to return" default(50)
// @Success 200 {object} map[string]interface{} "Jobs retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to fetch jobs"
// @Router /api/jobs [get]
func (jc *JobController) ListJobs(c *gin.Context) {
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

	jobs, err := jc.jobRepo.FindActive(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch jobs",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}

// GetJob godoc
// @Summary Get a job
// @Description Returns a single job listing
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]interface{} "Job retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 500 {object} map[string]interface{} "Failed to fetch job"
// @Router /api/jobs/{id} [get]
func (jc *JobController) GetJob(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Job id must be numeric",
		})
		return
	}

	job, err := jc.jobRepo.FindByID(c.Request.Context(), uint(id))
	if err != nil {
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
			"message": "Failed to fetch job",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Job retrieved successfully",
		"data":    job,
	})
}
