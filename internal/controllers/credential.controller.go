package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"workpass/internal/models"
	"workpass/internal/repository"
	"workpass/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Upload constraints, enforced before the file is staged.
const maxUploadSize = 10 << 20 // 10 MB

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// CredentialUpdateRequest carries a partial update; nil fields are
// left untouched.
type CredentialUpdateRequest struct {
	Name              *string `json:"name"`
	IssuingAuthority  *string `json:"issuing_authority"`
	IssueDate         *string `json:"issue_date"`
	ExpiryDate        *string `json:"expiry_date"`
	CertificateNumber *string `json:"certificate_number"`
}

type CredentialController struct {
	credentialRepo repository.CredentialRepository
	activityRepo   repository.ActivityRepository
	fileStorage    storage.FileStorage
}

func NewCredentialController(credentialRepo repository.CredentialRepository, activityRepo repository.ActivityRepository, fileStorage storage.FileStorage) *CredentialController {
	return &CredentialController{
		credentialRepo: credentialRepo,
		activityRepo:   activityRepo,
		fileStorage:    fileStorage,
	}
}

// ListCredentials godoc
// @Summary List credentials
// @Description Returns the authenticated user's active credentials, newest first
// @Tags credentials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Credentials retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to fetch credentials"
// @Router /api/credentials [get]
func (cc *CredentialController) ListCredentials(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	credentials, err := cc.credentialRepo.FindActiveByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch credentials",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Credentials retrieved successfully",
		"data":    credentials,
	})
}

// UploadCredential godoc
// @Summary Upload a credential
// @Description Stages the uploaded document and registers the credential record
// @Tags credentials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Credential document (.pdf, .jpg, .jpeg, .png, max 10 MB)"
// @Param type formData string true "Credential type"
// @Param category formData string true "Credential category"
// @Param name formData string true "Credential name"
// @Success 200 {object} map[string]interface{} "Credential uploaded successfully"
// @Failure 400 {object} map[string]interface{} "No file or invalid data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Failed to upload credential"
// @Router /api/credentials [post]
func (cc *CredentialController) UploadCredential(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "No file uploaded",
			"error":   "Multipart field \"file\" is required",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid file type",
			"error":   "Only PDF, JPG, JPEG, and PNG files are allowed",
		})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File too large",
			"error":   "Maximum upload size is 10 MB",
		})
		return
	}

	credType := c.PostForm("type")
	category := c.PostForm("category")
	name := c.PostForm("name")
	if credType == "" || category == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid credential data",
			"error":   "type, category and name are required",
		})
		return
	}

	issueDate, err := parseDateField(c.PostForm("issue_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid credential data",
			"error":   "issue_date must be YYYY-MM-DD",
		})
		return
	}
	expiryDate, err := parseDateField(c.PostForm("expiry_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid credential data",
			"error":   "expiry_date must be YYYY-MM-DD",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to upload credential",
			"error":   "Could not read uploaded file",
		})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	stored, err := cc.fileStorage.Save(ctx, fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to upload credential",
			"error":   "Could not store uploaded file",
		})
		return
	}

	credential := &models.Credential{
		UserID:             userID.(string),
		Type:               credType,
		Category:           category,
		Name:               name,
		IssuingAuthority:   c.PostForm("issuing_authority"),
		IssueDate:          issueDate,
		ExpiryDate:         expiryDate,
		CertificateNumber:  c.PostForm("certificate_number"),
		FileURL:            stored.URL,
		FileName:           stored.Name,
		FileSize:           stored.Size,
		VerificationStatus: models.VerificationPending,
		IsActive:           true,
	}

	if err := cc.credentialRepo.Create(ctx, credential); err != nil {
		cc.fileStorage.Delete(ctx, stored.URL)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to upload credential",
			"error":   "Database error",
		})
		return
	}

	logActivity(ctx, cc.activityRepo, userID.(string), models.ActionUploadCredential,
		"Uploaded "+credential.Name,
		map[string]interface{}{"credential_id": credential.ID, "type": credential.Type})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Credential uploaded successfully",
		"data":    credential,
	})
}

// UpdateCredential godoc
// @Summary Update a credential
// @Description Applies a partial update to a credential record
// @Tags credentials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credential ID"
// @Param credential body CredentialUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Credential updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Credential not found"
// @Failure 500 {object} map[string]interface{} "Failed to update credential"
// @Router /api/credentials/{id} [put]
func (cc *CredentialController) UpdateCredential(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Credential id must be numeric",
		})
		return
	}

	var req CredentialUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IssuingAuthority != nil {
		updates["issuing_authority"] = *req.IssuingAuthority
	}
	if req.CertificateNumber != nil {
		updates["certificate_number"] = *req.CertificateNumber
	}
	if req.IssueDate != nil {
		parsed, err := parseDateField(*req.IssueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "issue_date must be YYYY-MM-DD",
			})
			return
		}
		updates["issue_date"] = parsed
	}
	if req.ExpiryDate != nil {
		parsed, err := parseDateField(*req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid request data",
				"error":   "expiry_date must be YYYY-MM-DD",
			})
			return
		}
		updates["expiry_date"] = parsed
	}

	credential, err := cc.credentialRepo.Update(c.Request.Context(), uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Credential not found",
				"error":   "No credential exists with this id",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update credential",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Credential updated successfully",
		"data":    credential,
	})
}

// DeleteCredential godoc
// @Summary Delete a credential
// @Description Soft-deletes a credential; ownership is checked, foreign rows read as not found
// @Tags credentials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Credential ID"
// @Success 200 {object} map[string]interface{} "Credential deleted successfully"
// @Failure 404 {object} map[string]interface{} "Credential not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete credential"
// @Router /api/credentials/{id} [delete]
func (cc *CredentialController) DeleteCredential(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Unauthorized",
			"error":   "User ID not found in token",
		})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Credential id must be numeric",
		})
		return
	}

	ctx := c.Request.Context()
	deleted, err := cc.credentialRepo.SoftDelete(ctx, uint(id), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete credential",
			"error":   "Database error",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Credential not found",
			"error":   "No credential exists with this id for this user",
		})
		return
	}

	logActivity(ctx, cc.activityRepo, userID.(string), models.ActionDeleteCredential,
		"Deleted credential",
		map[string]interface{}{"credential_id": uint(id)})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Credential deleted successfully",
		"data":    nil,
	})
}

func parseDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
