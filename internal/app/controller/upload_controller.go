package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/helpo-services/helpo-backend/internal/errors"
	"github.com/helpo-services/helpo-backend/internal/middleware"
	"github.com/helpo-services/helpo-backend/internal/storage"
)

type UploadController struct {
	storage *storage.PhotoStorage
}

func NewUploadController(storage *storage.PhotoStorage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type PresignUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

var allowedPhotoTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// PresignUpload returns a presigned URL for uploading a listing photo.
// POST /api/v1/vendor/photos/presign
func (ctrl *UploadController) PresignUpload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	phone, _ := middleware.GetVendorPhone(c)

	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid presign request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Filename and content type are required")
		return
	}

	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedPhotoTypes); err != nil {
		log.Warn("Rejected photo content type", map[string]interface{}{
			"content_type": req.ContentType,
		})
		apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Only image files are allowed (JPEG, PNG, GIF, WEBP)")
		return
	}

	upload, err := ctrl.storage.PresignUpload(c.Request.Context(), phone, req.Filename, req.ContentType)
	if err != nil {
		log.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename": req.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed, "Failed to prepare the upload")
		return
	}

	log.Info("Presigned photo upload generated", map[string]interface{}{
		"phone": phone,
		"key":   upload.Key,
	})

	c.JSON(http.StatusOK, upload)
}
