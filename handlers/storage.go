package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"lumiere/services/storage"
	"lumiere/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadImageHandler accepts a multipart image and stores it in the media
// backend. The optional folder form field groups uploads (posts, services).
func UploadImageHandler(svc storage.StorageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "an image file is required")
			return
		}
		folder := c.PostForm("folder")
		if folder == "" {
			folder = "uploads"
		}

		tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, tmpPath); err != nil {
			utils.GetLogger().Error("Failed to buffer uploaded file", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "could not read the uploaded file")
			return
		}
		defer os.Remove(tmpPath)

		publicID, err := svc.UploadImage(c.Request.Context(), tmpPath, folder)
		if err != nil {
			utils.GetLogger().Error("Failed to upload image", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Upload failed", "could not store the image")
			return
		}
		url, err := svc.ImageURL(publicID)
		if err != nil {
			utils.GetLogger().Warn("Failed to resolve image URL", zap.Error(err))
		}

		c.JSON(http.StatusCreated, gin.H{
			"publicId": publicID,
			"url":      url,
		})
	}
}
