package api

import (
	"io"       // Reading the uploaded file into memory
	"net/http" // HTTP status codes
	"time"     // Upload timestamp

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"go.mongodb.org/mongo-driver/bson/primitive" // Document id type

	"chitrashala_backend/internal/domain"  // Importing domain models
	"chitrashala_backend/internal/storage" // Blob storage collaborator
	"chitrashala_backend/internal/store"   // Persistence interfaces
	"chitrashala_backend/internal/utils"   // Utility functions
)

// UploadHandler validates wallpaper metadata, delegates the image bytes to
// blob storage and persists the resulting record (admin only, enforced by
// the route group). All-or-nothing: a storage failure writes no record.
// No automatic retry; the caller resubmits.
func UploadHandler(wallpapers store.WallpaperStore, categories store.CategoryStore, uploader storage.Uploader, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		title := c.PostForm("title") // Wallpaper title
		if title == "" {
			// Title must be provided
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		description := c.PostForm("description") // Optional description
		// Parse the category id
		categoryID, err := utils.ParseObjectID(c.PostForm("category_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Category ID format"})
			return
		}
		// The category must resolve before anything reaches storage
		if _, err := categories.FindByID(ctx, categoryID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found for the provided ID"})
			return
		}
		// Read the image entirely into memory; no temp files on disk
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
			return
		}
		now := time.Now().UTC()
		objectName := storage.ObjectName(title, now)      // Storage-safe, collision-suffixed name
		mimeType := fileHeader.Header.Get("Content-Type") // Mime type as sent by the client
		// Blocking storage call; it runs on this request's goroutine only
		fileID, err := uploader.Upload(ctx, objectName, mimeType, data)
		if err != nil {
			// Log the storage failure with context
			logrus.WithFields(logrus.Fields{
				"title": title,       // Wallpaper title
				"error": err.Error(), // Underlying cause
			}).Error("Storage upload failed")
			// No partial database write behind a failed upload
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload to storage: " + err.Error()})
			return
		}
		// Persist the wallpaper record
		wallpaper := domain.Wallpaper{
			Title:       title,                  // Display title
			Description: description,            // Optional description
			CategoryID:  categoryID,             // Validated category reference
			DriveFileID: fileID,                 // Blob reference from storage
			Likes:       []primitive.ObjectID{}, // Empty like set
			UploadDate:  now,                    // Sort key, set once
		}
		if err := wallpapers.Insert(ctx, &wallpaper); err != nil {
			// The blob is already stored; the orphan is accepted, not rolled back
			logrus.WithFields(logrus.Fields{
				"title":   title,       // Wallpaper title
				"file_id": fileID,      // Orphaned blob reference
				"error":   err.Error(), // Error message
			}).Error("Failed to persist wallpaper")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save wallpaper"})
			return
		}
		// Log successful upload
		logrus.WithFields(logrus.Fields{
			"wallpaper_id": wallpaper.ID.Hex(),       // New wallpaper id
			"file_id":      fileID,                   // Blob reference
			"timestamp":    now.Format(time.RFC3339), // Upload instant
		}).Info("Wallpaper uploaded")
		utils.InvalidateWallpaperLists(ctx, rdb) // Drop cached list pages
		// Return the new record's identifiers
		c.JSON(http.StatusCreated, gin.H{
			"status":               "success",
			"message":              "Wallpaper uploaded",
			"wallpaper_id":         wallpaper.ID.Hex(),
			"google_drive_file_id": fileID,
		})
	}
}
