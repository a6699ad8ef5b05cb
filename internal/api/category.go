package api

import (
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strings"  // Input trimming

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"chitrashala_backend/internal/domain" // Importing domain models
	"chitrashala_backend/internal/store"  // Persistence interfaces
)

// CreateCategoryHandler creates a new category (admin only, enforced by the
// route group). Uniqueness is exact on the stored name string.
func CreateCategoryHandler(categories store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name")) // Form field, same wire shape the frontend sends
		if name == "" {
			// Name must be provided
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
			return
		}
		cat := domain.Category{Name: name}
		// Attempt to create the category
		if err := categories.Insert(c.Request.Context(), &cat); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				// Exact-name duplicate
				c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		// Log category creation
		logrus.WithFields(logrus.Fields{
			"category_id": cat.ID.Hex(), // New category id
			"name":        cat.Name,     // Category name
		}).Info("Category created")
		c.JSON(http.StatusCreated, cat) // Return the new category
	}
}

// ListCategoriesHandler returns all categories
func ListCategoriesHandler(categories store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := categories.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if cats == nil {
			cats = []domain.Category{} // Serialize an empty list, not null
		}
		c.JSON(http.StatusOK, cats)
	}
}
