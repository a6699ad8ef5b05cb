package api

import (
	"context"  // Context for store and Redis operations
	"errors"   // Sentinel error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL and timestamps

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library

	"go.mongodb.org/mongo-driver/bson/primitive" // Document id type

	"chitrashala_backend/internal/domain"     // Importing domain models
	"chitrashala_backend/internal/middleware" // Current-user lookup
	"chitrashala_backend/internal/storage"    // Public URL construction
	"chitrashala_backend/internal/store"      // Persistence interfaces
	"chitrashala_backend/internal/utils"      // Utility functions
)

// cacheTTL bounds how stale a cached public listing page can get
const cacheTTL = 60 * time.Second

// pagination reads skip/limit query parameters with the public defaults
func pagination(c *gin.Context) (skip, limit int64) {
	limit = utils.DefaultPageLimit // Default page size
	// If skip exists in query
	if s := c.Query("skip"); s != "" {
		// Convert skip to integer
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v >= 0 {
			skip = v // Set skip if valid
		}
	}
	// If limit exists in query
	if l := c.Query("limit"); l != "" {
		// Convert limit to integer
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 && v <= 100 {
			limit = v // Set limit if valid
		}
	}
	return skip, limit
}

// publicView shapes one wallpaper for the public listing.
func publicView(w *domain.Wallpaper, categoryName string) domain.WallpaperPublic {
	return domain.WallpaperPublic{
		ID:           w.ID.Hex(),                       // Hex document id
		Title:        w.Title,                          // Display title
		Description:  w.Description,                    // Optional description
		CategoryName: categoryName,                     // Resolved category name
		LikesCount:   len(w.Likes),                     // Size of the like set
		DownloadCnt:  w.DownloadCount,                  // Download counter
		DriveFileID:  w.DriveFileID,                    // Blob reference
		ImageURL:     storage.PublicURL(w.DriveFileID), // Public view URL
	}
}

// resolveCategoryNames maps each wallpaper's category id to its name,
// memoizing lookups and falling back to "Uncategorized" for categories that
// no longer resolve (soft invariant: stale references render, not error).
func resolveCategoryNames(ctx context.Context, categories store.CategoryStore, ws []domain.Wallpaper) map[primitive.ObjectID]string {
	names := make(map[primitive.ObjectID]string)
	for _, w := range ws {
		if _, ok := names[w.CategoryID]; ok {
			continue // Already resolved
		}
		cat, err := categories.FindByID(ctx, w.CategoryID)
		if err != nil {
			names[w.CategoryID] = domain.UncategorizedLabel // Category deleted or never existed
			continue
		}
		names[w.CategoryID] = cat.Name
	}
	return names
}

// ListWallpapersHandler returns a page of wallpapers, most recent first
func ListWallpapersHandler(wallpapers store.WallpaperStore, categories store.CategoryStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		skip, limit := pagination(c) // Read paging parameters
		cacheKey := utils.WallpaperListKey(skip, limit)
		var cached []domain.WallpaperPublic
		// Try to get the page from cache
		if rdb != nil {
			found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
			if err == nil && found {
				c.JSON(http.StatusOK, cached) // Return cached page
				return
			}
		}
		// Fetch from the store, newest first
		ws, err := wallpapers.List(ctx, nil, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallpapers"})
			return
		}
		names := resolveCategoryNames(ctx, categories, ws) // Resolve category names once per id
		resp := make([]domain.WallpaperPublic, 0, len(ws))
		for i := range ws {
			resp = append(resp, publicView(&ws[i], names[ws[i].CategoryID]))
		}
		// Cache the page
		if rdb != nil {
			_ = utils.SetCache(ctx, rdb, cacheKey, resp, cacheTTL)
		}
		c.JSON(http.StatusOK, resp) // Return the page
	}
}

// ListByCategoryHandler returns a page of wallpapers for one category,
// matched by name ignoring case
func ListByCategoryHandler(wallpapers store.WallpaperStore, categories store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		name := c.Param("category_name") // Category name from the path
		cat, err := categories.FindByNameFold(ctx, name)
		if err != nil {
			// Unknown category name
			c.JSON(http.StatusNotFound, gin.H{"error": "Category '" + name + "' not found"})
			return
		}
		skip, limit := pagination(c) // Read paging parameters
		// Fetch the category's wallpapers, newest first
		ws, err := wallpapers.List(ctx, &cat.ID, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallpapers"})
			return
		}
		resp := make([]domain.WallpaperPublic, 0, len(ws))
		for i := range ws {
			// All records share the matched category, no per-record lookup
			resp = append(resp, publicView(&ws[i], cat.Name))
		}
		c.JSON(http.StatusOK, resp) // Return the page
	}
}

// ToggleLikeHandler flips the authenticated user's membership in a
// wallpaper's like set. The direction is decided by a read, but the write is
// always a single atomic set-add or set-remove, so concurrent toggles by
// other users are never lost.
func ToggleLikeHandler(wallpapers store.WallpaperStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		user := middleware.CurrentUser(c) // Resolved by the auth middleware
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Parse the wallpaper id
		wallpaperID, err := utils.ParseObjectID(c.Param("wallpaper_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
			return
		}
		// Fetch current membership to decide the direction
		w, err := wallpapers.FindByID(ctx, wallpaperID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
			return
		}
		var message string
		if w.LikedBy(user.ID) {
			err = wallpapers.RemoveLike(ctx, wallpaperID, user.ID) // Atomic set-remove
			message = "Wallpaper unliked"
		} else {
			err = wallpapers.AddLike(ctx, wallpaperID, user.ID) // Atomic set-add
			message = "Wallpaper liked"
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Deleted between the read and the write
				c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update like"})
			return
		}
		// Log the toggle
		logrus.WithFields(logrus.Fields{
			"wallpaper_id": wallpaperID.Hex(), // Target wallpaper
			"user_id":      user.ID.Hex(),     // Toggling user
			"result":       message,           // Liked or unliked
		}).Info("Like toggled")
		utils.InvalidateWallpaperLists(ctx, rdb) // Drop cached list pages
		// Return the toggle result
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": message})
	}
}

// DownloadHandler bumps a wallpaper's download counter by exactly one.
// Unauthenticated: downloads are public.
func DownloadHandler(wallpapers store.WallpaperStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Parse the wallpaper id
		wallpaperID, err := utils.ParseObjectID(c.Param("wallpaper_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Wallpaper ID format"})
			return
		}
		// Atomic counter increment; no lost updates under concurrency
		if err := wallpapers.IncrementDownloads(ctx, wallpaperID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Wallpaper not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to increment download count"})
			return
		}
		utils.InvalidateWallpaperLists(ctx, rdb) // Drop cached list pages
		// Return success response
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Download count incremented"})
	}
}

// AdminListWallpapersHandler returns every wallpaper with raw category id
// and upload timestamp (admin only, enforced by the route group)
func AdminListWallpapersHandler(wallpapers store.WallpaperStore, categories store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Unpaginated, newest first
		ws, err := wallpapers.List(ctx, nil, 0, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallpapers"})
			return
		}
		names := resolveCategoryNames(ctx, categories, ws) // Resolve category names once per id
		resp := make([]domain.WallpaperAdmin, 0, len(ws))
		for i := range ws {
			resp = append(resp, domain.WallpaperAdmin{
				WallpaperPublic: publicView(&ws[i], names[ws[i].CategoryID]),
				UploadDate:      ws[i].UploadDate,       // Creation instant
				CategoryID:      ws[i].CategoryID.Hex(), // Raw category id
			})
		}
		c.JSON(http.StatusOK, resp) // Return the admin view
	}
}
