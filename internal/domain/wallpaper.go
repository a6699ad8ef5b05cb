package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UncategorizedLabel is shown when a wallpaper's category no longer resolves.
const UncategorizedLabel = "Uncategorized"

// Wallpaper Model
type Wallpaper struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`        // Document id
	Title         string               `bson:"title"`                // Display title
	Description   string               `bson:"description"`          // Optional description
	CategoryID    primitive.ObjectID   `bson:"category_id"`          // Foreign key into categories
	DriveFileID   string               `bson:"google_drive_file_id"` // Blob reference returned by storage
	Likes         []primitive.ObjectID `bson:"likes"`                // Set of liking user ids (membership only)
	DownloadCount int64                `bson:"download_count"`       // Monotonic download counter
	UploadDate    time.Time            `bson:"upload_date"`          // Set once at creation, sort key
}

// LikedBy reports whether userID is in the like set.
func (w *Wallpaper) LikedBy(userID primitive.ObjectID) bool {
	for _, id := range w.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// WallpaperPublic is the public projection of a wallpaper.
// Field names match the records the existing frontend consumes.
type WallpaperPublic struct {
	ID           string `json:"id"`                   // Hex document id
	Title        string `json:"title"`                // Display title
	Description  string `json:"description"`          // Optional description
	CategoryName string `json:"category_name"`        // Resolved name, or "Uncategorized"
	LikesCount   int    `json:"likes_count"`          // Size of the like set
	DownloadCnt  int64  `json:"download_count"`       // Download counter
	DriveFileID  string `json:"google_drive_file_id"` // Blob reference
	ImageURL     string `json:"image_url"`            // Public view URL built from the reference
}

// WallpaperAdmin extends the public projection with raw fields for admins.
type WallpaperAdmin struct {
	WallpaperPublic
	UploadDate time.Time `json:"upload_date"` // Creation instant
	CategoryID string    `json:"category_id"` // Raw category id (hex)
}
