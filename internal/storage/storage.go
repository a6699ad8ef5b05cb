// Package storage abstracts the blob-storage collaborator. The core only
// sees the Uploader interface; the Google Drive implementation lives behind
// it and is handed a pre-authenticated HTTP client by the deployment
// (credential refresh is ops tooling, not this service's concern).
package storage

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Uploader stores a binary object and returns its stable public reference.
type Uploader interface {
	// Upload writes data under name with the given mime type, makes the
	// object publicly readable and returns its id. The call blocks until
	// the provider responds; callers run it on their own request goroutine.
	Upload(ctx context.Context, name, mimeType string, data []byte) (string, error)
}

// PublicURL builds the public view URL for a stored file id.
// The format is shared with records already in the database; do not change it.
func PublicURL(fileID string) string {
	return "https://drive.google.com/uc?export=view&id=" + fileID
}

// SanitizeTitle strips everything except letters, digits, spaces and
// underscores, then trims trailing spaces.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// ObjectName derives the storage-safe object name for a wallpaper title,
// suffixed with unix seconds to avoid collisions between same-titled uploads.
func ObjectName(title string, now time.Time) string {
	return SanitizeTitle(title) + "_" + strconv.FormatInt(now.Unix(), 10)
}
