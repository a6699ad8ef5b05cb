// Package store defines the persistence interfaces for users, categories and
// wallpapers, with a MongoDB implementation for production and an in-memory
// implementation for tests. Implementations must make the like-set and
// download-counter mutations single atomic operations; callers never do a
// read-modify-write around them.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chitrashala_backend/internal/domain"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("already exists")
)

// UserStore persists user accounts keyed by unique email.
type UserStore interface {
	// Insert stores a new user and fills in its id.
	// Returns ErrDuplicate if the email is already registered.
	Insert(ctx context.Context, u *domain.User) error

	// FindByEmail looks a user up by exact email match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CategoryStore persists categories keyed by unique name.
type CategoryStore interface {
	// Insert stores a new category and fills in its id.
	// Returns ErrDuplicate if a category with exactly this name exists.
	Insert(ctx context.Context, c *domain.Category) error

	// FindByID resolves a category by id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)

	// FindByNameFold resolves a category by name ignoring case.
	FindByNameFold(ctx context.Context, name string) (*domain.Category, error)

	// List returns all categories.
	List(ctx context.Context) ([]domain.Category, error)
}

// WallpaperStore persists wallpaper records and their engagement state.
type WallpaperStore interface {
	// Insert stores a new wallpaper and fills in its id.
	Insert(ctx context.Context, w *domain.Wallpaper) error

	// FindByID resolves a wallpaper by id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Wallpaper, error)

	// List returns wallpapers ordered by upload date descending.
	// categoryID narrows to one category when non-nil; skip/limit paginate,
	// limit <= 0 means no limit.
	List(ctx context.Context, categoryID *primitive.ObjectID, skip, limit int64) ([]domain.Wallpaper, error)

	// AddLike atomically adds userID to the wallpaper's like set.
	AddLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error

	// RemoveLike atomically removes userID from the wallpaper's like set.
	RemoveLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error

	// IncrementDownloads atomically bumps the download counter by one.
	// Returns ErrNotFound if the wallpaper does not exist.
	IncrementDownloads(ctx context.Context, wallpaperID primitive.ObjectID) error
}
