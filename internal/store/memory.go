package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chitrashala_backend/internal/domain"
)

// In-memory implementations of the store interfaces. Used as injected test
// doubles and for ephemeral development runs; state is lost on restart.
// Each mutation holds the store mutex for its whole duration, giving the
// same single-operation atomicity the MongoDB operators provide.

// MemoryUsers is a map-backed UserStore.
type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]domain.User // keyed by email
}

// NewMemoryUsers constructs an empty in-memory UserStore.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{users: make(map[string]domain.User)}
}

func (m *MemoryUsers) Insert(ctx context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return ErrDuplicate
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.users[u.Email] = *u
	return nil
}

func (m *MemoryUsers) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[email]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

// MemoryCategories is a slice-backed CategoryStore preserving insertion order.
type MemoryCategories struct {
	mu   sync.RWMutex
	cats []domain.Category
}

// NewMemoryCategories constructs an empty in-memory CategoryStore.
func NewMemoryCategories() *MemoryCategories {
	return &MemoryCategories{}
}

func (m *MemoryCategories) Insert(ctx context.Context, c *domain.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.cats {
		if existing.Name == c.Name {
			return ErrDuplicate
		}
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.cats = append(m.cats, *c)
	return nil
}

func (m *MemoryCategories) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cats {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCategories) FindByNameFold(ctx context.Context, name string) (*domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.cats {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCategories) List(ctx context.Context) ([]domain.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Category, len(m.cats))
	copy(out, m.cats)
	return out, nil
}

// MemoryWallpapers is a map-backed WallpaperStore.
type MemoryWallpapers struct {
	mu         sync.Mutex
	wallpapers map[primitive.ObjectID]*domain.Wallpaper
}

// NewMemoryWallpapers constructs an empty in-memory WallpaperStore.
func NewMemoryWallpapers() *MemoryWallpapers {
	return &MemoryWallpapers{wallpapers: make(map[primitive.ObjectID]*domain.Wallpaper)}
}

func (m *MemoryWallpapers) Insert(ctx context.Context, w *domain.Wallpaper) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if w.ID.IsZero() {
		w.ID = primitive.NewObjectID()
	}
	stored := *w
	stored.Likes = append([]primitive.ObjectID(nil), w.Likes...)
	m.wallpapers[stored.ID] = &stored
	return nil
}

func (m *MemoryWallpapers) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Wallpaper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallpapers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(w), nil
}

func (m *MemoryWallpapers) List(ctx context.Context, categoryID *primitive.ObjectID, skip, limit int64) ([]domain.Wallpaper, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ws []domain.Wallpaper
	for _, w := range m.wallpapers {
		if categoryID != nil && w.CategoryID != *categoryID {
			continue
		}
		ws = append(ws, *snapshot(w))
	}
	// Most recent upload first
	sort.Slice(ws, func(i, j int) bool { return ws[i].UploadDate.After(ws[j].UploadDate) })
	if skip > 0 {
		if skip >= int64(len(ws)) {
			return nil, nil
		}
		ws = ws[skip:]
	}
	if limit > 0 && int64(len(ws)) > limit {
		ws = ws[:limit]
	}
	return ws, nil
}

func (m *MemoryWallpapers) AddLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallpapers[wallpaperID]
	if !ok {
		return ErrNotFound
	}
	if !w.LikedBy(userID) {
		w.Likes = append(w.Likes, userID)
	}
	return nil
}

func (m *MemoryWallpapers) RemoveLike(ctx context.Context, wallpaperID, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallpapers[wallpaperID]
	if !ok {
		return ErrNotFound
	}
	for i, id := range w.Likes {
		if id == userID {
			w.Likes = append(w.Likes[:i], w.Likes[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryWallpapers) IncrementDownloads(ctx context.Context, wallpaperID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallpapers[wallpaperID]
	if !ok {
		return ErrNotFound
	}
	w.DownloadCount++
	return nil
}

// snapshot copies a stored wallpaper so callers never alias the live record.
func snapshot(w *domain.Wallpaper) *domain.Wallpaper {
	out := *w
	out.Likes = append([]primitive.ObjectID(nil), w.Likes...)
	return &out
}
