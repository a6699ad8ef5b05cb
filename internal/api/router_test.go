package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"chitrashala_backend/internal/domain"
	"chitrashala_backend/internal/middleware"
	"chitrashala_backend/internal/store"
	"chitrashala_backend/internal/utils"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUploader records Upload calls and hands out sequential file ids.
type fakeUploader struct {
	mu    sync.Mutex
	calls int
	names []string
	err   error // forced failure when set
}

func (f *fakeUploader) Upload(ctx context.Context, name, mimeType string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.calls++
	f.names = append(f.names, name)
	return fmt.Sprintf("file-%d", f.calls), nil
}

// testEnv wires the real router over in-memory stores and a fake uploader.
type testEnv struct {
	router     *gin.Engine
	users      *store.MemoryUsers
	categories *store.MemoryCategories
	wallpapers *store.MemoryWallpapers
	uploader   *fakeUploader
}

// newTestEnv mirrors the route wiring in cmd/server, minus Redis.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:      store.NewMemoryUsers(),
		categories: store.NewMemoryCategories(),
		wallpapers: store.NewMemoryWallpapers(),
		uploader:   &fakeUploader{},
	}
	r := gin.New()

	r.POST("/users/", RegisterHandler(env.users))
	r.POST("/token", LoginHandler(env.users, testSecret, time.Hour))
	r.GET("/wallpapers/", ListWallpapersHandler(env.wallpapers, env.categories, nil))
	r.GET("/wallpapers/category/:category_name", ListByCategoryHandler(env.wallpapers, env.categories))
	r.POST("/wallpapers/:wallpaper_id/download", DownloadHandler(env.wallpapers, nil))
	r.GET("/categories/", ListCategoriesHandler(env.categories))

	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(testSecret, env.users))
	authGroup.GET("/users/me", MeHandler())
	authGroup.POST("/wallpapers/:wallpaper_id/like", ToggleLikeHandler(env.wallpapers, nil))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(testSecret, env.users), middleware.AdminOnlyMiddleware())
	adminGroup.GET("/wallpapers/", AdminListWallpapersHandler(env.wallpapers, env.categories))
	adminGroup.POST("/categories/", CreateCategoryHandler(env.categories))
	adminGroup.GET("/categories/", ListCategoriesHandler(env.categories))
	adminGroup.POST("/upload/", UploadHandler(env.wallpapers, env.categories, env.uploader, nil))

	env.router = r
	return env
}

// do runs one request through the router.
func (env *testEnv) do(t *testing.T, method, path, contentType string, body io.Reader, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doJSON(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return env.do(t, method, path, "application/json", bytes.NewReader(b), token)
}

func (env *testEnv) doForm(t *testing.T, method, path string, form url.Values, token string) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, method, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), token)
}

// decodeJSON unmarshals a recorded response body into dest.
func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// register creates an account through the public endpoint.
func (env *testEnv) register(t *testing.T, email, password string) {
	t.Helper()
	rec := env.doJSON(t, http.MethodPost, "/users/", gin.H{"email": email, "password": password}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

// seedAdmin provisions an admin account directly, the way deployments do.
func (env *testEnv) seedAdmin(t *testing.T, email, password string) {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	admin := domain.User{Email: email, HashedPassword: hash, Role: domain.RoleAdmin}
	require.NoError(t, env.users.Insert(context.Background(), &admin))
}

// login returns a bearer token for the account.
func (env *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	form := url.Values{"username": {email}, "password": {password}}
	rec := env.doForm(t, http.MethodPost, "/token", form, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp TokenResponse
	decodeJSON(t, rec, &resp)
	require.Equal(t, "bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// createCategory creates a category through the admin endpoint and returns its id.
func (env *testEnv) createCategory(t *testing.T, token, name string) string {
	t.Helper()
	rec := env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {name}}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var cat struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeJSON(t, rec, &cat)
	require.NotEmpty(t, cat.ID)
	return cat.ID
}

// upload posts a multipart wallpaper upload.
func (env *testEnv) upload(t *testing.T, token, title, description, categoryID string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", title))
	require.NoError(t, mw.WriteField("description", description))
	require.NoError(t, mw.WriteField("category_id", categoryID))
	fw, err := mw.CreateFormFile("image", "wallpaper.png")
	require.NoError(t, err)
	_, err = fw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return env.do(t, http.MethodPost, "/admin/upload/", mw.FormDataContentType(), &buf, token)
}
