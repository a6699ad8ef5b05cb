package api

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"chitrashala_backend/internal/utils"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/users/", gin.H{"email": "a@x.com", "password": "pw"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	decodeJSON(t, rec, &body)
	require.Equal(t, "a@x.com", body["email"])
	require.Equal(t, "user", body["role"])
	require.NotContains(t, rec.Body.String(), "hashed_password", "hash must never leave the server")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw")

	rec := env.doJSON(t, http.MethodPost, "/users/", gin.H{"email": "a@x.com", "password": "other"}, "")
	require.Equal(t, http.StatusConflict, rec.Code)

	// Exact-match uniqueness: a differently-cased email is a new account
	rec = env.doJSON(t, http.MethodPost, "/users/", gin.H{"email": "A@x.com", "password": "pw"}, "")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_InvalidPayload(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	for _, payload := range []gin.H{
		{},
		{"email": "not-an-email", "password": "pw"},
		{"email": "a@x.com"},
	} {
		rec := env.doJSON(t, http.MethodPost, "/users/", payload, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "payload %v", payload)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw")

	token := env.login(t, "a@x.com", "pw")

	rec := env.do(t, http.MethodGet, "/users/me", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body map[string]any
	decodeJSON(t, rec, &body)
	require.Equal(t, "a@x.com", body["email"])
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "a@x.com", "pw")

	// Wrong password and unknown email produce the same generic message
	wrongPw := env.doForm(t, http.MethodPost, "/token", url.Values{"username": {"a@x.com"}, "password": {"nope"}}, "")
	require.Equal(t, http.StatusUnauthorized, wrongPw.Code)

	unknown := env.doForm(t, http.MethodPost, "/token", url.Values{"username": {"b@x.com"}, "password": {"pw"}}, "")
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.JSONEq(t, wrongPw.Body.String(), unknown.Body.String(), "responses must not reveal which field was wrong")
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	// No token
	rec := env.do(t, http.MethodGet, "/users/me", "", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token
	rec = env.do(t, http.MethodGet, "/users/me", "", nil, "garbage")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Well-signed token whose subject no longer exists
	ghost, err := utils.GenerateJWT("ghost@x.com", "user", testSecret, time.Hour)
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/users/me", "", nil, ghost)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Expired token for a real user
	env.register(t, "a@x.com", "pw")
	expired, err := utils.GenerateJWT("a@x.com", "user", testSecret, -time.Minute)
	require.NoError(t, err)
	rec = env.do(t, http.MethodGet, "/users/me", "", nil, expired)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminGate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.register(t, "user@x.com", "pw")
	env.seedAdmin(t, "admin@x.com", "pw")

	userToken := env.login(t, "user@x.com", "pw")
	adminToken := env.login(t, "admin@x.com", "pw")

	// Plain users are forbidden, admins pass
	rec := env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {"Nature"}}, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {"Nature"}}, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Unauthenticated admin calls are 401, not 403
	rec = env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {"Nature"}}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.seedAdmin(t, "admin@x.com", "pw")
	token := env.login(t, "admin@x.com", "pw")

	env.createCategory(t, token, "Nature")
	rec := env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {"Nature"}}, token)
	require.Equal(t, http.StatusConflict, rec.Code)

	// Uniqueness is case-sensitive on the stored name
	rec = env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{"name": {"NATURE"}}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Missing name
	rec = env.doForm(t, http.MethodPost, "/admin/categories/", url.Values{}, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
