package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomchha/backend/internal/api/middleware"
	"roomchha/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeSessions is a SessionChecker with a fixed answer.
type fakeSessions struct {
	alive bool
}

func (f fakeSessions) SessionAlive(string) (bool, error) {
	return f.alive, nil
}

func signToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	claims := middleware.AuthClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "session-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testRouter(sessions middleware.SessionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/", middleware.Auth(testSecret, sessions))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": middleware.MustUserID(c),
			"role":    middleware.MustRole(c),
		})
	})

	admin := authed.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.GET("/rooms", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingTokenRedirectsToLogin(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	w := get(r, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestAuth_GarbageTokenRejected(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	w := get(r, "/me", "not-a-jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenResolvesCaller(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	w := get(r, "/me", signToken(t, 7, models.RoleRenter))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"renter"`)
}

func TestAuth_DeadSessionRejected(t *testing.T) {
	// A logged-out token is still a valid JWT; the session record is gone.
	r := testRouter(fakeSessions{alive: false})

	w := get(r, "/me", signToken(t, 7, models.RoleRenter))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestRequireRole_MismatchRedirects(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	w := get(r, "/admin/rooms", signToken(t, 7, models.RoleRenter))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestRequireRole_MatchPasses(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	w := get(r, "/admin/rooms", signToken(t, 1, models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_WrongSigningSecretRejected(t *testing.T) {
	r := testRouter(fakeSessions{alive: true})

	claims := middleware.AuthClaims{UserID: 7, Role: models.RoleRenter}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := get(r, "/me", token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
