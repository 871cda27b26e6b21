package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyport/internal/auth"
)

func setupAuthRouter(t *testing.T, manager *auth.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	authed := router.Group("/", BearerAuth(manager, nil))
	authed.GET("/me", func(c *gin.Context) {
		userID, _ := UserIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	authed.POST("/admin", RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestBearerAuthMissingHeader(t *testing.T) {
	router := setupAuthRouter(t, auth.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuthInvalidToken(t *testing.T) {
	router := setupAuthRouter(t, auth.NewManager("secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuthValidToken(t *testing.T) {
	manager := auth.NewManager("secret", time.Hour)
	router := setupAuthRouter(t, manager)

	token, _, err := manager.IssueToken(42, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestRequireStaffForbidden(t *testing.T) {
	manager := auth.NewManager("secret", time.Hour)
	router := setupAuthRouter(t, manager)

	token, _, err := manager.IssueToken(42, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireStaffAllowed(t *testing.T) {
	manager := auth.NewManager("secret", time.Hour)
	router := setupAuthRouter(t, manager)

	token, _, err := manager.IssueToken(1, true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserContextHelpers(t *testing.T) {
	ctx := ContextWithUser(context.Background(), 7, true)

	userID, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
	assert.True(t, IsStaffFromContext(ctx))

	_, ok = UserIDFromContext(context.Background())
	assert.False(t, ok)
	assert.False(t, IsStaffFromContext(context.Background()))
}
