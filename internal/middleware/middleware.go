package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skyport/internal/auth"
	"skyport/internal/cache"
)

// Ctx key and helpers for the authenticated user.
// Using unexported type to avoid collisions.

type ctxKey string

const (
	userIDKey  ctxKey = "user_id"
	isStaffKey ctxKey = "is_staff"
)

func ContextWithUser(ctx context.Context, userID int64, isStaff bool) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, isStaffKey, isStaff)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func IsStaffFromContext(ctx context.Context) bool {
	v := ctx.Value(isStaffKey)
	if v == nil {
		return false
	}
	isStaff, _ := v.(bool)
	return isStaff
}

// CORS handles cross-origin requests.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// Logger emits one structured log line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		userID, exists := c.Get("user_id")

		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if exists {
			logFields = append(logFields, "user_id", userID)
		}

		if c.Writer.Status() >= 500 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request failed", logFields...)
		} else {
			slog.Info("Request completed", logFields...)
		}
	}
}

// Recovery turns panics into 500 responses with full logging.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// cachedClaims is what the auth cache stores per token.
type cachedClaims struct {
	UserID  int64 `json:"user_id"`
	IsStaff bool  `json:"is_staff"`
}

// BearerAuth authenticates requests from an Authorization: Bearer token.
// Verified claims are cached keyed by a hash of the token so repeat requests
// skip signature verification.
func BearerAuth(tokens *auth.Manager, cacheClient *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		var cacheKey string
		if cacheClient != nil {
			sum := sha256.Sum256([]byte(tokenString))
			cacheKey = cache.AuthPrefix + hex.EncodeToString(sum[:])

			var cached cachedClaims
			if hit, err := cacheClient.Get(c.Request.Context(), cacheKey, &cached); err == nil && hit {
				setUser(c, cached.UserID, cached.IsStaff)
				c.Next()
				return
			}
		}

		claims, err := tokens.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if cacheClient != nil {
			cached := cachedClaims{UserID: claims.UserID, IsStaff: claims.IsStaff}
			if err := cacheClient.Set(c.Request.Context(), cacheKey, cached, cacheClient.AuthTTL()); err != nil {
				slog.Warn("Failed to cache auth claims", "error", err)
			}
		}

		setUser(c, claims.UserID, claims.IsStaff)
		c.Next()
	}
}

// RequireStaff rejects non-staff users. Must run after BearerAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaffFromContext(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

func setUser(c *gin.Context, userID int64, isStaff bool) {
	c.Set("user_id", userID)
	c.Request = c.Request.WithContext(ContextWithUser(c.Request.Context(), userID, isStaff))
}
