package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	pkgAuth "github.com/tntx/fleetport/internal/pkg/auth"
)

const (
	// UserContextKey is a gin context key for the authenticated account.
	UserContextKey = "currentUser"
	authCookieName = "fleetport_token"
)

// TokenAuthenticator resolves bearer tokens into portal accounts.
type TokenAuthenticator interface {
	ParseToken(token string) (pkgAuth.Claims, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthRequired ensures the caller is authenticated before reaching the handler.
// The resolved account lands in the request context.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		user, err := auth.UserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not listed.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		user, ok := val.(*model.User)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
