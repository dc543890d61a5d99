// Package middleware is the access gate: it resolves the caller's identity
// and role from the bearer token, verifies the server-side session is still
// alive, and gates route groups by role. Authorization failure is never a
// hard error; it degrades to the login redirect.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by the gate for downstream handlers.
const (
	ctxUserID    = "userID"
	ctxRole      = "role"
	ctxSessionID = "sessionID"
)

// SessionChecker reports whether a token's server-side session still exists.
type SessionChecker interface {
	SessionAlive(tokenID string) (bool, error)
}

// AuthClaims are the JWT claims issued at login: the user's id and role,
// plus a jti identifying the Redis session.
type AuthClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Deny writes the redirect-equivalent unauthorized outcome. Distinct from
// 404: a missing record is a client error, a missing identity is a
// navigation redirect.
func Deny(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "access denied",
		"redirect": "/login",
	})
}

// Auth requires a valid bearer token backed by a live session.
func Auth(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			Deny(c)
			return
		}
		alive, err := sessions.SessionAlive(claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !alive {
			Deny(c)
			return
		}
		setCaller(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the caller when credentials are present but never
// rejects the request. Used on routes visible to anonymous callers that
// enrich their response for a known one.
func OptionalAuth(secret string, sessions SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			if alive, err := sessions.SessionAlive(claims.ID); err == nil && alive {
				setCaller(c, claims)
			}
		}
		c.Next()
	}
}

// RequireRole gates a group to one role. Runs after Auth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if r, ok := c.Get(ctxRole); !ok || r.(string) != role {
			Deny(c)
			return
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (*AuthClaims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimPrefix(h, "Bearer ")

	claims := &AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

func setCaller(c *gin.Context, claims *AuthClaims) {
	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
	c.Set(ctxSessionID, claims.ID)
}

// MustUserID returns the authenticated caller's id. Only valid after Auth.
func MustUserID(c *gin.Context) uint {
	v, _ := c.Get(ctxUserID)
	return v.(uint)
}

// MustRole returns the authenticated caller's role. Only valid after Auth.
func MustRole(c *gin.Context) string {
	v, _ := c.Get(ctxRole)
	return v.(string)
}

// SessionID returns the caller's session token id. Only valid after Auth.
func SessionID(c *gin.Context) string {
	v, _ := c.Get(ctxSessionID)
	return v.(string)
}

// Caller returns the optional caller identity set by OptionalAuth.
func Caller(c *gin.Context) (uint, string, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return 0, "", false
	}
	role, _ := c.Get(ctxRole)
	return id.(uint), role.(string), true
}
