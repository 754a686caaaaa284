// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/lumina-storefront/internal/domain/user"
	"github.com/your-org/lumina-storefront/internal/pkg/auth"
)

const sessionCookieName = "session_id"

// Session resolves the session id for every request. A bearer session token
// wins over the cookie; a request with neither gets a fresh session id and
// cookie. All persisted state (cart, active user) is keyed by this id.
func Session(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if tokenString := auth.ExtractTokenFromHeader(authHeader); tokenString != "" {
				if claims, err := sessions.Validate(tokenString); err == nil {
					c.Set("session_id", claims.SessionID)
					c.Next()
					return
				}
			}
		}

		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			// Session cookie, 24 hours, HTTP-only.
			c.SetCookie(sessionCookieName, sessionID, 86400, "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}

// SessionID extracts the session id from gin context.
func SessionID(c *gin.Context) string {
	sessionID, exists := c.Get("session_id")
	if !exists {
		return ""
	}
	return sessionID.(string)
}

// Authenticated ensures the session has an active user, storing it in the
// context for handlers.
func Authenticated(users *user.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.Current(c.Request.Context(), SessionID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to resolve session",
			})
			c.Abort()
			return
		}
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		c.Set("current_user", u)
		c.Next()
	}
}

// CurrentUser extracts the authenticated user from gin context.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, exists := c.Get("current_user")
	if !exists {
		return nil, false
	}
	return v.(*user.User), true
}
