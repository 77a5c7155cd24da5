package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie the login handlers issue and the
// middleware reads.
const SessionCookieName = "session_id"

const contextKeyUserID = "user_id"

// UserIDFromContext returns the user ID RequireSession stored on the
// request, or 0 when the route is unauthenticated.
func UserIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// RequireSession resolves the session cookie against the store and puts
// the owning user ID on the context. Missing, expired or malformed
// sessions abort with 401.
func RequireSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}
