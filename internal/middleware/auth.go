package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionUserKey is the session key holding the authenticated username
const sessionUserKey = "username"

// RequireAuth rejects requests without an authenticated session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		username := sess.Get(sessionUserKey)
		if username == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

// CurrentUser returns the authenticated username for the request, or an
// empty string when the session is anonymous.
func CurrentUser(c *gin.Context) string {
	if v, exists := c.Get("username"); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	sess := sessions.Default(c)
	if name, ok := sess.Get(sessionUserKey).(string); ok {
		return name
	}
	return ""
}

// SetSessionUser stores the username in the session after login
func SetSessionUser(c *gin.Context, username string) error {
	sess := sessions.Default(c)
	sess.Set(sessionUserKey, username)
	return sess.Save()
}

// ClearSession drops the session on logout
func ClearSession(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
