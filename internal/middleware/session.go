package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/adamamaa/worship/internal/session"
)

// SessionCookie is the name of the session identifier cookie.
const SessionCookie = "wd_session"

const sessionContextKey = "session_id"

// Session assigns each browser a session identifier cookie and exposes it on
// the request context. The cookie only keys in-memory state, so it carries no
// secrets.
func Session(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = mgr.NewID()
			c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// GetSessionID returns the session identifier for this request.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
