package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderSessionID carries the browser-session id both ways: the frontend
// replays whatever it last received, a first request gets a fresh uuid.
const HeaderSessionID = "X-Session-ID"

const sessionIDKey = "session_id"

func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(sessionIDKey, id)
		c.Header(HeaderSessionID, id)
		c.Next()
	}
}

func SessionIDFrom(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
