package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the customer's cart session id.
	SessionHeader = "X-Session-ID"
	// SessionContextKey is the gin context key the session id is stored under.
	SessionContextKey = "session_id"
)

// SessionMiddleware resolves the cart session id from the request, minting a
// fresh one when the client has none yet. The id is echoed back so the client
// can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie("cart_session"); err == nil {
				sessionID = cookie
			}
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		c.Set(SessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id resolved for the request.
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
