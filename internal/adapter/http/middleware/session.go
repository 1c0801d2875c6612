package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"

	sessionContextKey = "session_id"
	sessionMaxAge     = 60 * 60 * 24 * 30
)

// Session resolves the shopper session from the X-Session-ID header or the
// session_id cookie, minting a new id when neither carries a valid one. The id
// is echoed back in both so cookie-less clients can keep it.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := requestSessionID(c)
		if sid == "" {
			sid = uuid.NewString()
		}
		c.Set(sessionContextKey, sid)
		c.Header(SessionHeader, sid)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sid, sessionMaxAge, "/", "", false, true)
		c.Next()
	}
}

// SessionID returns the session resolved by Session. Without the middleware it
// falls back to the raw request values.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionContextKey); ok {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return requestSessionID(c)
}

func requestSessionID(c *gin.Context) string {
	if sid := validSessionID(c.GetHeader(SessionHeader)); sid != "" {
		return sid
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return validSessionID(cookie)
	}
	return ""
}

func validSessionID(raw string) string {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return id.String()
}
