package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the acting principal set by the auth
// middleware, or 0 when the request is unauthenticated. Handlers that
// write data must refuse a zero actor rather than fall back to a
// sentinel owner.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentUsername(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
