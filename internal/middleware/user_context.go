package middleware

import (
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/session"
)

// InjectUser reads the session user once per request and hands it to
// the handlers and templates via the gin context, so views do not
// re-parse storage independently.
func InjectUser(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, ok := store.Current(c); ok {
			c.Set("CurrentUser", *u)
		}
		c.Next()
	}
}
