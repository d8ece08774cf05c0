package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/models"
	"equipment-portal/internal/session"
)

// RequireAuth redirects visitors without a session user to the login
// view.
func RequireAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := store.Current(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole redirects session users whose role is outside roles to
// the default authenticated view. This is advisory UI gating only; the
// remote service enforces authorization.
func RequireRole(store session.Store, roles ...models.Role) gin.HandlerFunc {
	roleSet := map[models.Role]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		u, ok := store.Current(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if _, ok := roleSet[u.Role]; !ok {
			c.Redirect(http.StatusFound, "/equipment")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthed sends already logged-in visitors of the login and
// signup pages to the equipment view.
func RedirectIfAuthed(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := store.Current(c); ok {
			c.Redirect(http.StatusFound, "/equipment")
			c.Abort()
			return
		}
		c.Next()
	}
}
