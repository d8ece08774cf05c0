package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/models"
)

// stubStore satisfies session.Store without any cookie machinery.
type stubStore struct {
	u *models.User
}

func (s *stubStore) Current(*gin.Context) (*models.User, bool) { return s.u, s.u != nil }
func (s *stubStore) Set(_ *gin.Context, u *models.User) error  { s.u = u; return nil }
func (s *stubStore) Clear(*gin.Context) error                  { s.u = nil; return nil }

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("redirects anonymous visitors to login", func(t *testing.T) {
		r := gin.New()
		r.GET("/my", RequireAuth(&stubStore{}), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		w := get(t, r, "/my")
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("got %d -> %q, want 302 -> /login", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("passes logged-in visitors through", func(t *testing.T) {
		store := &stubStore{u: &models.User{ID: 1, Role: models.RoleUser}}
		r := gin.New()
		r.GET("/my", RequireAuth(store), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

		if w := get(t, r, "/my"); w.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", w.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(store *stubStore) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			RequireRole(store, models.RoleAdmin, models.RoleStaff),
			func(c *gin.Context) { c.String(http.StatusOK, "admin view") },
		)
		return r
	}

	t.Run("role user is sent to the equipment view", func(t *testing.T) {
		r := newRouter(&stubStore{u: &models.User{ID: 1, Role: models.RoleUser}})
		w := get(t, r, "/admin")
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/equipment" {
			t.Fatalf("got %d -> %q, want 302 -> /equipment", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("staff renders the view", func(t *testing.T) {
		r := newRouter(&stubStore{u: &models.User{ID: 2, Role: models.RoleStaff}})
		if w := get(t, r, "/admin"); w.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", w.Code)
		}
	})

	t.Run("admin renders the view", func(t *testing.T) {
		r := newRouter(&stubStore{u: &models.User{ID: 3, Role: models.RoleAdmin}})
		if w := get(t, r, "/admin"); w.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", w.Code)
		}
	})

	t.Run("anonymous visitors go to login", func(t *testing.T) {
		r := newRouter(&stubStore{})
		w := get(t, r, "/admin")
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Fatalf("got %d -> %q, want 302 -> /login", w.Code, w.Header().Get("Location"))
		}
	})
}

func TestRedirectIfAuthed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logged-in visitors skip the login page", func(t *testing.T) {
		store := &stubStore{u: &models.User{ID: 1, Role: models.RoleUser}}
		r := gin.New()
		r.GET("/login", RedirectIfAuthed(store), func(c *gin.Context) { c.String(http.StatusOK, "login form") })

		w := get(t, r, "/login")
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/equipment" {
			t.Fatalf("got %d -> %q, want 302 -> /equipment", w.Code, w.Header().Get("Location"))
		}
	})

	t.Run("anonymous visitors see the login page", func(t *testing.T) {
		r := gin.New()
		r.GET("/login", RedirectIfAuthed(&stubStore{}), func(c *gin.Context) { c.String(http.StatusOK, "login form") })

		if w := get(t, r, "/login"); w.Code != http.StatusOK {
			t.Fatalf("got %d, want 200", w.Code)
		}
	})
}
