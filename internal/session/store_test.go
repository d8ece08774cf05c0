package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/models"
)

func newCookieRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/set", func(c *gin.Context) {
		if err := store.Set(c, &models.User{ID: 7, Name: "Sam", Role: models.RoleStaff}); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "ok")
	})
	r.GET("/get", func(c *gin.Context) {
		u, ok := store.Current(c)
		if !ok {
			c.String(http.StatusNotFound, "none")
			return
		}
		c.String(http.StatusOK, u.Name)
	})
	r.GET("/clear", func(c *gin.Context) {
		if err := store.Clear(c); err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, "cleared")
	})
	return r
}

func TestCookieStore(t *testing.T) {
	r := newCookieRouter(NewCookieStore())

	t.Run("absent session means logged out", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404", w.Code)
		}
	})

	t.Run("set then read round-trips the user", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("set failed: %d %s", w.Code, w.Body.String())
		}
		cookies := w.Result().Cookies()
		if len(cookies) == 0 {
			t.Fatal("set produced no session cookie")
		}

		w = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get", nil)
		for _, ck := range cookies {
			req.AddCookie(ck)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != "Sam" {
			t.Fatalf("got %d %q, want 200 Sam", w.Code, w.Body.String())
		}
	})

	t.Run("clear logs the visitor out", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
		setCookies := w.Result().Cookies()

		w = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clear", nil)
		for _, ck := range setCookies {
			req.AddCookie(ck)
		}
		r.ServeHTTP(w, req)
		clearedCookies := w.Result().Cookies()

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/get", nil)
		for _, ck := range clearedCookies {
			req.AddCookie(ck)
		}
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404 after clear", w.Code)
		}
	})

	t.Run("tampered session value reads as logged out", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/get", nil)
		req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404 for a tampered cookie", w.Code)
		}
	})
}
