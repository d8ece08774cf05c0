package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/config"
	"equipment-portal/internal/handlers"
	"equipment-portal/internal/middleware"
	"equipment-portal/internal/models"
	"equipment-portal/internal/session"
)

// statusClass picks the badge style for a request status.
func statusClass(s models.RequestStatus) string {
	switch s {
	case models.StatusPending:
		return "badge badge-pending"
	case models.StatusApproved:
		return "badge badge-approved"
	case models.StatusRejected:
		return "badge badge-rejected"
	case models.StatusReturned:
		return "badge badge-returned"
	}
	return "badge"
}

func NewRouter(cfg *config.Config, h *handlers.Handlers, store session.Store) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"statusClass": statusClass,
	})
	r.LoadHTMLGlob("web/templates/*.html")

	cookieStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("portal_session", cookieStore))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.WebOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.InjectUser(store))

	r.GET("/", h.Home)

	// Logged-in visitors of the auth pages go straight to the portal.
	guest := r.Group("/", middleware.RedirectIfAuthed(store))
	guest.GET("/login", h.ShowLogin)
	guest.POST("/login", h.Login)
	guest.GET("/signup", h.ShowSignup)
	guest.POST("/signup", h.Signup)

	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(store))

	auth.GET("/equipment", h.ListEquipment)
	auth.POST("/equipment/:id/borrow", h.Borrow)
	auth.GET("/my", h.MyRequests)
	auth.POST("/my/:id/return", h.ReturnRequest)

	// Inventory management and request review are staff/admin only.
	manage := auth.Group("/", middleware.RequireRole(store, models.RoleAdmin, models.RoleStaff))
	manage.GET("/equipment/new", h.ShowNewEquipment)
	manage.POST("/equipment/new", h.CreateEquipment)
	manage.GET("/equipment/:id/edit", h.ShowEditEquipment)
	manage.POST("/equipment/:id/edit", h.UpdateEquipment)
	manage.GET("/equipment/:id/delete", h.ShowDeleteEquipment)
	manage.POST("/equipment/:id/delete", h.DeleteEquipment)
	manage.GET("/admin", h.AdminRequests)
	manage.POST("/admin/:id/approve", h.ApproveRequest)
	manage.POST("/admin/:id/reject", h.RejectRequest)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(h.Home)

	return r
}
