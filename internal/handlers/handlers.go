package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/api"
	"equipment-portal/internal/busy"
	"equipment-portal/internal/models"
	"equipment-portal/internal/session"
)

// Handlers owns the page views. Every view talks to the remote lending
// service through API and guards its mutating actions with Busy.
type Handlers struct {
	API  *api.Client
	Sess session.Store
	Busy *busy.Tracker
}

func New(apiClient *api.Client, store session.Store, tracker *busy.Tracker) *Handlers {
	return &Handlers{API: apiClient, Sess: store, Busy: tracker}
}

// currentUser returns the user placed in the context by
// middleware.InjectUser.
func currentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get("CurrentUser")
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// setFlash stores a one-shot success message shown on the next page
// load after a redirect.
func setFlash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}

func takeFlash(c *gin.Context) string {
	sess := sessions.Default(c)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return ""
	}
	_ = sess.Save()
	if s, ok := flashes[0].(string); ok {
		return s
	}
	return ""
}
