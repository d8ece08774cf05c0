// Package session is the single point through which the portal reads,
// writes and clears the authenticated user. It is written only at
// login, signup and logout; everything else only reads.
package session

import (
	"encoding/json"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/models"
)

// userKey is the one persisted session key. For the cookie backend it
// holds the serialized user record; for the Redis backend it holds the
// Redis session id.
const userKey = "user"

type Store interface {
	// Current returns the last-authenticated user, or false when the
	// visitor is logged out. A stale or tampered stored value is
	// trusted as-is until the remote service rejects a call.
	Current(c *gin.Context) (*models.User, bool)
	Set(c *gin.Context, u *models.User) error
	Clear(c *gin.Context) error
}

// CookieStore keeps the serialized user record directly in the cookie
// session. This is the default backend.
type CookieStore struct{}

func NewCookieStore() *CookieStore { return &CookieStore{} }

func (CookieStore) Current(c *gin.Context) (*models.User, bool) {
	sess := sessions.Default(c)
	raw, ok := sess.Get(userKey).(string)
	if !ok || raw == "" {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (CookieStore) Set(c *gin.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	sess := sessions.Default(c)
	sess.Set(userKey, string(b))
	return sess.Save()
}

func (CookieStore) Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
