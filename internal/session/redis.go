package session

import (
	"encoding/json"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"equipment-portal/internal/models"
)

// RedisStore keeps only a session id in the cookie; the user record
// lives in Redis under portal:sess:<id> with a TTL. Selected with
// SESSION_BACKEND=redis.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(id string) string { return "portal:sess:" + id }

func (s *RedisStore) Current(c *gin.Context) (*models.User, bool) {
	sess := sessions.Default(c)
	id, ok := sess.Get(userKey).(string)
	if !ok || id == "" {
		return nil, false
	}
	b, err := s.rdb.Get(c.Request.Context(), key(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, false
	}
	return &u, true
}

func (s *RedisStore) Set(c *gin.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	id := uuid.NewString()
	if err := s.rdb.Set(c.Request.Context(), key(id), b, s.ttl).Err(); err != nil {
		return err
	}
	sess := sessions.Default(c)
	sess.Set(userKey, id)
	return sess.Save()
}

func (s *RedisStore) Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	if id, ok := sess.Get(userKey).(string); ok && id != "" {
		_ = s.rdb.Del(c.Request.Context(), key(id)).Err()
	}
	sess.Clear()
	return sess.Save()
}
