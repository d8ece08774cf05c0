package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"equipment-portal/internal/api"
	"equipment-portal/internal/busy"
	"equipment-portal/internal/config"
	"equipment-portal/internal/handlers"
	"equipment-portal/internal/server"
	"equipment-portal/internal/session"
)

func main() {
	cfg := config.Load()
	if err := config.SetupLogger(); err != nil {
		log.Fatalf("logger: %v", err)
	}

	var store session.Store = session.NewCookieStore()
	if cfg.SessionBackend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		store = session.NewRedisStore(rdb, cfg.SessionTTL)
	}

	h := handlers.New(api.New(cfg.APIBaseURL), store, busy.NewTracker())
	r := server.NewRouter(cfg, h, store)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	config.Info("starting portal on %s (lending API at %s)", addr, cfg.APIBaseURL)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
