package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL     string
	ServerPort     string
	SessionSecret  string
	SessionBackend string
	WebOrigin      string
	RedisAddr      string
	RedisPassword  string
	SessionTTL     time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	cfg := &Config{
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		ServerPort:     get("SERVER_PORT", "8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionBackend: get("SESSION_BACKEND", "cookie"),
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:8080"),
		RedisAddr:      get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SessionTTL:     24 * time.Hour,
	}

	if d, err := time.ParseDuration(get("SESSION_TTL_SECONDS", "86400") + "s"); err == nil {
		cfg.SessionTTL = d
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}
