// Env-driven configuration for the entry points.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		URL    string
	}
	Redis struct {
		Addr string
		TTL  time.Duration
	}
	SeedPath string
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a local .env file.
func Load() Config {
	var cfg Config
	cfg.HTTP.Addr = Get("HTTP_ADDR", ":8080")
	cfg.DB.Driver = Get("DB_DRIVER", "sqlite")
	cfg.DB.URL = Get("DATABASE_URL", "data/app.db")
	cfg.Redis.Addr = Get("REDIS_ADDR", "")
	cfg.Redis.TTL = time.Duration(GetInt("CACHE_TTL_SECONDS", 3600)) * time.Second
	cfg.SeedPath = Get("SEED_PATH", "data/seeds/network.json")
	return cfg
}

// Get returns the env value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
