package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "DB_DRIVER", "DATABASE_URL", "REDIS_ADDR", "CACHE_TTL_SECONDS", "SEED_PATH"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.HTTP.Addr != ":8080" || cfg.DB.Driver != "sqlite" || cfg.Redis.Addr != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Redis.TTL != time.Hour {
		t.Fatalf("ttl = %v, want 1h", cfg.Redis.TTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost/freight")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()
	if cfg.DB.Driver != "pgx" || cfg.DB.URL != "postgres://localhost/freight" {
		t.Fatalf("db config = %+v", cfg.DB)
	}
	if cfg.Redis.TTL != time.Minute || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis config = %+v", cfg.Redis)
	}
}

func TestGetIntIgnoresGarbage(t *testing.T) {
	t.Setenv("CACHE_TTL_SECONDS", "soon")
	if got := GetInt("CACHE_TTL_SECONDS", 7); got != 7 {
		t.Fatalf("GetInt = %d, want fallback 7", got)
	}
}
