package app

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/questline-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
	if cfg.DB.Driver != "postgres" || cfg.DB.Postgres.Host != "localhost" || cfg.DB.Postgres.Port != 5432 {
		t.Fatalf("db defaults: %+v", cfg.DB)
	}
	if cfg.DB.SQLite.Path != "questline.db" {
		t.Fatalf("sqlite path: %q", cfg.DB.SQLite.Path)
	}
	if cfg.ShutdownTimeout != 10*time.Second || cfg.CatalogCache.TTL != 5*time.Minute || cfg.CatalogCache.Size != 256 {
		t.Fatalf("durations: %+v", cfg)
	}
	if cfg.Otel.Enabled || cfg.Redis.Addr != "" {
		t.Fatalf("optional backends should be off: %+v %+v", cfg.Otel, cfg.Redis)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Fatalf("cors: %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	cfg, err := loadConfig(env.Options{Environment: map[string]string{
		"PORT":                 "127.0.0.1:9000",
		"DB_DRIVER":            "sqlite",
		"SQLITE_PATH":          "/tmp/q.db",
		"POSTGRES_PASSWORD":    "pw",
		"REDIS_ADDR":           "localhost:6379",
		"REDIS_TTL":            "30s",
		"OTEL_ENABLED":         "true",
		"OTEL_SAMPLER_RATIO":   "0.5",
		"CATALOG_CACHE_SIZE":   "16",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example ,",
	}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9000" {
		t.Fatalf("addr: %q", cfg.Addr())
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.SQLite.Path != "/tmp/q.db" || cfg.DB.Postgres.Password != "pw" {
		t.Fatalf("db: %+v", cfg.DB)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.TTL != 30*time.Second {
		t.Fatalf("redis: %+v", cfg.Redis)
	}
	if !cfg.Otel.Enabled || cfg.Otel.SampleRatio != 0.5 {
		t.Fatalf("otel: %+v", cfg.Otel)
	}
	if cfg.CatalogCache.Size != 16 {
		t.Fatalf("cache size: %d", cfg.CatalogCache.Size)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors: %q", cfg.CORSOrigins)
	}
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	_, err := loadConfig(env.Options{Environment: map[string]string{"SHUTDOWN_TIMEOUT": "soon"}})
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLogLoadedRedactsSecrets(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg, err := loadConfig(env.Options{Environment: map[string]string{
		"JWT_SECRET_KEY":    "topsecret",
		"POSTGRES_PASSWORD": "pw",
	}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.LogLoaded(logger.NewWithCore(core))

	entries := logs.FilterMessage("config loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected one config entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["jwt_secret_key"] != "[REDACTED]" || fields["postgres_password"] != "[REDACTED]" {
		t.Fatalf("secrets not redacted: %v", fields)
	}
	if logs.FilterMessage("JWT_SECRET_KEY is unset; using the development default").Len() != 0 {
		t.Fatal("unexpected default-secret warning")
	}
}
