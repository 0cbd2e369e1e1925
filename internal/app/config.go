package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/yungbote/questline-backend/internal/data/db"
	"github.com/yungbote/questline-backend/internal/observability"
	"github.com/yungbote/questline-backend/internal/platform/cache"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

type CatalogCacheConfig struct {
	Size int           `env:"SIZE" envDefault:"256"`
	TTL  time.Duration `env:"TTL" envDefault:"5m"`
}

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogMode         string        `env:"LOG_MODE" envDefault:"development"`
	JWTSecretKey    string        `env:"JWT_SECRET_KEY" envDefault:"defaultsecret"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	BcryptCost      int           `env:"BCRYPT_COST" envDefault:"10"`

	DB           db.Config
	Redis        cache.RedisConfig        `envPrefix:"REDIS_"`
	Otel         observability.OtelConfig `envPrefix:"OTEL_"`
	CatalogCache CatalogCacheConfig       `envPrefix:"CATALOG_CACHE_"`
}

// LoadConfig parses the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	return cfg, nil
}

func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// LogLoaded debug-logs the effective configuration. The logger redacts
// secret-looking keys.
func (c Config) LogLoaded(log *logger.Logger) {
	log.Debug("config loaded",
		"port", c.Port,
		"log_mode", c.LogMode,
		"db_driver", c.DB.Driver,
		"postgres_host", c.DB.Postgres.Host,
		"postgres_name", c.DB.Postgres.Name,
		"postgres_password", c.DB.Postgres.Password,
		"jwt_secret_key", c.JWTSecretKey,
		"redis_addr", c.Redis.Addr,
		"redis_password", c.Redis.Password,
		"otel_enabled", c.Otel.Enabled,
		"cors_origins", c.CORSOrigins,
		"catalog_cache_ttl", c.CatalogCache.TTL,
	)
	if c.JWTSecretKey == "defaultsecret" {
		log.Warn("JWT_SECRET_KEY is unset; using the development default")
	}
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
