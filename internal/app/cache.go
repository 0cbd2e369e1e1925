package app

import (
	"context"
	"strings"

	"github.com/yungbote/questline-backend/internal/platform/cache"
	"github.com/yungbote/questline-backend/internal/platform/logger"
)

// wireCatalogCache uses Redis when REDIS_ADDR is set, otherwise an in-process LRU.
func wireCatalogCache(ctx context.Context, log *logger.Logger, cfg Config) (cache.Cache, error) {
	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		rc := cfg.Redis
		if rc.TTL <= 0 {
			rc.TTL = cfg.CatalogCache.TTL
		}
		c, err := cache.NewRedis(ctx, rc)
		if err != nil {
			return nil, err
		}
		log.Info("catalog cache: redis", "addr", rc.Addr)
		return c, nil
	}
	log.Info("catalog cache: in-process lru", "size", cfg.CatalogCache.Size, "ttl", cfg.CatalogCache.TTL)
	return cache.NewLRU(cfg.CatalogCache.Size, cfg.CatalogCache.TTL)
}
