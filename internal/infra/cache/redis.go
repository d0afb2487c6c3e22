package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/mesa-api/internal/config"
	"github.com/BruksfildServices01/mesa-api/internal/logger"
)

// NewMesaCache monta o cache a partir da configuração.
// Sem REDIS_ADDR, ou com o redis fora do ar, a API sobe
// normalmente sem cache.
func NewMesaCache(cfg *config.Config) MesaCache {
	if cfg.RedisAddr == "" {
		return NewDisabledMesaCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error.Printf("redis unavailable at %s, cache disabled: %v", cfg.RedisAddr, err)
		return NewDisabledMesaCache()
	}

	logger.Info.Printf("redis cache enabled at %s (ttl=%ds)", cfg.RedisAddr, cfg.CacheTTLSeconds)

	return NewRedisMesaCache(
		client,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
	)
}
