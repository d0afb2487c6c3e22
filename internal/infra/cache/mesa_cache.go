package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/mesa-api/internal/logger"
	"github.com/BruksfildServices01/mesa-api/internal/models"
)

// MesaCache é best-effort: erro de cache nunca vira erro de API.
// Miss e falha são indistinguíveis para quem consome.
type MesaCache interface {
	GetMesa(ctx context.Context, id uint) (*models.Mesa, bool)
	SetMesa(ctx context.Context, m *models.Mesa)

	GetLocal(ctx context.Context, local string, somenteAtivas bool) ([]models.Mesa, bool)
	SetLocal(ctx context.Context, local string, somenteAtivas bool, mesas []models.Mesa)

	// Invalidate derruba a entrada da mesa e todas as listagens
	// por local — qualquer mutação pode mudar qualquer listagem.
	Invalidate(ctx context.Context, id uint)
}

const localPrefix = "mesas:local:"

func mesaKey(id uint) string {
	return fmt.Sprintf("mesa:%d", id)
}

func localKey(local string, somenteAtivas bool) string {
	return fmt.Sprintf("%s%s:%t", localPrefix, local, somenteAtivas)
}

// --------------------------------------------------
// Redis
// --------------------------------------------------

type RedisMesaCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMesaCache(client *redis.Client, ttl time.Duration) *RedisMesaCache {
	return &RedisMesaCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisMesaCache) GetMesa(ctx context.Context, id uint) (*models.Mesa, bool) {
	raw, err := c.client.Get(ctx, mesaKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Error.Printf("cache get %s: %v", mesaKey(id), err)
		}
		return nil, false
	}

	var m models.Mesa
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, false
	}
	return &m, true
}

func (c *RedisMesaCache) SetMesa(ctx context.Context, m *models.Mesa) {
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, mesaKey(m.ID), b, c.ttl).Err(); err != nil {
		logger.Error.Printf("cache set %s: %v", mesaKey(m.ID), err)
	}
}

func (c *RedisMesaCache) GetLocal(
	ctx context.Context,
	local string,
	somenteAtivas bool,
) ([]models.Mesa, bool) {

	key := localKey(local, somenteAtivas)
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Error.Printf("cache get %s: %v", key, err)
		}
		return nil, false
	}

	var mesas []models.Mesa
	if err := json.Unmarshal([]byte(raw), &mesas); err != nil {
		return nil, false
	}
	return mesas, true
}

func (c *RedisMesaCache) SetLocal(
	ctx context.Context,
	local string,
	somenteAtivas bool,
	mesas []models.Mesa,
) {
	b, err := json.Marshal(mesas)
	if err != nil {
		return
	}
	key := localKey(local, somenteAtivas)
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		logger.Error.Printf("cache set %s: %v", key, err)
	}
}

func (c *RedisMesaCache) Invalidate(ctx context.Context, id uint) {
	if err := c.client.Del(ctx, mesaKey(id)).Err(); err != nil {
		logger.Error.Printf("cache del %s: %v", mesaKey(id), err)
	}

	iter := c.client.Scan(ctx, 0, localPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Error.Printf("cache del %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		logger.Error.Printf("cache scan %s*: %v", localPrefix, err)
	}
}

// --------------------------------------------------
// Disabled (sem REDIS_ADDR e nos testes)
// --------------------------------------------------

type DisabledMesaCache struct{}

func NewDisabledMesaCache() *DisabledMesaCache {
	return &DisabledMesaCache{}
}

func (DisabledMesaCache) GetMesa(context.Context, uint) (*models.Mesa, bool) {
	return nil, false
}

func (DisabledMesaCache) SetMesa(context.Context, *models.Mesa) {}

func (DisabledMesaCache) GetLocal(context.Context, string, bool) ([]models.Mesa, bool) {
	return nil, false
}

func (DisabledMesaCache) SetLocal(context.Context, string, bool, []models.Mesa) {}

func (DisabledMesaCache) Invalidate(context.Context, uint) {}
