// Package redis cachea los umbrales de stock delante de otro ConfigStore (cache-aside).
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

var _ repository.ConfigStore = (*ThresholdCache)(nil)

// DefaultKey clave del hash con los umbrales.
const DefaultKey = "stock:thresholds"

const (
	fieldLow  = "low"
	fieldFull = "full"
)

// NewClient crea el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

// ThresholdCache decorador de ConfigStore. Un fallo de Redis nunca oculta al store real:
// se registra y se consulta el store.
type ThresholdCache struct {
	rdb  goredis.Cmdable
	next repository.ConfigStore
	key  string
	ttl  time.Duration
	log  *logger.Logger
}

// NewThresholdCache construye el decorador. ttl <= 0 deja las entradas sin expiración.
func NewThresholdCache(rdb goredis.Cmdable, next repository.ConfigStore, ttl time.Duration, log *logger.Logger) *ThresholdCache {
	return &ThresholdCache{rdb: rdb, next: next, key: DefaultKey, ttl: ttl, log: log.Component("threshold_cache")}
}

// WithKey cambia la clave del hash (útil para aislar tests o entornos).
func (c *ThresholdCache) WithKey(key string) *ThresholdCache {
	c.key = key
	return c
}

func (c *ThresholdCache) GetThresholds(ctx context.Context) (entity.Thresholds, bool, error) {
	if t, ok := c.get(ctx); ok {
		return t, true, nil
	}
	t, found, err := c.next.GetThresholds(ctx)
	if err != nil || !found {
		return t, found, err
	}
	c.set(ctx, t)
	return t, true, nil
}

// SaveThresholds guarda en el store y luego invalida la entrada cacheada.
func (c *ThresholdCache) SaveThresholds(ctx context.Context, t entity.Thresholds) error {
	if err := c.next.SaveThresholds(ctx, t); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", c.key).Msg("no se pudo invalidar la caché de umbrales")
	}
	return nil
}

func (c *ThresholdCache) get(ctx context.Context) (entity.Thresholds, bool) {
	values, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("lectura de caché fallida")
		return entity.Thresholds{}, false
	}
	low, errLow := strconv.Atoi(values[fieldLow])
	full, errFull := strconv.Atoi(values[fieldFull])
	if errLow != nil || errFull != nil {
		return entity.Thresholds{}, false
	}
	return entity.Thresholds{Low: low, Full: full}, true
}

func (c *ThresholdCache) set(ctx context.Context, t entity.Thresholds) {
	_, err := c.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, c.key, fieldLow, t.Low, fieldFull, t.Full)
		if c.ttl > 0 {
			pipe.Expire(ctx, c.key, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("escritura de caché fallida")
	}
}
