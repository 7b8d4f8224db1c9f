package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const keyPrefix = "agenda:availability:"

// Результаты обращения к кэшу для метрик
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Cache кэш ответа недельной доступности.
// На тенанта один hash, поле это дата начала окна (UTC).
// Любая новая запись тенанта удаляет hash целиком.
type Cache struct {
	client  RedisClient
	ttl     time.Duration
	metrics Metrics
}

// NewCache создает кэш. metrics может быть nil.
func NewCache(client RedisClient, ttl time.Duration, metrics Metrics) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Get возвращает закэшированный ответ. found=false при промахе.
func (c *Cache) Get(ctx context.Context, tenantID string, day time.Time) ([]byte, bool, error) {
	payload, err := c.client.HGet(ctx, key(tenantID), field(day)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe(ResultMiss)
		return nil, false, nil
	}
	if err != nil {
		c.observe(ResultError)
		return nil, false, fmt.Errorf("%w: HGet %s: %v", ErrCacheRead, tenantID, err)
	}

	c.observe(ResultHit)
	return payload, true, nil
}

// Set сохраняет ответ и продлевает TTL hash'а тенанта
func (c *Cache) Set(ctx context.Context, tenantID string, day time.Time, payload []byte) error {
	k := key(tenantID)

	if err := c.client.HSet(ctx, k, field(day), payload).Err(); err != nil {
		return fmt.Errorf("%w: HSet %s: %v", ErrCacheWrite, tenantID, err)
	}
	if err := c.client.Expire(ctx, k, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Expire %s: %v", ErrCacheWrite, tenantID, err)
	}

	return nil
}

// Invalidate удаляет все закэшированные окна тенанта
func (c *Cache) Invalidate(ctx context.Context, tenantID string) error {
	if err := c.client.Del(ctx, key(tenantID)).Err(); err != nil {
		return fmt.Errorf("%w: Del %s: %v", ErrCacheWrite, tenantID, err)
	}
	return nil
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.IncAvailabilityCache(result)
	}
}

func key(tenantID string) string {
	return keyPrefix + tenantID
}

func field(day time.Time) string {
	return day.UTC().Format(domain.DateFormat)
}
