package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

const redisKeyPrefix = "leads:rows:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RedisRowCache guarda os snapshots no Redis, compartilhados entre instâncias.
// Falhas do Redis são tratadas como cache vazio.
type RedisRowCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRowCache(client *redis.Client, ttl time.Duration) *RedisRowCache {
	return &RedisRowCache{client: client, ttl: ttl}
}

func (c *RedisRowCache) Get(ctx context.Context, table string) ([]domain.Row, bool) {
	data, err := c.client.Get(ctx, redisKeyPrefix+table).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("table", table).Warn("cache: erro ao ler linhas do redis")
		}
		return nil, false
	}

	var rows []domain.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		logrus.WithError(err).WithField("table", table).Warn("cache: payload inválido no redis")
		return nil, false
	}

	return rows, true
}

func (c *RedisRowCache) Set(ctx context.Context, table string, rows []domain.Row) {
	if c.ttl <= 0 {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		logrus.WithError(err).WithField("table", table).Warn("cache: erro ao serializar linhas")
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+table, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("table", table).Warn("cache: erro ao gravar linhas no redis")
	}
}

func (c *RedisRowCache) Invalidate(ctx context.Context, table string) {
	if err := c.client.Del(ctx, redisKeyPrefix+table).Err(); err != nil {
		logrus.WithError(err).WithField("table", table).Warn("cache: erro ao invalidar linhas no redis")
	}
}
