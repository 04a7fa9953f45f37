package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/internal/config"
)

// NewClient cria o cliente Redis. Retorna nil sem erro quando REDIS_URL não está configurada.
func NewClient(ctx context.Context, cfg config.Redis) (*goredis.Client, error) {
	if cfg.URL == "" {
		logrus.Warn("redis: REDIS_URL não configurada, usando cache em memória")
		return nil, nil
	}

	opt, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 10
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	logrus.Info("redis: conectado")
	return client, nil
}

// Close fecha a conexão, se existir
func Close(client *goredis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logrus.WithError(err).Error("redis: erro ao fechar conexão")
	}
}
