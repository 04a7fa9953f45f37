package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/cache"
	"github.com/vfg2006/leads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/leads-analytics-api/infrastructure/database/redis"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/metrikaclient"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/api"
	"github.com/vfg2006/leads-analytics-api/internal/api/handler"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/scheduler"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/aliasing"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Warn("redis: indisponível, usando cache em memória")
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	userRepo := repository.NewUserRepository(pgConn)
	aliasRepo := repository.NewCampaignAliasRepository(pgConn)

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg.Sheets)
	if err != nil {
		logrus.WithError(err).Fatal("sheets: erro ao criar cliente da planilha")
	}
	rowStore := sheets.New(cfg, sheetsClient, rowCache(cfg, redisClient))

	adAnalytics := metrika.New(cfg, metrikaclient.NewClient(cfg))

	authenticator := authenticating.NewService(userRepo, cfg)
	insightService := insighting.NewService(cfg, rowStore, adAnalytics, aliasRepo)
	leadService := leading.NewService(cfg, rowStore, aliasRepo)
	reconcileService := reconciling.NewService(cfg, rowStore, aliasRepo)
	aliasService := aliasing.NewService(aliasRepo)

	leadSyncService := scheduler.NewLeadSyncService(rowStore, adAnalytics, aliasRepo, reconcileService, cfg)
	if err := leadSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("lead-sync: erro ao iniciar o agendador")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Insighter:     insightService,
		Leads:         leadService,
		Reconciler:    reconcileService,
		Aliases:       aliasService,
		AdAnalytics:   adAnalytics,
		CronJobs:      handler.CronJobServices{LeadSyncService: leadSyncService},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// rowCache usa o Redis quando configurado e cai para o cache em memória
func rowCache(cfg *config.Config, client *goredis.Client) cache.RowCache {
	if client == nil {
		return cache.NewMemoryRowCache(cfg.Sheets.CacheTTL(), time.Now)
	}
	return cache.NewRedisRowCache(client, cfg.Sheets.CacheTTL())
}

// chdirToSource faz o .env relativo ao binário ser encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
