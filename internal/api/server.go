package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/internal/api/handler"
	"github.com/vfg2006/leads-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/aliasing"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/leads-analytics-api/pkg/middleware"
)

// Services agrupa as dependências expostas pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Insighter     insighting.Insighter
	Leads         leading.LeadManager
	Reconciler    reconciling.Reconciler
	Aliases       aliasing.AliasManager
	AdAnalytics   metrika.AdAnalytics
	CronJobs      handler.CronJobServices
}

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.Analytics(services.Insighter)...),
		router.WithRoutes(handler.Goals(services.AdAnalytics)...),
		router.WithRoutes(handler.Leads(services.Leads, services.Reconciler)...),
		router.WithRoutes(handler.CampaignAliases(services.Aliases)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services.Authenticator, rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// NewHandler aplica a cadeia global de middlewares sobre o router
func NewHandler(config *config.Config, validator middleware.TokenValidator, rt http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(validator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run serve até receber SIGINT/SIGTERM ou até o contexto ser cancelado
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("http: servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logrus.WithError(err).Error("http: erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("http: sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("http: iniciando desligamento gracioso")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("http: erro durante o desligamento do servidor")
		return err
	}

	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("http: servidor desligado")
	return nil
}
