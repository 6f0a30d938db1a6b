package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/internal/api/handler"
	"github.com/vfg2006/production-report-api/internal/api/handler/router"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/production-report-api/internal/usecases/reporting"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/middleware"
)

const (
	readHeaderTimeout = 2 * time.Second
	// geração de PDF e planilha acontece dentro da requisição
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 15 * time.Second
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	reporter reporting.Reporter,
	authenticator authenticating.Authenticator,
	cronServices handler.CronJobServices,
) (*Server, error) {
	if config.App.Location == nil {
		return nil, errors.New("fuso horário da aplicação não configurado")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Reports(reporter, config.App.Location)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
		},
	}, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run bloqueia até SIGINT/SIGTERM, cancelamento do contexto ou falha do listener
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return errors.Wrap(err, "erro durante a execução do servidor")
		}
		return nil
	case <-ctx.Done():
		log.L.Info("Sinal de término recebido, desligando servidor")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "erro ao desligar servidor HTTP")
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
