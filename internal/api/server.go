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
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/internal/api/handler"
	"github.com/vfg2006/lead-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
	"github.com/vfg2006/lead-pipeline-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	syncer syncing.Syncer,
	autoSyncService handler.CronJob,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SheetAutoSyncService: autoSyncService,
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, analyzer, syncer, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares global
func NewHandler(
	config *config.Config,
	analyzer analyzing.Analyzer,
	syncer syncing.Syncer,
	cronServices handler.CronJobServices,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Deals(analyzer)...),
		router.WithRoutes(handler.Analytics(analyzer)...),
		router.WithRoutes(handler.Sheets(syncer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra uma limpeza executada depois que o HTTP para de aceitar requisições
func (s *Server) OnShutdown(fn func() error) {
	s.onShutdown = append(s.onShutdown, fn)
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")

	logrus.Info("Executando operações de limpeza")
	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			logrus.WithError(err).Error("Erro durante a limpeza do desligamento")
		}
	}

	return nil
}
