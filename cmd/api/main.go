package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/lead-pipeline-api/internal/api"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/scheduler"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
	"github.com/vfg2006/lead-pipeline-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	dealRepo := repository.NewDealRepository(pgConn)
	funnelRepo := repository.NewFunnelSectionRepository(pgConn)
	syncRecordRepo := repository.NewSyncRecordRepository(pgConn)

	sheetsIntegrator := sheets.New(cfg, sheetsclient.NewClient())

	analyzer := analyzing.NewService(cfg, dealRepo, funnelRepo, syncRecordRepo)
	syncer := syncing.NewService(cfg, sheetsIntegrator, dealRepo, funnelRepo, syncRecordRepo)

	sheetAutoSyncService := scheduler.NewSheetAutoSyncService(syncer, cfg)
	if err := sheetAutoSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auto-sync da planilha")
	}

	server, err := api.New(cfg, analyzer, syncer, sheetAutoSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown(pgConn.Close)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource muda para o diretório do main para que o .env da raiz seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Warn("Não foi possível mudar para o diretório do executável")
	}
}

// pgconn cria uma conexão com o banco de dados e garante que as tabelas existam
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar tabelas no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
