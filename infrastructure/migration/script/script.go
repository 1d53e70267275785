package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
)

// Cria as tabelas deals, funnel_sections e sync_records no banco configurado.
// Pode ser executado várias vezes: o schema usa IF NOT EXISTS.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return postgres.EnsureSchema(ctx, q)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migração")
	}

	logrus.WithField("duration", time.Since(startTime)).Info("Migração concluída com sucesso")
}
