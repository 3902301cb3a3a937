package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/database/postgres"
	"github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-status-monitor/infrastructure/migration"
	"github.com/vfg2006/ads-status-monitor/infrastructure/notifier/chat"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/api"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/internal/scheduler"
	"github.com/vfg2006/ads-status-monitor/internal/usecases/monitoring"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Run(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao migrar o esquema do banco")
	}

	accountRepo := repository.NewAccountRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	statusLogRepo := repository.NewStatusLogRepository(pgConn)
	webhookRepo := repository.NewWebhookRepository(pgConn)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := googleads.New(cfg, adsClient)

	notifier := chat.NewService(webhookRepo)

	// Um monitor por tipo de entidade, todos sobre o mesmo pipeline
	monitors := make([]*monitoring.Service, 0, len(domain.Descriptors))
	for _, descriptor := range domain.Descriptors {
		monitors = append(monitors, monitoring.NewService(
			cfg,
			descriptor,
			adsIntegrator,
			snapshotRepo,
			statusLogRepo,
			notifier,
		))
	}

	monitorService := scheduler.NewStatusMonitorService(accountRepo, monitors, cfg)

	if err := monitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de monitoramento de status")
	} else {
		logrus.Info("Agendador de monitoramento de status iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		accountRepo,
		statusLogRepo,
		monitorService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
