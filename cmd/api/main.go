package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/api"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/scheduler"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/alerting"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	leadRepo := repository.NewLeadRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	commissionRepo := repository.NewCommissionRepository(pgConn)
	pipelineConfigRepo := repository.NewPipelineConfigRepository(pgConn)
	slaStateRepo := repository.NewSLAStateRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	forecastHistoryRepo := repository.NewForecastHistoryRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	pipelineService := pipeline.NewService(projectRepo, pipelineConfigRepo)

	forecastService := forecasting.NewService(
		cfg,
		leadRepo,
		projectRepo,
		commissionRepo,
		forecastHistoryRepo,
		pipelineService, // Implementa StageProvider
	)

	alertingService := alerting.NewService(
		projectRepo,
		slaStateRepo,
		notificationRepo,
		pipelineService, // Implementa StageProvider
		alerting.NewLogNotifier(),
	)

	// Inicializa os agendadores das rotinas periódicas
	slaMonitorService := scheduler.NewSLAMonitorService(
		tenantRepo,
		alertingService,
		cfg,
	)

	forecastSnapshotService := scheduler.NewForecastSnapshotService(
		tenantRepo,
		forecastHistoryRepo,
		forecastService,
		cfg,
	)

	// Inicia os agendadores em background
	if err := slaMonitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de monitoramento de SLA")
	} else {
		logrus.Info("Agendador de monitoramento de SLA iniciado com sucesso")
	}

	if err := forecastSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshot de forecast")
	} else {
		logrus.Info("Agendador de snapshot de forecast iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		forecastService,
		pipelineService,
		notificationRepo,
		authenticator,
		slaMonitorService,
		forecastSnapshotService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
