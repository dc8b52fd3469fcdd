package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/forecasting"
)

type ForecastSnapshotConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// ForecastSnapshotService grava uma fotografia diária do forecast de cada
// tenant ativo e remove fotografias mais antigas que a retenção configurada
type ForecastSnapshotService struct {
	scheduler           *gocron.Scheduler
	tenantRepo          repository.TenantRepository
	historyRepo         repository.ForecastHistoryRepository
	forecaster          forecasting.Forecaster
	config              ForecastSnapshotConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewForecastSnapshotService(
	tenantRepo repository.TenantRepository,
	historyRepo repository.ForecastHistoryRepository,
	forecaster forecasting.Forecaster,
	cfg *config.Config,
) *ForecastSnapshotService {
	snapshotConfig := ForecastSnapshotConfig{
		CronSchedule:  cfg.ForecastSnapshot.CronSchedule,  // Default: 05:30 todo dia
		Enabled:       cfg.ForecastSnapshot.Enabled,       // Default: desabilitado
		RetentionDays: cfg.ForecastSnapshot.RetentionDays, // Default: 90 dias
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  snapshotConfig.CronSchedule,
		"retention_days": snapshotConfig.RetentionDays,
	}).Info("Configuração do snapshot de forecast carregada")

	return &ForecastSnapshotService{
		scheduler:   scheduler,
		tenantRepo:  tenantRepo,
		historyRepo: historyRepo,
		forecaster:  forecaster,
		config:      snapshotConfig,
	}
}

func (s *ForecastSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot de forecast desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando snapshot de forecast")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshotPass(ctx); err != nil {
			logrus.WithError(err).Error("Erro na passada de snapshot de forecast")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de forecast: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando snapshot de forecast")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSnapshotPass calcula e persiste o forecast do dia para cada tenant
// ativo. A passada é idempotente: rodar duas vezes no mesmo dia apenas
// sobrescreve a fotografia do dia.
func (s *ForecastSnapshotService) RunSnapshotPass(_ context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Passada de snapshot de forecast já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando passada de snapshot de forecast")

	tenants, err := s.tenantRepo.ListActiveTenants()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants ativos para o snapshot de forecast")
		return err
	}

	today := time.Now()
	saved := 0
	for _, tenant := range tenants {
		forecast, err := s.forecaster.GetForecast(tenant.ID)
		if err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Error("Erro ao calcular forecast do tenant")
			continue
		}

		snapshot := &domain.ForecastSnapshot{
			TenantID:   tenant.ID,
			Date:       today,
			Revenue30:  forecast.Revenue30,
			Revenue60:  forecast.Revenue60,
			Revenue90:  forecast.Revenue90,
			Confidence: forecast.Confidence,
		}

		if err := s.historyRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Error("Erro ao salvar snapshot de forecast")
			continue
		}
		saved++
	}

	deleted, err := s.historyRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao limpar snapshots antigos de forecast")
	}

	logrus.WithFields(logrus.Fields{
		"tenants": len(tenants),
		"saved":   saved,
		"deleted": deleted,
	}).Info("Passada de snapshot de forecast concluída")

	return nil
}

// TriggerManualSync dispara uma passada fora do agendamento
func (s *ForecastSnapshotService) TriggerManualSync() {
	go func() {
		if err := s.RunSnapshotPass(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na passada manual de snapshot de forecast")
		}
	}()
}

// GetStatus retorna o estado de execução do serviço para o endpoint de crons
func (s *ForecastSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"retention_days":    s.config.RetentionDays,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}
