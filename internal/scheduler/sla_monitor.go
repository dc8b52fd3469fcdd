// Package scheduler contém os serviços de agendamento das rotinas periódicas
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
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/alerting"
)

type SLAMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// SLAMonitorService roda periodicamente a passada de avaliação de SLA sobre
// todos os tenants ativos, alimentando a ponte de alertas
type SLAMonitorService struct {
	scheduler           *gocron.Scheduler
	tenantRepo          repository.TenantRepository
	alertingService     alerting.AlertingService
	config              SLAMonitorConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewSLAMonitorService(
	tenantRepo repository.TenantRepository,
	alertingService alerting.AlertingService,
	cfg *config.Config,
) *SLAMonitorService {
	monitorConfig := SLAMonitorConfig{
		CronSchedule: cfg.SLAMonitor.CronSchedule, // Default: toda hora cheia
		Enabled:      cfg.SLAMonitor.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
	}).Info("Configuração do monitor de SLA carregada")

	return &SLAMonitorService{
		scheduler:       scheduler,
		tenantRepo:      tenantRepo,
		alertingService: alertingService,
		config:          monitorConfig,
	}
}

func (s *SLAMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Monitor de SLA desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando monitor de SLA")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunMonitoringPass(ctx); err != nil {
			logrus.WithError(err).Error("Erro na passada de monitoramento de SLA")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar monitor de SLA: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando monitor de SLA")
		s.scheduler.Stop()
	}()

	return nil
}

// RunMonitoringPass avalia o SLA dos projetos de todos os tenants ativos.
// Uma única passada por vez: execuções sobrepostas são ignoradas.
func (s *SLAMonitorService) RunMonitoringPass(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Passada de monitoramento de SLA já está em execução")
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

	logrus.Info("Iniciando passada de monitoramento de SLA")

	tenants, err := s.tenantRepo.ListActiveTenants()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants ativos para o monitor de SLA")
		return err
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant ativo encontrado para o monitor de SLA")
		return nil
	}

	totalAlerts := 0
	for _, tenant := range tenants {
		notifications, err := s.alertingService.RunEvaluationPass(ctx, tenant.ID)
		if err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Error("Erro na avaliação de SLA do tenant")
			continue
		}
		totalAlerts += len(notifications)
	}

	logrus.WithFields(logrus.Fields{
		"tenants": len(tenants),
		"alerts":  totalAlerts,
	}).Info("Passada de monitoramento de SLA concluída")

	return nil
}

// TriggerManualSync dispara uma passada fora do agendamento
func (s *SLAMonitorService) TriggerManualSync() {
	go func() {
		if err := s.RunMonitoringPass(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na passada manual de monitoramento de SLA")
		}
	}()
}

// GetStatus retorna o estado de execução do monitor para o endpoint de crons
func (s *SLAMonitorService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}
