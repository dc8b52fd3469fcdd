package alerting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/solar-pipeline-api/pkg/utils"
)

// AlertingService roda passadas de avaliação de SLA sobre os projetos de um
// tenant e emite notificações nas transições de status
type AlertingService interface {
	RunEvaluationPass(ctx context.Context, tenantID string) ([]*domain.Notification, error)
}

// StageProvider é a fatia do serviço de pipeline que a ponte consome
type StageProvider interface {
	GetStages(tenantID string) []domain.StageConfig
}

type Service struct {
	projectRepo      repository.ProjectRepository
	slaStateRepo     repository.SLAStateRepository
	notificationRepo repository.NotificationRepository
	stageProvider    StageProvider
	notifier         Notifier

	// O ciclo ler-comparar-gravar do mapa de estados precisa ser serializado
	// por tenant; sem isso, duas passadas concorrentes duplicariam ou
	// perderiam alertas
	mu          sync.Mutex
	tenantLocks map[string]*sync.Mutex
}

func NewService(
	projectRepo repository.ProjectRepository,
	slaStateRepo repository.SLAStateRepository,
	notificationRepo repository.NotificationRepository,
	stageProvider StageProvider,
	notifier Notifier,
) *Service {
	return &Service{
		projectRepo:      projectRepo,
		slaStateRepo:     slaStateRepo,
		notificationRepo: notificationRepo,
		stageProvider:    stageProvider,
		notifier:         notifier,
		tenantLocks:      make(map[string]*sync.Mutex),
	}
}

// RunEvaluationPass reavalia o SLA de todos os projetos do tenant, detecta
// transições desde a última passada e emite uma notificação por transição.
// Estritamente edge-triggered: projeto que continua atrasado não re-alerta.
func (s *Service) RunEvaluationPass(ctx context.Context, tenantID string) ([]*domain.Notification, error) {
	lock := s.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stages := s.stageProvider.GetStages(tenantID)

	projects, err := s.projectRepo.ListByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar projetos do tenant %s: %w", tenantID, err)
	}

	now := time.Now()
	refreshed := make([]*domain.Project, 0, len(projects))
	for _, project := range projects {
		updated := pipeline.InitializeSchedule(project, stages, now)

		// Persiste apenas quando a passada mudou algo (cronograma recém-
		// populado ou status de SLA diferente)
		if updated.SLAStatus != project.SLAStatus || len(project.TargetDates) == 0 {
			if err := s.projectRepo.UpdateSchedule(updated); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"tenant_id":  tenantID,
					"project_id": project.ID,
				}).Error("Erro ao persistir cronograma reavaliado do projeto")
			}
		}

		refreshed = append(refreshed, updated)
	}

	previous, err := s.slaStateRepo.GetStatesByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar estados de SLA do tenant %s: %w", tenantID, err)
	}

	transitions, _ := DetectTransitions(previous, refreshed)

	notifications := make([]*domain.Notification, 0)
	for _, transition := range transitions {
		if err := s.recordTransition(tenantID, transition); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id":  tenantID,
				"project_id": transition.Project.ID,
			}).Error("Erro ao registrar transição de SLA")
			continue
		}

		if !transition.Alert {
			continue
		}

		notification := buildNotification(tenantID, transition)

		if err := s.notificationRepo.Save(notification); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"tenant_id":  tenantID,
				"project_id": transition.Project.ID,
			}).Error("Erro ao salvar notificação de SLA")
			continue
		}

		if err := s.notifier.Notify(notification); err != nil {
			logrus.WithError(err).WithField("notification_id", notification.ID).
				Warn("Erro ao entregar notificação ao sink")
		}

		notifications = append(notifications, notification)
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"projects":    len(refreshed),
		"transitions": len(transitions),
		"alerts":      len(notifications),
	}).Info("Passada de avaliação de SLA concluída")

	return notifications, nil
}

func (s *Service) recordTransition(tenantID string, transition Transition) error {
	if transition.To == domain.SLAStatusOnTrack {
		return s.slaStateRepo.DeleteState(tenantID, transition.Project.ID)
	}
	return s.slaStateRepo.SaveState(tenantID, transition.Project.ID, transition.To)
}

func buildNotification(tenantID string, transition Transition) *domain.Notification {
	id, err := utils.GenerateID()
	if err != nil {
		// Nanoid só falha sem entropia disponível; o timestamp evita perder o alerta
		id = fmt.Sprintf("ntf-%d", time.Now().UnixNano())
	}

	project := transition.Project

	notification := &domain.Notification{
		ID:       id,
		TenantID: tenantID,
		Data: map[string]string{
			"project_id": project.ID,
			"stage":      project.Stage,
			"sla_status": string(transition.To),
		},
		ActionURL: fmt.Sprintf("/projects/%s", project.ID),
		CreatedAt: time.Now(),
	}

	switch transition.To {
	case domain.SLAStatusLate:
		notification.Type = domain.NotificationTypeSLALate
		notification.Priority = domain.NotificationPriorityUrgent
		notification.Title = "Projeto com SLA estourado"
		notification.Message = fmt.Sprintf("O projeto %s estourou o prazo do estágio %s", project.ID, project.Stage)
	default:
		notification.Type = domain.NotificationTypeSLAAtRisk
		notification.Priority = domain.NotificationPriorityHigh
		notification.Title = "Projeto com SLA em risco"
		notification.Message = fmt.Sprintf("O projeto %s está a até 2 dias de estourar o prazo do estágio %s", project.ID, project.Stage)
	}

	return notification
}

func (s *Service) tenantLock(tenantID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.tenantLocks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		s.tenantLocks[tenantID] = lock
	}

	return lock
}
