package pipeline

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

// PipelineService expõe as operações de pipeline para os handlers e para os
// demais usecases (forecast e alertas consomem GetStages e a avaliação de SLA)
type PipelineService interface {
	// GetStages retorna os estágios configurados do tenant, ordenados. Lacuna
	// de configuração nunca vira erro: sem configuração própria (ou com falha
	// de leitura) vale o pipeline padrão.
	GetStages(tenantID string) []domain.StageConfig

	// Evaluate classifica a pontualidade de um estágio para o tenant
	Evaluate(stageID string, daysElapsed int, tenantID string) domain.SLAStatus

	// InitializeSchedule popula (ou apenas reavalia) o cronograma do projeto
	// e persiste o resultado
	InitializeSchedule(projectID string) (*domain.Project, error)

	// AdvanceStage avança o projeto um estágio e persiste o cronograma
	// rebaseado. Projeto no estágio terminal retorna inalterado, sem erro.
	AdvanceStage(projectID string) (*domain.Project, error)
}

type Service struct {
	projectRepo  repository.ProjectRepository
	pipelineRepo repository.PipelineConfigRepository
}

func NewService(
	projectRepo repository.ProjectRepository,
	pipelineRepo repository.PipelineConfigRepository,
) PipelineService {
	return &Service{
		projectRepo:  projectRepo,
		pipelineRepo: pipelineRepo,
	}
}

func (s *Service) GetStages(tenantID string) []domain.StageConfig {
	stages, err := s.pipelineRepo.GetStagesByTenant(tenantID)
	if err != nil {
		logrus.WithError(err).WithField("tenant_id", tenantID).
			Warn("Erro ao carregar configuração de pipeline, usando pipeline padrão")
		return DefaultStages()
	}

	if len(stages) == 0 {
		return DefaultStages()
	}

	// A configuração externa é autoridade sobre a ordem, mas garantimos a
	// ordenação crescente e ids únicos antes de usar
	sort.SliceStable(stages, func(i, j int) bool {
		return stages[i].Order < stages[j].Order
	})

	seen := make(map[string]struct{}, len(stages))
	unique := stages[:0]
	for _, stage := range stages {
		if _, ok := seen[stage.ID]; ok {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenantID,
				"stage_id":  stage.ID,
			}).Warn("Estágio duplicado na configuração do pipeline, mantendo a primeira ocorrência")
			continue
		}
		seen[stage.ID] = struct{}{}
		unique = append(unique, stage)
	}

	return unique
}

func (s *Service) Evaluate(stageID string, daysElapsed int, tenantID string) domain.SLAStatus {
	return EvaluateSLA(stageID, daysElapsed, s.GetStages(tenantID))
}

func (s *Service) InitializeSchedule(projectID string) (*domain.Project, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	stages := s.GetStages(project.TenantID)
	updated := InitializeSchedule(project, stages, time.Now())

	if err := s.projectRepo.UpdateSchedule(updated); err != nil {
		return nil, NewPipelineError(ErrDatabaseOperation, projectID, err.Error())
	}

	return updated, nil
}

func (s *Service) AdvanceStage(projectID string) (*domain.Project, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	stages := s.GetStages(project.TenantID)
	now := time.Now()

	// Projetos nunca observados ganham o cronograma antes do avanço
	project = InitializeSchedule(project, stages, now)

	updated := AdvanceStage(project, stages, now)

	if err := s.projectRepo.UpdateSchedule(updated); err != nil {
		return nil, NewPipelineError(ErrDatabaseOperation, projectID, err.Error())
	}

	return updated, nil
}

func (s *Service) loadProject(projectID string) (*domain.Project, error) {
	if projectID == "" {
		return nil, ErrProjectIDRequired
	}

	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, NewPipelineError(ErrDatabaseOperation, projectID, err.Error())
	}

	if project == nil {
		return nil, NewPipelineError(ErrProjectNotFound, projectID, "")
	}

	return project, nil
}
