package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/solar-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetStages(t *testing.T) {
	customStages := []domain.StageConfig{
		{ID: "COMISSIONING", Name: "Comissionamento", TargetDays: 4, Order: 2},
		{ID: "SITE_SURVEY", Name: "Vistoria", TargetDays: 2, Order: 1},
		{ID: "SITE_SURVEY", Name: "Vistoria duplicada", TargetDays: 9, Order: 3},
	}

	tests := []struct {
		name     string
		stages   []domain.StageConfig
		err      error
		expected []domain.StageConfig
	}{
		{
			name:     "Tenant sem configuração própria usa o pipeline padrão",
			stages:   []domain.StageConfig{},
			expected: DefaultStages(),
		},
		{
			name:     "Falha na leitura da configuração usa o pipeline padrão",
			err:      errors.New("conexão recusada"),
			expected: DefaultStages(),
		},
		{
			name:   "Configuração própria é ordenada e deduplicada",
			stages: customStages,
			expected: []domain.StageConfig{
				{ID: "SITE_SURVEY", Name: "Vistoria", TargetDays: 2, Order: 1},
				{ID: "COMISSIONING", Name: "Comissionamento", TargetDays: 4, Order: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
			mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)
			mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return(tt.stages, tt.err)

			service := NewService(mockProjectRepo, mockPipelineRepo)

			assert.Equal(t, tt.expected, service.GetStages("t1"))
		})
	}
}

func TestEvaluate_UsaConfiguracaoDoTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)
	mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return([]domain.StageConfig{
		{ID: "SITE_SURVEY", Name: "Vistoria", TargetDays: 10, Order: 1},
	}, nil)

	service := NewService(mockProjectRepo, mockPipelineRepo)

	// Com alvo de 10 dias do tenant, 6 dias ainda está no prazo (no padrão
	// de 3 dias já estaria atrasado)
	assert.Equal(t, domain.SLAStatusOnTrack, service.Evaluate("SITE_SURVEY", 6, "t1"))
}

func TestInitializeSchedule_Service(t *testing.T) {
	t.Run("ID vazio retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.InitializeSchedule("")

		assert.ErrorIs(t, err, ErrProjectIDRequired)
		assert.Nil(t, project)
	})

	t.Run("Projeto inexistente retorna erro de não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)
		mockProjectRepo.EXPECT().GetByID("P404").Return(nil, nil)

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.InitializeSchedule("P404")

		assert.ErrorIs(t, err, ErrProjectNotFound)
		assert.Nil(t, project)

		var pipelineErr *PipelineError
		assert.ErrorAs(t, err, &pipelineErr)
		assert.Equal(t, "P404", pipelineErr.ProjectID)
	})

	t.Run("Erro do banco na leitura é propagado com contexto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)
		mockProjectRepo.EXPECT().GetByID("P1").Return(nil, errors.New("conexão recusada"))

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.InitializeSchedule("P1")

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, project)
	})

	t.Run("Cronograma populado é persistido e retornado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		stored := &domain.Project{
			ID:        "P1",
			TenantID:  "t1",
			Stage:     domain.StageSiteSurvey,
			CreatedAt: time.Now(),
		}

		mockProjectRepo.EXPECT().GetByID("P1").Return(stored, nil)
		mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return(nil, nil)

		var persisted *domain.Project
		mockProjectRepo.EXPECT().UpdateSchedule(gomock.Any()).DoAndReturn(
			func(p *domain.Project) error {
				persisted = p
				return nil
			})

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.InitializeSchedule("P1")

		assert.NoError(t, err)
		assert.Same(t, persisted, project)
		assert.Len(t, project.TargetDates, len(DefaultStages()))
		assert.Equal(t, domain.SLAStatusOnTrack, project.SLAStatus)
		// O snapshot lido do banco não é mutado
		assert.Empty(t, stored.TargetDates)
	})

	t.Run("Falha ao persistir vira erro de banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		stored := &domain.Project{
			ID:        "P1",
			TenantID:  "t1",
			Stage:     domain.StageSiteSurvey,
			CreatedAt: time.Now(),
		}

		mockProjectRepo.EXPECT().GetByID("P1").Return(stored, nil)
		mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return(nil, nil)
		mockProjectRepo.EXPECT().UpdateSchedule(gomock.Any()).Return(errors.New("deadlock"))

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.InitializeSchedule("P1")

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.Nil(t, project)
	})
}

func TestAdvanceStage_Service(t *testing.T) {
	t.Run("Avanço persiste o cronograma rebaseado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		stored := &domain.Project{
			ID:        "P1",
			TenantID:  "t1",
			Stage:     domain.StageSiteSurvey,
			CreatedAt: time.Now().AddDate(0, 0, -2),
		}

		mockProjectRepo.EXPECT().GetByID("P1").Return(stored, nil)
		mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return(nil, nil)
		mockProjectRepo.EXPECT().UpdateSchedule(gomock.Any()).Return(nil)

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.AdvanceStage("P1")

		assert.NoError(t, err)
		assert.Equal(t, domain.StageDesign, project.Stage)
		assert.Contains(t, project.ActualDates, domain.StageSiteSurvey)
	})

	t.Run("Projeto no estágio terminal é persistido inalterado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		stored := &domain.Project{
			ID:        "P1",
			TenantID:  "t1",
			Stage:     domain.StagePTO,
			CreatedAt: time.Now().AddDate(0, 0, -60),
		}

		mockProjectRepo.EXPECT().GetByID("P1").Return(stored, nil)
		mockPipelineRepo.EXPECT().GetStagesByTenant("t1").Return(nil, nil)
		mockProjectRepo.EXPECT().UpdateSchedule(gomock.Any()).Return(nil)

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.AdvanceStage("P1")

		assert.NoError(t, err)
		assert.Equal(t, domain.StagePTO, project.Stage)
	})

	t.Run("ID vazio retorna erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
		mockPipelineRepo := repomocks.NewMockPipelineConfigRepository(ctrl)

		service := NewService(mockProjectRepo, mockPipelineRepo)

		project, err := service.AdvanceStage("")

		assert.ErrorIs(t, err, ErrProjectIDRequired)
		assert.Nil(t, project)
	})
}
