package alerting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/solar-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	alertmocks "github.com/vfg2006/solar-pipeline-api/internal/usecases/alerting/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"go.uber.org/mock/gomock"
)

func scheduledProject(id string, stage string, createdDaysAgo int, status domain.SLAStatus) *domain.Project {
	created := time.Now().AddDate(0, 0, -createdDaysAgo)
	project := &domain.Project{
		ID:          id,
		TenantID:    "t1",
		Stage:       stage,
		SLAStatus:   status,
		CreatedAt:   created,
		ActualDates: map[string]time.Time{},
		TargetDates: map[string]time.Time{},
	}

	cursor := created
	for _, s := range pipeline.DefaultStages() {
		cursor = cursor.AddDate(0, 0, s.TargetDays)
		project.TargetDates[s.ID] = cursor
	}

	return project
}

func TestRunEvaluationPass_ProjetoEstourado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockSLAStateRepo := repomocks.NewMockSLAStateRepository(ctrl)
	mockNotificationRepo := repomocks.NewMockNotificationRepository(ctrl)
	mockStageProvider := alertmocks.NewMockStageProvider(ctrl)
	mockNotifier := alertmocks.NewMockNotifier(ctrl)

	service := NewService(mockProjectRepo, mockSLAStateRepo, mockNotificationRepo, mockStageProvider, mockNotifier)

	// Projeto há 10 dias na vistoria (alvo de 3): SLA recalculado como atrasado
	project := scheduledProject("P1", domain.StageSiteSurvey, 10, domain.SLAStatusOnTrack)

	mockStageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())
	mockProjectRepo.EXPECT().ListByTenant("t1").Return([]*domain.Project{project}, nil)
	// O status mudou de onTrack para late, então o projeto é persistido
	mockProjectRepo.EXPECT().UpdateSchedule(gomock.Any()).Return(nil)
	mockSLAStateRepo.EXPECT().GetStatesByTenant("t1").Return(map[string]domain.SLAStatus{}, nil)
	mockSLAStateRepo.EXPECT().SaveState("t1", "P1", domain.SLAStatusLate).Return(nil)
	mockNotificationRepo.EXPECT().Save(gomock.Any()).Return(nil)
	mockNotifier.EXPECT().Notify(gomock.Any()).Return(nil)

	notifications, err := service.RunEvaluationPass(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationTypeSLALate, notifications[0].Type)
	assert.Equal(t, domain.NotificationPriorityUrgent, notifications[0].Priority)
	assert.Equal(t, "P1", notifications[0].Data["project_id"])
	assert.Equal(t, "/projects/P1", notifications[0].ActionURL)
}

func TestRunEvaluationPass_ProjetoContinuaAtrasadoNaoReAlerta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockSLAStateRepo := repomocks.NewMockSLAStateRepository(ctrl)
	mockNotificationRepo := repomocks.NewMockNotificationRepository(ctrl)
	mockStageProvider := alertmocks.NewMockStageProvider(ctrl)
	mockNotifier := alertmocks.NewMockNotifier(ctrl)

	service := NewService(mockProjectRepo, mockSLAStateRepo, mockNotificationRepo, mockStageProvider, mockNotifier)

	// Projeto já marcado como atrasado na passada anterior
	project := scheduledProject("P1", domain.StageSiteSurvey, 10, domain.SLAStatusLate)

	mockStageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())
	mockProjectRepo.EXPECT().ListByTenant("t1").Return([]*domain.Project{project}, nil)
	mockSLAStateRepo.EXPECT().GetStatesByTenant("t1").Return(map[string]domain.SLAStatus{
		"P1": domain.SLAStatusLate,
	}, nil)

	notifications, err := service.RunEvaluationPass(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestRunEvaluationPass_ProjetoRecuperadoLimpaEstado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockSLAStateRepo := repomocks.NewMockSLAStateRepository(ctrl)
	mockNotificationRepo := repomocks.NewMockNotificationRepository(ctrl)
	mockStageProvider := alertmocks.NewMockStageProvider(ctrl)
	mockNotifier := alertmocks.NewMockNotifier(ctrl)

	service := NewService(mockProjectRepo, mockSLAStateRepo, mockNotificationRepo, mockStageProvider, mockNotifier)

	// Projeto recém entrado na instalação, dentro do prazo
	project := scheduledProject("P1", domain.StageInstall, 0, domain.SLAStatusOnTrack)

	mockStageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())
	mockProjectRepo.EXPECT().ListByTenant("t1").Return([]*domain.Project{project}, nil)
	mockSLAStateRepo.EXPECT().GetStatesByTenant("t1").Return(map[string]domain.SLAStatus{
		"P1": domain.SLAStatusLate,
	}, nil)
	// Volta ao prazo limpa o registro sem notificar
	mockSLAStateRepo.EXPECT().DeleteState("t1", "P1").Return(nil)

	notifications, err := service.RunEvaluationPass(context.Background(), "t1")

	assert.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestRunEvaluationPass_ErroAoListarProjetos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockSLAStateRepo := repomocks.NewMockSLAStateRepository(ctrl)
	mockNotificationRepo := repomocks.NewMockNotificationRepository(ctrl)
	mockStageProvider := alertmocks.NewMockStageProvider(ctrl)
	mockNotifier := alertmocks.NewMockNotifier(ctrl)

	service := NewService(mockProjectRepo, mockSLAStateRepo, mockNotificationRepo, mockStageProvider, mockNotifier)

	mockStageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())
	mockProjectRepo.EXPECT().ListByTenant("t1").Return(nil, errors.New("conexão recusada"))

	notifications, err := service.RunEvaluationPass(context.Background(), "t1")

	assert.Error(t, err)
	assert.Nil(t, notifications)
}

func TestRunEvaluationPass_ContextoCancelado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjectRepo := repomocks.NewMockProjectRepository(ctrl)
	mockSLAStateRepo := repomocks.NewMockSLAStateRepository(ctrl)
	mockNotificationRepo := repomocks.NewMockNotificationRepository(ctrl)
	mockStageProvider := alertmocks.NewMockStageProvider(ctrl)
	mockNotifier := alertmocks.NewMockNotifier(ctrl)

	service := NewService(mockProjectRepo, mockSLAStateRepo, mockNotificationRepo, mockStageProvider, mockNotifier)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	notifications, err := service.RunEvaluationPass(ctx, "t1")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, notifications)
}
