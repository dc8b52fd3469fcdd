package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/solar-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	alertmocks "github.com/vfg2006/solar-pipeline-api/internal/usecases/alerting/mocks"
	"go.uber.org/mock/gomock"
)

func monitorConfig(enabled bool) *config.Config {
	return &config.Config{
		SLAMonitor: config.SLAMonitor{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestRunMonitoringPass(t *testing.T) {
	t.Run("Avalia todos os tenants ativos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTenantRepo := repomocks.NewMockTenantRepository(ctrl)
		mockAlerting := alertmocks.NewMockAlertingService(ctrl)

		mockTenantRepo.EXPECT().ListActiveTenants().Return([]*domain.Tenant{
			{ID: "t1", Name: "Solar Norte"},
			{ID: "t2", Name: "Solar Sul"},
		}, nil)
		mockAlerting.EXPECT().RunEvaluationPass(gomock.Any(), "t1").Return(nil, nil)
		mockAlerting.EXPECT().RunEvaluationPass(gomock.Any(), "t2").Return(nil, nil)

		service := NewSLAMonitorService(mockTenantRepo, mockAlerting, monitorConfig(true))

		assert.NoError(t, service.RunMonitoringPass(context.Background()))
	})

	t.Run("Falha em um tenant não interrompe os demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTenantRepo := repomocks.NewMockTenantRepository(ctrl)
		mockAlerting := alertmocks.NewMockAlertingService(ctrl)

		mockTenantRepo.EXPECT().ListActiveTenants().Return([]*domain.Tenant{
			{ID: "t1"},
			{ID: "t2"},
		}, nil)
		mockAlerting.EXPECT().RunEvaluationPass(gomock.Any(), "t1").Return(nil, errors.New("conexão recusada"))
		mockAlerting.EXPECT().RunEvaluationPass(gomock.Any(), "t2").Return(nil, nil)

		service := NewSLAMonitorService(mockTenantRepo, mockAlerting, monitorConfig(true))

		assert.NoError(t, service.RunMonitoringPass(context.Background()))
	})

	t.Run("Erro ao listar tenants é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTenantRepo := repomocks.NewMockTenantRepository(ctrl)
		mockAlerting := alertmocks.NewMockAlertingService(ctrl)

		mockTenantRepo.EXPECT().ListActiveTenants().Return(nil, errors.New("conexão recusada"))

		service := NewSLAMonitorService(mockTenantRepo, mockAlerting, monitorConfig(true))

		assert.Error(t, service.RunMonitoringPass(context.Background()))
	})

	t.Run("Sem tenants ativos a passada conclui sem erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTenantRepo := repomocks.NewMockTenantRepository(ctrl)
		mockAlerting := alertmocks.NewMockAlertingService(ctrl)

		mockTenantRepo.EXPECT().ListActiveTenants().Return([]*domain.Tenant{}, nil)

		service := NewSLAMonitorService(mockTenantRepo, mockAlerting, monitorConfig(true))

		assert.NoError(t, service.RunMonitoringPass(context.Background()))
	})
}

func TestStart_DesabilitadoNaoAgenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := repomocks.NewMockTenantRepository(ctrl)
	mockAlerting := alertmocks.NewMockAlertingService(ctrl)

	service := NewSLAMonitorService(mockTenantRepo, mockAlerting, monitorConfig(false))

	assert.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.Equal(t, false, status["enabled"])
	assert.Equal(t, false, status["running"])
}
