package forecasting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/solar-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	forecastmocks "github.com/vfg2006/solar-pipeline-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	leadRepo       *repomocks.MockLeadRepository
	projectRepo    *repomocks.MockProjectRepository
	commissionRepo *repomocks.MockCommissionRepository
	historyRepo    *repomocks.MockForecastHistoryRepository
	stageProvider  *forecastmocks.MockStageProvider
}

func newServiceWithMocks(ctrl *gomock.Controller, cfg *config.Config) (Forecaster, serviceMocks) {
	m := serviceMocks{
		leadRepo:       repomocks.NewMockLeadRepository(ctrl),
		projectRepo:    repomocks.NewMockProjectRepository(ctrl),
		commissionRepo: repomocks.NewMockCommissionRepository(ctrl),
		historyRepo:    repomocks.NewMockForecastHistoryRepository(ctrl),
		stageProvider:  forecastmocks.NewMockStageProvider(ctrl),
	}

	return NewService(cfg, m.leadRepo, m.projectRepo, m.commissionRepo, m.historyRepo, m.stageProvider), m
}

func TestGetForecast(t *testing.T) {
	t.Run("Agrega leads, projetos e comissões do tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl, nil)

		m.leadRepo.EXPECT().ListByTenant("t1").Return([]*domain.Lead{
			{ID: "L1", Status: domain.LeadStatusQualified, EstimatedBill: 200},
		}, nil)
		m.projectRepo.EXPECT().ListByTenant("t1").Return(nil, nil)
		m.commissionRepo.EXPECT().ListByTenant("t1").Return([]*domain.Commission{
			{ID: "C1", Status: domain.CommissionStatusPending, Amount: 100},
		}, nil)
		m.stageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())

		result, err := service.GetForecast("t1")

		assert.NoError(t, err)
		// 200 * 0.06 * 0.25 = 3 do lead, mais 100 da comissão pendente
		assert.Equal(t, 103.0, result.Revenue30)
		assert.Equal(t, 103.0, result.Revenue90)
	})

	t.Run("Taxas customizadas da configuração substituem as padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := &config.Config{
			Forecast: config.Forecast{CommissionRate: 0.12, PricePerWatt: 3.0},
		}
		service, m := newServiceWithMocks(ctrl, cfg)

		m.leadRepo.EXPECT().ListByTenant("t1").Return([]*domain.Lead{
			{ID: "L1", Status: domain.LeadStatusQualified, EstimatedBill: 200},
		}, nil)
		m.projectRepo.EXPECT().ListByTenant("t1").Return(nil, nil)
		m.commissionRepo.EXPECT().ListByTenant("t1").Return(nil, nil)
		m.stageProvider.EXPECT().GetStages("t1").Return(pipeline.DefaultStages())

		result, err := service.GetForecast("t1")

		assert.NoError(t, err)
		// 200 * 0.12 * 0.25 = 6 com a taxa de comissão dobrada
		assert.Equal(t, 6.0, result.Revenue30)
	})

	t.Run("Erro em qualquer coleção aborta o forecast", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl, nil)

		// As três cargas disparam em paralelo mesmo quando uma falha
		m.leadRepo.EXPECT().ListByTenant("t1").Return(nil, errors.New("conexão recusada"))
		m.projectRepo.EXPECT().ListByTenant("t1").Return(nil, nil)
		m.commissionRepo.EXPECT().ListByTenant("t1").Return(nil, nil)

		result, err := service.GetForecast("t1")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestGetForecastHistory(t *testing.T) {
	t.Run("Janela solicitada delimita a consulta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl, nil)

		snapshots := []*domain.ForecastSnapshot{
			{TenantID: "t1", Revenue30: 100, Confidence: 70},
		}

		m.historyRepo.EXPECT().GetByTenantSince("t1", gomock.Any()).DoAndReturn(
			func(tenantID string, since time.Time) ([]*domain.ForecastSnapshot, error) {
				expected := time.Now().AddDate(0, 0, -30)
				assert.WithinDuration(t, expected, since, time.Minute)
				return snapshots, nil
			})

		result, err := service.GetForecastHistory("t1", 30)

		assert.NoError(t, err)
		assert.Equal(t, snapshots, result)
	})

	t.Run("Janela inválida usa o padrão de 90 dias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m := newServiceWithMocks(ctrl, nil)

		m.historyRepo.EXPECT().GetByTenantSince("t1", gomock.Any()).DoAndReturn(
			func(tenantID string, since time.Time) ([]*domain.ForecastSnapshot, error) {
				expected := time.Now().AddDate(0, 0, -90)
				assert.WithinDuration(t, expected, since, time.Minute)
				return nil, nil
			})

		_, err := service.GetForecastHistory("t1", 0)

		assert.NoError(t, err)
	})
}
