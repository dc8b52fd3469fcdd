package forecasting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

// Forecaster expõe o forecast de receita para os handlers e para a rotina de
// fotografia diária
type Forecaster interface {
	GetForecast(tenantID string) (*domain.ForecastResult, error)
	GetForecastHistory(tenantID string, days int) ([]*domain.ForecastSnapshot, error)
}

// StageProvider é a fatia do serviço de pipeline que o forecast consome
type StageProvider interface {
	GetStages(tenantID string) []domain.StageConfig
}

type Service struct {
	cfg            *config.Config
	leadRepo       repository.LeadRepository
	projectRepo    repository.ProjectRepository
	commissionRepo repository.CommissionRepository
	historyRepo    repository.ForecastHistoryRepository
	stageProvider  StageProvider
}

func NewService(
	cfg *config.Config,
	leadRepo repository.LeadRepository,
	projectRepo repository.ProjectRepository,
	commissionRepo repository.CommissionRepository,
	historyRepo repository.ForecastHistoryRepository,
	stageProvider StageProvider,
) Forecaster {
	return &Service{
		cfg:            cfg,
		leadRepo:       leadRepo,
		projectRepo:    projectRepo,
		commissionRepo: commissionRepo,
		historyRepo:    historyRepo,
		stageProvider:  stageProvider,
	}
}

// GetForecast monta o snapshot do tenant e roda o motor de previsão sobre
// ele. As três coleções são carregadas em paralelo; o cálculo em si é
// síncrono e puro.
func (s *Service) GetForecast(tenantID string) (*domain.ForecastResult, error) {
	var (
		leads       []*domain.Lead
		projects    []*domain.Project
		commissions []*domain.Commission

		leadsErr       error
		projectsErr    error
		commissionsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		leads, leadsErr = s.leadRepo.ListByTenant(tenantID)
	}()

	go func() {
		defer wg.Done()
		projects, projectsErr = s.projectRepo.ListByTenant(tenantID)
	}()

	go func() {
		defer wg.Done()
		commissions, commissionsErr = s.commissionRepo.ListByTenant(tenantID)
	}()

	wg.Wait()

	if leadsErr != nil {
		return nil, leadsErr
	}
	if projectsErr != nil {
		return nil, projectsErr
	}
	if commissionsErr != nil {
		return nil, commissionsErr
	}

	result := ComputeForecast(leads, projects, commissions, s.stageProvider.GetStages(tenantID), s.rates())

	logrus.WithFields(logrus.Fields{
		"tenant_id":   tenantID,
		"leads":       len(leads),
		"projects":    len(projects),
		"commissions": len(commissions),
		"confidence":  result.Confidence,
	}).Debug("Forecast calculado")

	return result, nil
}

func (s *Service) GetForecastHistory(tenantID string, days int) ([]*domain.ForecastSnapshot, error) {
	if days <= 0 {
		days = 90
	}

	since := time.Now().AddDate(0, 0, -days)
	return s.historyRepo.GetByTenantSince(tenantID, since)
}

func (s *Service) rates() Rates {
	rates := DefaultRates()

	if s.cfg != nil {
		if s.cfg.Forecast.CommissionRate > 0 {
			rates.CommissionRate = s.cfg.Forecast.CommissionRate
		}
		if s.cfg.Forecast.PricePerWatt > 0 {
			rates.PricePerWatt = s.cfg.Forecast.PricePerWatt
		}
	}

	return rates
}
