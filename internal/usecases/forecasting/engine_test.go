package forecasting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func priorityPtr(p domain.LeadPriority) *domain.LeadPriority {
	return &p
}

func TestComputeForecast_Leads(t *testing.T) {
	stages := pipeline.DefaultStages()
	rates := DefaultRates()

	tests := []struct {
		name     string
		leads    []*domain.Lead
		validate func(t *testing.T, result *domain.ForecastResult)
	}{
		{
			name: "Lead qualificado sem prioridade entra nos três horizontes",
			leads: []*domain.Lead{
				{ID: "L1", Status: domain.LeadStatusQualified, EstimatedBill: 200},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 200 * 0.06 * 0.25 = 3, convertendo em 30 dias (base 30 * 1.0)
				assert.Equal(t, 3.0, result.Revenue30)
				assert.Equal(t, 3.0, result.Revenue60)
				assert.Equal(t, 3.0, result.Revenue90)
				assert.Equal(t, 3.0, result.Breakdown.ByStage["QUALIFIED"])
				assert.Equal(t, 3.0, result.Breakdown.ByRep["Unassigned"])
				assert.Equal(t, 3.0, result.Breakdown.ByPriority["medium"])
			},
		},
		{
			name: "Lead novo de alta prioridade converte em 31.5 dias e sai do horizonte de 30",
			leads: []*domain.Lead{
				{
					ID:            "L2",
					Status:        domain.LeadStatusNew,
					EstimatedBill: 1000,
					Priority:      priorityPtr(domain.LeadPriorityHigh),
				},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 1000 * 0.06 * 0.10 = 6, base 45 * 0.7 = 31.5 dias
				assert.Equal(t, 0.0, result.Revenue30)
				assert.Equal(t, 6.0, result.Revenue60)
				assert.Equal(t, 6.0, result.Revenue90)
				assert.Equal(t, 6.0, result.Breakdown.ByPriority["high"])
			},
		},
		{
			name: "Lead com score alto recebe boost de 15%",
			leads: []*domain.Lead{
				{
					ID:            "L3",
					Status:        domain.LeadStatusClosedWon,
					EstimatedBill: 1000,
					Score:         intPtr(85),
				},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 1000 * 0.06 * 0.95 * 1.15 = 65.55, arredondado para 66
				assert.Equal(t, 66.0, result.Revenue30)
				assert.Equal(t, 65.55, result.Breakdown.ByStage["CLOSED_WON"])
			},
		},
		{
			name: "Lead perdido é excluído do cálculo inteiro",
			leads: []*domain.Lead{
				{ID: "L4", Status: domain.LeadStatusClosedLost, EstimatedBill: 10000},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				assert.Equal(t, 0.0, result.Revenue30)
				assert.Equal(t, 0.0, result.Revenue90)
				assert.Empty(t, result.Breakdown.ByStage)
				// Entrada não vazia: a confiança parte da base de 50
				assert.Equal(t, 50, result.Confidence)
			},
		},
		{
			name: "Lead com status desconhecido é ignorado",
			leads: []*domain.Lead{
				{ID: "L5", Status: domain.LeadStatus("ARCHIVED"), EstimatedBill: 500},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				assert.Equal(t, 0.0, result.Revenue90)
				assert.Empty(t, result.Breakdown.ByStage)
			},
		},
		{
			name: "Lead atribuído quebra receita pelo representante",
			leads: []*domain.Lead{
				{
					ID:            "L6",
					Status:        domain.LeadStatusProposalSent,
					EstimatedBill: 500,
					AssignedRepID: stringPtr("rep-01"),
				},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 500 * 0.06 * 0.45 = 13.5, base 14 dias
				assert.Equal(t, 13.5, result.Breakdown.ByRep["rep-01"])
				assert.Equal(t, 14.0, result.Revenue30)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeForecast(tt.leads, nil, nil, stages, rates)
			tt.validate(t, result)
		})
	}
}

func TestComputeForecast_Projects(t *testing.T) {
	stages := pipeline.DefaultStages()
	rates := DefaultRates()

	tests := []struct {
		name     string
		projects []*domain.Project
		validate func(t *testing.T, result *domain.ForecastResult)
	}{
		{
			name: "Projeto em instalação conclui em 31 dias e entra nos horizontes de 60 e 90",
			projects: []*domain.Project{
				{ID: "P1", Stage: domain.StageInstall, SystemSizeKW: 6, SLAStatus: domain.SLAStatusOnTrack},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 6 * 1000 * 3.0 * 0.06 * 1.0 = 1080; 14+7+10 = 31 dias
				assert.Equal(t, 0.0, result.Revenue30)
				assert.Equal(t, 1080.0, result.Revenue60)
				assert.Equal(t, 1080.0, result.Revenue90)
				assert.Equal(t, 0, result.ExpectedInstalls.Within30)
				// 31 dias fica dentro do sub-limite de 45 do contador de 60
				assert.Equal(t, 1, result.ExpectedInstalls.Within60)
				assert.Equal(t, 1080.0, result.Breakdown.ByStage["INSTALL"])
			},
		},
		{
			name: "Projeto na vistoria inicial conclui em 46 dias e fica fora do contador de instalações",
			projects: []*domain.Project{
				{ID: "P2", Stage: domain.StageSiteSurvey, SLAStatus: domain.SLAStatusOnTrack},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// Sem potência cadastrada assume 8kW: 8 * 1000 * 3.0 * 0.06 * 0.90 = 1296
				// 3+7+5+14+7+10 = 46 dias
				assert.Equal(t, 0.0, result.Revenue30)
				assert.Equal(t, 1296.0, result.Revenue60)
				assert.Equal(t, 1296.0, result.Revenue90)
				assert.Equal(t, 0, result.ExpectedInstalls.Within30)
				assert.Equal(t, 0, result.ExpectedInstalls.Within60)
			},
		},
		{
			name: "Projeto atrasado recebe 10 dias de penalidade",
			projects: []*domain.Project{
				{ID: "P3", Stage: domain.StagePTO, SystemSizeKW: 10, SLAStatus: domain.SLAStatusLate},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// PTO é o estágio terminal: receita já realizada, nada a prever
				assert.Equal(t, 0.0, result.Revenue90)
			},
		},
		{
			name: "Projeto em inspeção atrasado empurra a conclusão de 17 para 27 dias",
			projects: []*domain.Project{
				{ID: "P4", Stage: domain.StageInspection, SystemSizeKW: 5, SLAStatus: domain.SLAStatusLate},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 5 * 1000 * 3.0 * 0.06 * 1.0 = 900; 7+10+10 = 27 dias, ainda <= 30
				assert.Equal(t, 900.0, result.Revenue30)
				assert.Equal(t, 1, result.ExpectedInstalls.Within30)
				assert.Equal(t, 1, result.ExpectedInstalls.Within60)
			},
		},
		{
			name: "Projeto em estágio desconhecido usa probabilidade e duração de fallback",
			projects: []*domain.Project{
				{ID: "P5", Stage: "CUSTOM_STAGE", SystemSizeKW: 4, SLAStatus: domain.SLAStatusOnTrack},
			},
			validate: func(t *testing.T, result *domain.ForecastResult) {
				// 4 * 1000 * 3.0 * 0.06 * 0.9 = 648; duração padrão de 7 dias
				assert.Equal(t, 648.0, result.Revenue30)
				assert.Equal(t, 1, result.ExpectedInstalls.Within30)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeForecast(nil, tt.projects, nil, stages, rates)
			tt.validate(t, result)
		})
	}
}

func TestComputeForecast_Commissions(t *testing.T) {
	result := ComputeForecast(nil, nil, []*domain.Commission{
		{ID: "C1", Amount: 100, Status: domain.CommissionStatusPending},
		{ID: "C2", Amount: 50.4, Status: domain.CommissionStatusApproved},
		{ID: "C3", Amount: 999, Status: domain.CommissionStatusPaid},
	}, pipeline.DefaultStages(), DefaultRates())

	// Apenas pendentes e aprovadas contam; pagas já saíram do funil
	assert.Equal(t, 150.0, result.ExpectedCommissions)
}

func TestComputeForecast_Confidence(t *testing.T) {
	stages := pipeline.DefaultStages()
	rates := DefaultRates()

	t.Run("Entradas vazias produzem confiança zero", func(t *testing.T) {
		result := ComputeForecast(nil, nil, nil, stages, rates)
		assert.Equal(t, 0, result.Confidence)
		assert.Equal(t, 0.0, result.Revenue90)
	})

	t.Run("Apenas projetos no prazo maximiza os componentes de projeto", func(t *testing.T) {
		result := ComputeForecast(nil, []*domain.Project{
			{ID: "P1", Stage: domain.StageInstall, SLAStatus: domain.SLAStatusOnTrack},
		}, nil, stages, rates)

		// 50 base + 20 razão projetos/leads + 10 projetos no prazo
		assert.Equal(t, 80, result.Confidence)
	})

	t.Run("Projetos atrasados puxam a confiança para baixo", func(t *testing.T) {
		result := ComputeForecast(nil, []*domain.Project{
			{ID: "P1", Stage: domain.StageInstall, SLAStatus: domain.SLAStatusLate},
			{ID: "P2", Stage: domain.StageDesign, SLAStatus: domain.SLAStatusAtRisk},
		}, nil, stages, rates)

		// 50 + 20 + 0 no prazo - 15 de projetos atrasados
		assert.Equal(t, 55, result.Confidence)
	})

	t.Run("Confiança fica dentro de 0 a 100 mesmo em cenários extremos", func(t *testing.T) {
		leads := make([]*domain.Lead, 0, 10)
		for i := 0; i < 10; i++ {
			leads = append(leads, &domain.Lead{
				ID:            "L",
				Status:        domain.LeadStatusClosedWon,
				EstimatedBill: 100,
				Priority:      priorityPtr(domain.LeadPriorityHigh),
				Score:         intPtr(90),
			})
		}
		projects := make([]*domain.Project, 0, 20)
		for i := 0; i < 20; i++ {
			projects = append(projects, &domain.Project{
				ID: "P", Stage: domain.StageInstall, SLAStatus: domain.SLAStatusOnTrack,
			})
		}

		result := ComputeForecast(leads, projects, nil, stages, rates)
		assert.LessOrEqual(t, result.Confidence, 100)
		assert.GreaterOrEqual(t, result.Confidence, 0)
	})
}

func TestComputeForecast_HorizontesMonotonicos(t *testing.T) {
	stages := pipeline.DefaultStages()
	rates := DefaultRates()

	leads := []*domain.Lead{
		{ID: "L1", Status: domain.LeadStatusNew, EstimatedBill: 300, Priority: priorityPtr(domain.LeadPriorityLow)},
		{ID: "L2", Status: domain.LeadStatusQualified, EstimatedBill: 250},
		{ID: "L3", Status: domain.LeadStatusProposalSent, EstimatedBill: 400, Priority: priorityPtr(domain.LeadPriorityHigh)},
		{ID: "L4", Status: domain.LeadStatusClosedWon, EstimatedBill: 180, Score: intPtr(72)},
	}
	projects := []*domain.Project{
		{ID: "P1", Stage: domain.StageSiteSurvey, SystemSizeKW: 5, SLAStatus: domain.SLAStatusOnTrack},
		{ID: "P2", Stage: domain.StageInstall, SystemSizeKW: 7, SLAStatus: domain.SLAStatusAtRisk},
		{ID: "P3", Stage: domain.StageInspection, SystemSizeKW: 9, SLAStatus: domain.SLAStatusLate},
	}

	result := ComputeForecast(leads, projects, nil, stages, rates)

	// Horizontes maiores englobam os menores, nunca encolhem
	assert.LessOrEqual(t, result.Revenue30, result.Revenue60)
	assert.LessOrEqual(t, result.Revenue60, result.Revenue90)
	assert.LessOrEqual(t, result.ExpectedInstalls.Within30, result.ExpectedInstalls.Within60)
}
