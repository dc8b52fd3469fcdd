// Package forecasting implementa o motor de previsão de receita: cada lead e
// cada projeto em andamento contribui com uma receita esperada ponderada por
// probabilidade, acumulada em horizontes de 30/60/90 dias, com score de
// confiança e quebras categóricas.
package forecasting

import (
	"math"

	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/solar-pipeline-api/pkg/utils"
)

// Rates são os parâmetros financeiros do cálculo, vindos da configuração
type Rates struct {
	CommissionRate float64 // fração da venda paga como comissão (default 0.06)
	PricePerWatt   float64 // preço médio por watt instalado (default 3.0)
}

// DefaultRates são o contrato de paridade com o painel
func DefaultRates() Rates {
	return Rates{
		CommissionRate: 0.06,
		PricePerWatt:   3.0,
	}
}

const (
	defaultSystemSizeKW = 8.0

	// Sub-limite conservador do contador de instalações de 60 dias: só
	// projetos com conclusão estimada em até 45 dias entram nessa contagem,
	// embora a receita use o horizonte cheio de 60 dias
	installs60ThresholdDays = 45
)

// Probabilidade de conversão por status de lead. CLOSED_LOST não aparece:
// lead perdido tem probabilidade zero e é excluído do cálculo inteiro.
var leadStatusProbability = map[domain.LeadStatus]float64{
	domain.LeadStatusNew:          0.10,
	domain.LeadStatusQualified:    0.25,
	domain.LeadStatusProposalSent: 0.45,
	domain.LeadStatusClosedWon:    0.95,
}

// Dias base estimados até a conversão, por status
var leadStatusBaseDays = map[domain.LeadStatus]float64{
	domain.LeadStatusNew:          45,
	domain.LeadStatusQualified:    30,
	domain.LeadStatusProposalSent: 14,
	domain.LeadStatusClosedWon:    0,
}

// Multiplicador do tempo de conversão por prioridade do lead
var priorityMultiplier = map[domain.LeadPriority]float64{
	domain.LeadPriorityHigh:   0.7,
	domain.LeadPriorityMedium: 1.0,
	domain.LeadPriorityLow:    1.3,
}

// Probabilidade de conclusão por estágio do pipeline padrão. Estágio
// customizado/desconhecido cai no fallback de 0.9.
var stageProbability = map[string]float64{
	domain.StageSiteSurvey: 0.90,
	domain.StageDesign:     0.92,
	domain.StagePermitting: 0.95,
	domain.StageInstall:    1.0,
	domain.StageInspection: 1.0,
}

const stageProbabilityFallback = 0.9

// Penalidade em dias somada à conclusão estimada conforme o SLA do projeto
var slaPenaltyDays = map[domain.SLAStatus]int{
	domain.SLAStatusOnTrack: 0,
	domain.SLAStatusAtRisk:  4,
	domain.SLAStatusLate:    10,
}

// ComputeForecast calcula o forecast completo sobre um snapshot em memória de
// leads, projetos e comissões. A função é pura e total: entradas vazias ou
// malformadas produzem zeros, nunca erro: este é um motor de estimativa,
// não um validador de cadastro.
//
// Valores monetários são arredondados apenas no fim, para não acumular erro
// de arredondamento entre as contribuições.
func ComputeForecast(
	leads []*domain.Lead,
	projects []*domain.Project,
	commissions []*domain.Commission,
	stages []domain.StageConfig,
	rates Rates,
) *domain.ForecastResult {
	result := &domain.ForecastResult{
		Breakdown: domain.ForecastBreakdown{
			ByStage:    make(map[string]float64),
			ByRep:      make(map[string]float64),
			ByPriority: make(map[string]float64),
		},
	}

	var (
		revenue30, revenue60, revenue90 float64

		leadCount         int
		highPriorityLeads int
		wellScoredLeads   int
		onTrackProjects   int
		behindProjects    int
	)

	for _, lead := range leads {
		if lead == nil || lead.Status == domain.LeadStatusClosedLost {
			continue
		}

		probability, ok := leadStatusProbability[lead.Status]
		if !ok {
			continue
		}

		leadCount++

		expected := lead.EstimatedBill * rates.CommissionRate * probability * leadScoreBoost(lead)
		days := leadConversionDays(lead)

		if days <= 30 {
			revenue30 += expected
		}
		if days <= 60 {
			revenue60 += expected
		}
		if days <= 90 {
			revenue90 += expected
		}

		result.Breakdown.ByStage[string(lead.Status)] += expected
		result.Breakdown.ByRep[leadRepLabel(lead)] += expected
		result.Breakdown.ByPriority[string(leadPriority(lead))] += expected

		if leadPriority(lead) == domain.LeadPriorityHigh {
			highPriorityLeads++
		}
		if lead.Score != nil && *lead.Score >= 70 {
			wellScoredLeads++
		}
	}

	projectCount := 0
	for _, project := range projects {
		if project == nil {
			continue
		}

		projectCount++

		status := project.SLAStatus
		if status == "" {
			status = domain.SLAStatusOnTrack
		}
		if status == domain.SLAStatusOnTrack {
			onTrackProjects++
		} else {
			behindProjects++
		}

		currentIdx := stageIndexOf(stages, project.Stage)
		if currentIdx == len(stages)-1 && currentIdx >= 0 {
			// Estágio terminal: receita já realizada, acompanhada via comissões
			continue
		}

		kw := project.SystemSizeKW
		if kw <= 0 {
			kw = defaultSystemSizeKW
		}

		probability, ok := stageProbability[project.Stage]
		if !ok {
			probability = stageProbabilityFallback
		}

		expected := kw * 1000 * rates.PricePerWatt * rates.CommissionRate * probability
		days := projectCompletionDays(project, stages, currentIdx, status)

		if days <= 30 {
			revenue30 += expected
			result.ExpectedInstalls.Within30++
		}
		if days <= 60 {
			revenue60 += expected
		}
		if days <= installs60ThresholdDays {
			result.ExpectedInstalls.Within60++
		}
		if days <= 90 {
			revenue90 += expected
		}

		result.Breakdown.ByStage[project.Stage] += expected
	}

	for _, commission := range commissions {
		if commission == nil {
			continue
		}
		if commission.Status == domain.CommissionStatusPending || commission.Status == domain.CommissionStatusApproved {
			result.ExpectedCommissions += commission.Amount
		}
	}

	result.Revenue30 = math.Round(revenue30)
	result.Revenue60 = math.Round(revenue60)
	result.Revenue90 = math.Round(revenue90)
	result.ExpectedCommissions = math.Round(result.ExpectedCommissions)
	roundBreakdown(result.Breakdown.ByStage)
	roundBreakdown(result.Breakdown.ByRep)
	roundBreakdown(result.Breakdown.ByPriority)

	result.Confidence = computeConfidence(
		len(leads) == 0 && len(projects) == 0,
		leadCount,
		highPriorityLeads,
		wellScoredLeads,
		projectCount,
		onTrackProjects,
		behindProjects,
	)

	return result
}

// leadConversionDays estima em quantos dias o lead converte: dias base do
// status vezes o multiplicador de prioridade (prioridade ausente conta como
// média)
func leadConversionDays(lead *domain.Lead) float64 {
	return leadStatusBaseDays[lead.Status] * priorityMultiplier[leadPriority(lead)]
}

// leadScoreBoost dá um empurrão na receita esperada de leads bem pontuados;
// lead sem pontuação não recebe boost
func leadScoreBoost(lead *domain.Lead) float64 {
	if lead.Score == nil {
		return 1.0
	}
	switch {
	case *lead.Score >= 80:
		return 1.15
	case *lead.Score >= 60:
		return 1.05
	default:
		return 1.0
	}
}

func leadPriority(lead *domain.Lead) domain.LeadPriority {
	if lead.Priority == nil {
		return domain.LeadPriorityMedium
	}
	return *lead.Priority
}

func leadRepLabel(lead *domain.Lead) string {
	if lead.AssignedRepID == nil || *lead.AssignedRepID == "" {
		return "Unassigned"
	}
	return *lead.AssignedRepID
}

// projectCompletionDays soma a duração configurada de cada estágio restante
// (do atual, inclusive, até o terminal) mais a penalidade de SLA. Projeto em
// estágio fora da configuração conta só a duração padrão do próprio estágio.
func projectCompletionDays(project *domain.Project, stages []domain.StageConfig, currentIdx int, status domain.SLAStatus) int {
	days := 0

	if currentIdx < 0 {
		days = pipeline.DefaultStageDuration
	} else {
		for i := currentIdx; i < len(stages); i++ {
			if stages[i].TargetDays > 0 {
				days += stages[i].TargetDays
			} else {
				days += pipeline.DefaultStageDuration
			}
		}
	}

	return days + slaPenaltyDays[status]
}

func stageIndexOf(stages []domain.StageConfig, stageID string) int {
	for i, stage := range stages {
		if stage.ID == stageID {
			return i
		}
	}
	return -1
}

// computeConfidence combina composição do funil e saúde de SLA num score
// 0-100 de quanto confiar no forecast
func computeConfidence(
	emptyInputs bool,
	leadCount, highPriorityLeads, wellScoredLeads int,
	projectCount, onTrackProjects, behindProjects int,
) int {
	// Sem leads e sem projetos não há o que confiar
	if emptyInputs {
		return 0
	}

	leadDivisor := math.Max(float64(leadCount), 1)
	projectDivisor := math.Max(float64(projectCount), 1)

	score := 50.0
	score += math.Min(20, float64(projectCount)/leadDivisor*20)
	score += float64(highPriorityLeads) / leadDivisor * 10
	score += float64(wellScoredLeads) / leadDivisor * 10
	score += float64(onTrackProjects) / projectDivisor * 10
	score -= float64(behindProjects) / projectDivisor * 15

	return int(math.Round(math.Min(100, math.Max(0, score))))
}

func roundBreakdown(m map[string]float64) {
	for k, v := range m {
		m[k] = utils.RoundWithTwoDecimalPlace(v)
	}
}
