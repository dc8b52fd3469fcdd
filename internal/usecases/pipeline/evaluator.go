package pipeline

import "github.com/vfg2006/solar-pipeline-api/internal/domain"

// EvaluateSLA classifica a pontualidade de um estágio a partir dos dias
// decorridos versus a duração alvo configurada.
//
// A função é total: estágio desconhecido cai no alvo padrão de 7 dias e
// dias negativos (relógio torto, dado ruim) são tratados como 0. A avaliação
// de SLA nunca pode bloquear o avanço do pipeline, então aqui nada falha.
func EvaluateSLA(stageID string, daysElapsed int, stages []domain.StageConfig) domain.SLAStatus {
	target := stageTargetDays(stages, stageID)

	if daysElapsed < 0 {
		daysElapsed = 0
	}

	remaining := target - daysElapsed
	switch {
	case remaining < 0:
		return domain.SLAStatusLate
	case remaining <= atRiskThresholdDays:
		return domain.SLAStatusAtRisk
	default:
		return domain.SLAStatusOnTrack
	}
}
