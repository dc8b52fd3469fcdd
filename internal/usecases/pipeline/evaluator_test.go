package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

func TestEvaluateSLA(t *testing.T) {
	stages := DefaultStages()

	tests := []struct {
		name        string
		stageID     string
		daysElapsed int
		expected    domain.SLAStatus
	}{
		{"Vistoria no primeiro dia está no prazo", domain.StageSiteSurvey, 0, domain.SLAStatusOnTrack},
		{"Vistoria a 2 dias do alvo entra em risco", domain.StageSiteSurvey, 1, domain.SLAStatusAtRisk},
		{"Vistoria exatamente no alvo ainda está em risco, não atrasada", domain.StageSiteSurvey, 3, domain.SLAStatusAtRisk},
		{"Vistoria um dia após o alvo está atrasada", domain.StageSiteSurvey, 4, domain.SLAStatusLate},
		{"Instalação com folga está no prazo", domain.StageInstall, 5, domain.SLAStatusOnTrack},
		{"Instalação a 2 dias do alvo entra em risco", domain.StageInstall, 12, domain.SLAStatusAtRisk},
		{"Instalação estourada está atrasada", domain.StageInstall, 15, domain.SLAStatusLate},
		{"Estágio desconhecido usa o alvo padrão de 7 dias", "CUSTOM_STAGE", 4, domain.SLAStatusOnTrack},
		{"Estágio desconhecido em risco no limiar do alvo padrão", "CUSTOM_STAGE", 5, domain.SLAStatusAtRisk},
		{"Estágio desconhecido atrasado após o alvo padrão", "CUSTOM_STAGE", 8, domain.SLAStatusLate},
		{"Dias negativos são tratados como zero", domain.StageInstall, -100, domain.SLAStatusOnTrack},
		{"Dias negativos num estágio curto avaliam como o dia zero", domain.StageSiteSurvey, -1, domain.SLAStatusOnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateSLA(tt.stageID, tt.daysElapsed, stages))
		})
	}
}

// A avaliação precisa ser total: qualquer combinação de entrada produz um
// dos três status, sem pânico e sem valor fora do vocabulário
func TestEvaluateSLA_FuncaoTotal(t *testing.T) {
	stages := DefaultStages()
	valid := map[domain.SLAStatus]bool{
		domain.SLAStatusOnTrack: true,
		domain.SLAStatusAtRisk:  true,
		domain.SLAStatusLate:    true,
	}

	stageIDs := []string{domain.StageSiteSurvey, domain.StageDesign, domain.StagePTO, "", "NOPE"}
	for _, stageID := range stageIDs {
		for days := -1000; days <= 1000; days += 7 {
			status := EvaluateSLA(stageID, days, stages)
			assert.True(t, valid[status], "status inesperado %q para estágio %q com %d dias", status, stageID, days)
		}
	}
}

func TestEvaluateSLA_EstagioSemDuracaoConfigurada(t *testing.T) {
	stages := []domain.StageConfig{
		{ID: "A", Name: "Etapa A", TargetDays: 0, Order: 1},
	}

	// Duração não positiva cai no alvo padrão de 7 dias
	assert.Equal(t, domain.SLAStatusOnTrack, EvaluateSLA("A", 4, stages))
	assert.Equal(t, domain.SLAStatusAtRisk, EvaluateSLA("A", 6, stages))
	assert.Equal(t, domain.SLAStatusLate, EvaluateSLA("A", 8, stages))
}
