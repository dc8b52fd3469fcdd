// Package pipeline implementa o pipeline configurável de instalação:
// carregamento dos estágios por tenant, avaliação de SLA e o cronograma de
// datas alvo/reais de cada projeto.
package pipeline

import "github.com/vfg2006/solar-pipeline-api/internal/domain"

const (
	// DefaultStageDuration é a duração alvo, em dias, usada quando o estágio
	// não tem duração configurada
	DefaultStageDuration = 7

	// atRiskThresholdDays define a janela de "em risco": faltando 2 dias ou
	// menos para estourar o alvo, o estágio é sinalizado antes de atrasar
	atRiskThresholdDays = 2
)

// DefaultStages retorna o pipeline padrão de 6 estágios usado quando o
// tenant não customiza a configuração. As durações {3,7,5,14,7,10} são o
// contrato de paridade com o painel e com o motor de previsão; não alterar
// sem alinhar com o produto.
func DefaultStages() []domain.StageConfig {
	return []domain.StageConfig{
		{ID: domain.StageSiteSurvey, Name: "Vistoria Técnica", TargetDays: 3, Order: 1},
		{ID: domain.StageDesign, Name: "Projeto Executivo", TargetDays: 7, Order: 2},
		{ID: domain.StagePermitting, Name: "Homologação", TargetDays: 5, Order: 3},
		{ID: domain.StageInstall, Name: "Instalação", TargetDays: 14, Order: 4},
		{ID: domain.StageInspection, Name: "Vistoria Final", TargetDays: 7, Order: 5},
		{ID: domain.StagePTO, Name: "Permissão de Operação", TargetDays: 10, Order: 6},
	}
}

// stageIndex retorna a posição do estágio na lista configurada, ou -1
func stageIndex(stages []domain.StageConfig, stageID string) int {
	for i, stage := range stages {
		if stage.ID == stageID {
			return i
		}
	}
	return -1
}

// stageTargetDays retorna a duração alvo configurada do estágio, com
// fallback de 7 dias para estágio desconhecido ou duração não positiva
func stageTargetDays(stages []domain.StageConfig, stageID string) int {
	if i := stageIndex(stages, stageID); i >= 0 && stages[i].TargetDays > 0 {
		return stages[i].TargetDays
	}
	return DefaultStageDuration
}
