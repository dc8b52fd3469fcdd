// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SLAStatus classifica a pontualidade de um projeto dentro do estágio atual
type SLAStatus string

const (
	SLAStatusOnTrack SLAStatus = "onTrack"
	SLAStatusAtRisk  SLAStatus = "atRisk"
	SLAStatusLate    SLAStatus = "late"
)

// IDs dos estágios do pipeline padrão de instalação
const (
	StageSiteSurvey = "SITE_SURVEY"
	StageDesign     = "DESIGN"
	StagePermitting = "PERMITTING"
	StageInstall    = "INSTALL"
	StageInspection = "INSPECTION"
	StagePTO        = "PTO"
)

// StageConfig representa um estágio configurável do pipeline de instalação.
// A lista de estágios é fornecida por tenant e é a autoridade sobre ordem
// e duração alvo; quando o tenant não customiza, vale o pipeline padrão.
type StageConfig struct {
	ID         string  `json:"id"`          // identificador do estágio (ex: SITE_SURVEY)
	Name       string  `json:"name"`        // nome de exibição
	TargetDays int     `json:"target_days"` // duração alvo em dias
	Color      *string `json:"color"`
	Order      int     `json:"order"` // posição no pipeline, crescente
}
