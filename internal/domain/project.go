package domain

import "time"

// Project representa um negócio fechado em fase de instalação.
// O projeto avança um estágio por vez, sem pular e sem retroceder;
// o último estágio configurado é terminal.
type Project struct {
	ID            string  `json:"id"`
	TenantID      string  `json:"tenant_id"`
	LeadID        string  `json:"lead_id"`
	Stage         string  `json:"stage"`          // id do estágio atual no pipeline configurado
	SystemSizeKW  float64 `json:"system_size_kw"` // potência do sistema em kW (> 0)
	InstallerName *string `json:"installer_name"`

	// TargetDates guarda a data alvo de conclusão por estágio; ActualDates a
	// data real. Datas reais só existem para estágios já concluídos; datas
	// alvo de estágios futuros são estimativas vivas, rebaseadas a cada avanço.
	TargetDates map[string]time.Time `json:"target_dates"`
	ActualDates map[string]time.Time `json:"actual_dates"`

	// SLAStatus é derivado, recalculado a cada avaliação; nunca é autoridade.
	SLAStatus SLAStatus `json:"sla_status"`

	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}
