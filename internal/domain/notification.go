package domain

import "time"

// Tipos de notificação emitidos pela ponte de alertas de SLA
const (
	NotificationTypeSLAAtRisk = "sla_at_risk"
	NotificationTypeSLALate   = "sla_late"
)

// Prioridades de notificação
const (
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
	NotificationPriorityUrgent = "urgent"
)

// Notification é o registro entregue ao sink de notificações. O mecanismo
// de entrega (lista in-app, push, email) é externo a este serviço.
type Notification struct {
	ID        string            `json:"id"`
	TenantID  string            `json:"tenant_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Priority  string            `json:"priority"`
	Data      map[string]string `json:"data"`
	ActionURL string            `json:"action_url"`
	CreatedAt time.Time         `json:"created_at"`
}
