package domain

import "time"

// LeadStatus representa o estágio comercial de um lead na esteira de vendas
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "NEW"
	LeadStatusQualified    LeadStatus = "QUALIFIED"
	LeadStatusProposalSent LeadStatus = "PROPOSAL_SENT"
	LeadStatusClosedWon    LeadStatus = "CLOSED_WON"
	LeadStatusClosedLost   LeadStatus = "CLOSED_LOST"
)

// LeadPriority representa a prioridade de atendimento do lead
type LeadPriority string

const (
	LeadPriorityLow    LeadPriority = "low"
	LeadPriorityMedium LeadPriority = "medium"
	LeadPriorityHigh   LeadPriority = "high"
)

// Lead representa um prospect de venda de sistema solar residencial.
// O lead é criado e mutado pelo fluxo de captação; este serviço apenas o lê.
type Lead struct {
	ID            string        `json:"id"`
	TenantID      string        `json:"tenant_id"`
	Status        LeadStatus    `json:"status"`
	EstimatedBill float64       `json:"estimated_bill"` // conta de energia mensal estimada (>= 0)
	AssignedRepID *string       `json:"assigned_rep_id"`
	Priority      *LeadPriority `json:"priority"`
	Score         *int          `json:"score"` // pontuação de qualidade 0-100, opcional
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
