package domain

import "time"

// CommissionStatus representa o ciclo de pagamento de uma comissão
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "PENDING"
	CommissionStatusApproved CommissionStatus = "APPROVED"
	CommissionStatusPaid     CommissionStatus = "PAID"
)

// Commission representa um pagamento de comissão vinculado a um marco do
// projeto. O motor de previsão lê comissões apenas em agregado (soma de
// pendentes + aprovadas); este serviço nunca as muta.
type Commission struct {
	ID              string           `json:"id"`
	TenantID        string           `json:"tenant_id"`
	LeadID          string           `json:"lead_id"`
	Amount          float64          `json:"amount"`
	Status          CommissionStatus `json:"status"`
	Milestone       string           `json:"milestone"`
	ExpectedPayDate *time.Time       `json:"expected_pay_date"`
	CreatedAt       time.Time        `json:"created_at"`
}
