package domain

import "time"

// Tenant representa uma empresa integradora que usa a plataforma. Cada
// tenant tem seu próprio pipeline configurado e seus próprios dados.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
