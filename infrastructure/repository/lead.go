package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	leadsTable = "leads l"
)

// LeadRepository dá acesso de leitura aos leads. A captação e mutação de
// leads pertencem ao fluxo comercial; este serviço apenas consome snapshots.
type LeadRepository interface {
	ListByTenant(tenantID string) ([]*domain.Lead, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) ListByTenant(tenantID string) ([]*domain.Lead, error) {
	query, args, err := squirrel.
		Select("l.id, l.tenant_id, l.status, l.estimated_bill, l.assigned_rep_id, l.priority, l.score, l.created_at, l.updated_at").
		From(leadsTable).
		Where(squirrel.Eq{"l.tenant_id": tenantID}).
		OrderBy("l.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear leads: %w", err)
		}
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) scanLead(rows *sql.Rows) (*domain.Lead, error) {
	var (
		lead          domain.Lead
		assignedRepID sql.NullString
		priority      sql.NullString
		score         sql.NullInt64
	)

	err := rows.Scan(
		&lead.ID,
		&lead.TenantID,
		&lead.Status,
		&lead.EstimatedBill,
		&assignedRepID,
		&priority,
		&score,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if assignedRepID.Valid {
		lead.AssignedRepID = &assignedRepID.String
	}

	if priority.Valid {
		p := domain.LeadPriority(priority.String)
		lead.Priority = &p
	}

	if score.Valid {
		s := int(score.Int64)
		lead.Score = &s
	}

	return &lead, nil
}
