package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	commissionsTable = "commissions c"
)

// CommissionRepository dá acesso de leitura às comissões agendadas.
// O motor de previsão consome apenas o agregado de pendentes + aprovadas.
type CommissionRepository interface {
	ListByTenant(tenantID string) ([]*domain.Commission, error)
}

type commissionRepository struct {
	conn *postgres.Connection
}

func NewCommissionRepository(conn *postgres.Connection) CommissionRepository {
	return &commissionRepository{
		conn: conn,
	}
}

func (r *commissionRepository) ListByTenant(tenantID string) ([]*domain.Commission, error) {
	query, args, err := squirrel.
		Select("c.id, c.tenant_id, c.lead_id, c.amount, c.status, c.milestone, c.expected_pay_date, c.created_at").
		From(commissionsTable).
		Where(squirrel.Eq{"c.tenant_id": tenantID}).
		OrderBy("c.created_at ASC").
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

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		var (
			commission      domain.Commission
			expectedPayDate sql.NullTime
		)

		err := rows.Scan(
			&commission.ID,
			&commission.TenantID,
			&commission.LeadID,
			&commission.Amount,
			&commission.Status,
			&commission.Milestone,
			&expectedPayDate,
			&commission.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear comissões: %w", err)
		}

		if expectedPayDate.Valid {
			commission.ExpectedPayDate = &expectedPayDate.Time
		}

		commissions = append(commissions, &commission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return commissions, nil
}
