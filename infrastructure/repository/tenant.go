package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	tenantsTable = "tenants t"
)

type TenantRepository interface {
	GetByID(tenantID string) (*domain.Tenant, error)
	ListActiveTenants() ([]*domain.Tenant, error)
}

type tenantRepository struct {
	conn *postgres.Connection
}

func NewTenantRepository(conn *postgres.Connection) TenantRepository {
	return &tenantRepository{
		conn: conn,
	}
}

func (r *tenantRepository) GetByID(tenantID string) (*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.active, t.created_at, t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tenant := &domain.Tenant{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(&tenant.ID, &tenant.Name, &tenant.Active, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tenant: %w", err)
	}

	return tenant, nil
}

func (r *tenantRepository) ListActiveTenants() ([]*domain.Tenant, error) {
	query, args, err := squirrel.
		Select("t.id, t.name, t.active, t.created_at, t.updated_at").
		From(tenantsTable).
		Where(squirrel.Eq{"t.active": true}).
		OrderBy("t.name ASC").
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

	tenants := make([]*domain.Tenant, 0)
	for rows.Next() {
		tenant := &domain.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.Active, &tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear tenants: %w", err)
		}
		tenants = append(tenants, tenant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tenants, nil
}
