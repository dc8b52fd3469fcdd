package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	slaStatesTable = "sla_alert_states sas"
)

// SLAStateRepository guarda o último status de SLA observado por projeto,
// usado pela ponte de alertas para detectar transições. O mapa é descartável:
// perdê-lo só arrisca alertas duplicados ou perdidos após um restart, nunca
// corrompe dados de negócio.
type SLAStateRepository interface {
	GetStatesByTenant(tenantID string) (map[string]domain.SLAStatus, error)
	SaveState(tenantID, projectID string, status domain.SLAStatus) error
	DeleteState(tenantID, projectID string) error
}

type slaStateRepository struct {
	conn *postgres.Connection
}

func NewSLAStateRepository(conn *postgres.Connection) SLAStateRepository {
	return &slaStateRepository{
		conn: conn,
	}
}

func (r *slaStateRepository) GetStatesByTenant(tenantID string) (map[string]domain.SLAStatus, error) {
	query, args, err := squirrel.
		Select("sas.project_id, sas.sla_status").
		From(slaStatesTable).
		Where(squirrel.Eq{"sas.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]domain.SLAStatus{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	states := make(map[string]domain.SLAStatus)
	for rows.Next() {
		var (
			projectID string
			status    string
		)

		if err := rows.Scan(&projectID, &status); err != nil {
			return nil, fmt.Errorf("erro ao escanear estados de SLA: %w", err)
		}

		states[projectID] = domain.SLAStatus(status)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return states, nil
}

func (r *slaStateRepository) SaveState(tenantID, projectID string, status domain.SLAStatus) error {
	query := squirrel.StatementBuilder.
		Insert("sla_alert_states").
		Columns("tenant_id", "project_id", "sla_status").
		Values(tenantID, projectID, string(status)).
		Suffix(`
			ON CONFLICT (tenant_id, project_id) DO UPDATE SET
				sla_status = EXCLUDED.sla_status,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *slaStateRepository) DeleteState(tenantID, projectID string) error {
	query, args, err := squirrel.
		Delete("sla_alert_states").
		Where(squirrel.Eq{"tenant_id": tenantID, "project_id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
