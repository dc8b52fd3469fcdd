package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	forecastHistoryTable = "forecast_history fh"
)

// ForecastHistoryRepository guarda a série temporal de fotografias diárias
// do forecast por tenant (no máximo uma por tenant por dia).
type ForecastHistoryRepository interface {
	SaveOrUpdate(snapshot *domain.ForecastSnapshot) error
	GetByTenantSince(tenantID string, since time.Time) ([]*domain.ForecastSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type forecastHistoryRepository struct {
	conn *postgres.Connection
}

func NewForecastHistoryRepository(conn *postgres.Connection) ForecastHistoryRepository {
	return &forecastHistoryRepository{
		conn: conn,
	}
}

func (r *forecastHistoryRepository) SaveOrUpdate(snapshot *domain.ForecastSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("forecast_history").
		Columns("tenant_id", "date", "revenue_30", "revenue_60", "revenue_90", "confidence").
		Values(
			snapshot.TenantID,
			snapshot.Date.Format(time.DateOnly),
			snapshot.Revenue30,
			snapshot.Revenue60,
			snapshot.Revenue90,
			snapshot.Confidence,
		).
		Suffix(`
			ON CONFLICT (tenant_id, date) DO UPDATE SET
				revenue_30 = EXCLUDED.revenue_30,
				revenue_60 = EXCLUDED.revenue_60,
				revenue_90 = EXCLUDED.revenue_90,
				confidence = EXCLUDED.confidence
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

func (r *forecastHistoryRepository) GetByTenantSince(tenantID string, since time.Time) ([]*domain.ForecastSnapshot, error) {
	query, args, err := squirrel.
		Select("fh.id, fh.tenant_id, fh.date, fh.revenue_30, fh.revenue_60, fh.revenue_90, fh.confidence, fh.created_at").
		From(forecastHistoryTable).
		Where(squirrel.Eq{"fh.tenant_id": tenantID}).
		Where(squirrel.GtOrEq{"fh.date": since.Format(time.DateOnly)}).
		OrderBy("fh.date ASC").
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

	snapshots := make([]*domain.ForecastSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.ForecastSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.TenantID,
			&snapshot.Date,
			&snapshot.Revenue30,
			&snapshot.Revenue60,
			&snapshot.Revenue90,
			&snapshot.Confidence,
			&snapshot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de forecast: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *forecastHistoryRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("forecast_history").
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return deleted, nil
}
