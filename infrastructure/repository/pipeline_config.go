package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	pipelineStagesTable = "pipeline_stages ps"
)

// PipelineConfigRepository fornece a configuração de pipeline por tenant.
// Retorna lista vazia quando o tenant não tem configuração própria; o
// fallback para o pipeline padrão é responsabilidade do usecase.
type PipelineConfigRepository interface {
	GetStagesByTenant(tenantID string) ([]domain.StageConfig, error)
}

type pipelineConfigRepository struct {
	conn *postgres.Connection
}

func NewPipelineConfigRepository(conn *postgres.Connection) PipelineConfigRepository {
	return &pipelineConfigRepository{
		conn: conn,
	}
}

func (r *pipelineConfigRepository) GetStagesByTenant(tenantID string) ([]domain.StageConfig, error) {
	query, args, err := squirrel.
		Select("ps.stage_id, ps.name, ps.target_days, ps.color, ps.stage_order").
		From(pipelineStagesTable).
		Where(squirrel.Eq{"ps.tenant_id": tenantID}).
		OrderBy("ps.stage_order ASC").
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

	stages := make([]domain.StageConfig, 0)
	for rows.Next() {
		var (
			stage domain.StageConfig
			color sql.NullString
		)

		err := rows.Scan(&stage.ID, &stage.Name, &stage.TargetDays, &color, &stage.Order)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear estágios do pipeline: %w", err)
		}

		if color.Valid {
			stage.Color = &color.String
		}

		stages = append(stages, stage)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stages, nil
}
