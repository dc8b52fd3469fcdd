package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

const (
	projectsTable = "projects p"
)

type ProjectRepository interface {
	GetByID(projectID string) (*domain.Project, error)
	ListByTenant(tenantID string) ([]*domain.Project, error)
	UpdateSchedule(project *domain.Project) error
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

const projectColumns = "p.id, p.tenant_id, p.lead_id, p.stage, p.system_size_kw, p.installer_name, p.target_dates, p.actual_dates, p.sla_status, p.created_at, p.last_updated"

func (r *projectRepository) GetByID(projectID string) (*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.Eq{"p.id": projectID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	project, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear projeto: %w", err)
	}

	return project, nil
}

func (r *projectRepository) ListByTenant(tenantID string) ([]*domain.Project, error) {
	query, args, err := squirrel.
		Select(projectColumns).
		From(projectsTable).
		Where(squirrel.Eq{"p.tenant_id": tenantID}).
		OrderBy("p.created_at ASC").
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

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear projetos: %w", err)
		}
		projects = append(projects, project)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return projects, nil
}

// UpdateSchedule persiste o cronograma recalculado do projeto (estágio atual,
// datas alvo/reais e status de SLA derivado)
func (r *projectRepository) UpdateSchedule(project *domain.Project) error {
	targetDatesJSON, err := json.Marshal(project.TargetDates)
	if err != nil {
		return fmt.Errorf("erro ao serializar target_dates para JSON: %w", err)
	}

	actualDatesJSON, err := json.Marshal(project.ActualDates)
	if err != nil {
		return fmt.Errorf("erro ao serializar actual_dates para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("projects").
		Set("stage", project.Stage).
		Set("target_dates", targetDatesJSON).
		Set("actual_dates", actualDatesJSON).
		Set("sla_status", string(project.SLAStatus)).
		Set("last_updated", project.LastUpdated).
		Where(squirrel.Eq{"id": project.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var (
		project         domain.Project
		installerName   sql.NullString
		slaStatus       sql.NullString
		targetDatesJSON []byte
		actualDatesJSON []byte
	)

	err := scan(
		&project.ID,
		&project.TenantID,
		&project.LeadID,
		&project.Stage,
		&project.SystemSizeKW,
		&installerName,
		&targetDatesJSON,
		&actualDatesJSON,
		&slaStatus,
		&project.CreatedAt,
		&project.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	if installerName.Valid {
		project.InstallerName = &installerName.String
	}

	if slaStatus.Valid {
		project.SLAStatus = domain.SLAStatus(slaStatus.String)
	}

	if len(targetDatesJSON) > 0 {
		if err := json.Unmarshal(targetDatesJSON, &project.TargetDates); err != nil {
			return nil, fmt.Errorf("erro ao desserializar target_dates: %w", err)
		}
	}

	if len(actualDatesJSON) > 0 {
		if err := json.Unmarshal(actualDatesJSON, &project.ActualDates); err != nil {
			return nil, fmt.Errorf("erro ao desserializar actual_dates: %w", err)
		}
	}

	return &project, nil
}
