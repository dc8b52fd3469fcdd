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
	notificationsTable = "notifications n"
)

type NotificationRepository interface {
	Save(notification *domain.Notification) error
	ListByTenant(tenantID string, limit uint64) ([]*domain.Notification, error)
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

func (r *notificationRepository) Save(notification *domain.Notification) error {
	var dataJSON []byte
	var err error

	if notification.Data != nil {
		dataJSON, err = json.Marshal(notification.Data)
		if err != nil {
			return fmt.Errorf("erro ao serializar data para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("notifications").
		Columns("id", "tenant_id", "type", "title", "message", "priority", "data", "action_url").
		Values(
			notification.ID,
			notification.TenantID,
			notification.Type,
			notification.Title,
			notification.Message,
			notification.Priority,
			dataJSON,
			notification.ActionURL,
		).
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

func (r *notificationRepository) ListByTenant(tenantID string, limit uint64) ([]*domain.Notification, error) {
	query, args, err := squirrel.
		Select("n.id, n.tenant_id, n.type, n.title, n.message, n.priority, n.data, n.action_url, n.created_at").
		From(notificationsTable).
		Where(squirrel.Eq{"n.tenant_id": tenantID}).
		OrderBy("n.created_at DESC").
		Limit(limit).
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

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var (
			notification domain.Notification
			dataJSON     []byte
		)

		err := rows.Scan(
			&notification.ID,
			&notification.TenantID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.Priority,
			&dataJSON,
			&notification.ActionURL,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear notificações: %w", err)
		}

		if len(dataJSON) > 0 {
			if err := json.Unmarshal(dataJSON, &notification.Data); err != nil {
				return nil, fmt.Errorf("erro ao desserializar data: %w", err)
			}
		}

		notifications = append(notifications, &notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return notifications, nil
}
