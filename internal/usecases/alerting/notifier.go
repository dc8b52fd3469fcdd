package alerting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

// Notifier é o sink de entrega de notificações. A entrega em si (lista
// in-app, push, email, SMS) é responsabilidade de um colaborador externo;
// este serviço apenas entrega o registro.
type Notifier interface {
	Notify(notification *domain.Notification) error
}

// LogNotifier é o sink padrão: apenas registra a notificação no log. Útil em
// desenvolvimento e como fallback quando nenhum canal de entrega está
// configurado.
type LogNotifier struct{}

func NewLogNotifier() Notifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(notification *domain.Notification) error {
	logrus.WithFields(logrus.Fields{
		"notification_id": notification.ID,
		"tenant_id":       notification.TenantID,
		"type":            notification.Type,
		"priority":        notification.Priority,
	}).Info(notification.Title)
	return nil
}
