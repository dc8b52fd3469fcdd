package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/pkg/apiErrors"
)

// defaultNotificationLimit limita o feed quando a query não informa limit
const defaultNotificationLimit = 50

// ListNotifications retorna o feed de notificações de SLA do tenant, da mais
// recente para a mais antiga
func ListNotifications(repo repository.NotificationRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do tenant não fornecido", nil)
			return
		}

		if !tenantAllowed(r, tenantID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este tenant", nil)
			return
		}

		limit := uint64(defaultNotificationLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		notifications, err := repo.ListByTenant(tenantID, limit)
		if err != nil {
			logrus.Error("Erro ao buscar notificações:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar notificações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(notifications); err != nil {
			logrus.Error("Erro ao enviar resposta das notificações:", err)
		}
	})
}
