package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/scheduler"
	"github.com/vfg2006/solar-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/solar-pipeline-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSLAMonitor       = "sla-monitor"
	CronJobTypeForecastSnapshot = "forecast-snapshot"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SLAMonitorService       *scheduler.SLAMonitorService
	ForecastSnapshotService *scheduler.ForecastSnapshotService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeSLAMonitor:
			if services.SLAMonitorService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento de SLA não disponível", nil)
				return
			}
			services.SLAMonitorService.TriggerManualSync()

		case CronJobTypeForecastSnapshot:
			if services.ForecastSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshot de forecast não disponível", nil)
				return
			}
			services.ForecastSnapshotService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SLAMonitorService != nil {
				services.SLAMonitorService.TriggerManualSync()
			}
			if services.ForecastSnapshotService != nil {
				services.ForecastSnapshotService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: sla-monitor, forecast-snapshot, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"sla-monitor":       services.SLAMonitorService.GetStatus(),
			"forecast-snapshot": services.ForecastSnapshotService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
