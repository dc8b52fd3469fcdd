package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/solar-pipeline-api/pkg/apiErrors"
)

// GetPipelineStages retorna a configuração de estágios do tenant, com
// fallback para o pipeline padrão quando não há customização
func GetPipelineStages(service pipeline.PipelineService) http.Handler {
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

		stages := service.GetStages(tenantID)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stages); err != nil {
			logrus.Error("Erro ao enviar resposta dos estágios:", err)
		}
	})
}

// PreviewSLA avalia o status de SLA de um par estágio/dias sem tocar em
// nenhum projeto. Útil para o front montar badges de prazo.
func PreviewSLA(service pipeline.PipelineService) http.Handler {
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

		stageID := r.URL.Query().Get("stage_id")
		if stageID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro stage_id não fornecido", nil)
			return
		}

		daysElapsed, err := strconv.Atoi(r.URL.Query().Get("days_elapsed"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days_elapsed inválido", nil)
			return
		}

		status := service.Evaluate(stageID, daysElapsed, tenantID)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"stage_id":     stageID,
			"days_elapsed": daysElapsed,
			"sla_status":   status,
		}); err != nil {
			logrus.Error("Erro ao enviar resposta do preview de SLA:", err)
		}
	})
}
