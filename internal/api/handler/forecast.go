package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/solar-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/solar-pipeline-api/pkg/log"
	"github.com/vfg2006/solar-pipeline-api/pkg/middleware"
	"github.com/vfg2006/solar-pipeline-api/pkg/utils"
)

// defaultHistoryDays limita a janela padrão do histórico de forecast
const defaultHistoryDays = 30

// GetForecast calcula a previsão de receita do tenant sobre os dados atuais
// de leads, projetos e comissões
func GetForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do tenant não fornecido", nil)
			return
		}

		if !tenantAllowed(r, tenantID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este tenant", nil)
			return
		}

		logger.WithField("tenant_id", tenantID).Info("forecast: computing revenue forecast")

		forecast, err := service.GetForecast(tenantID)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("forecast: failed to compute forecast")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular forecast", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(forecast); err != nil {
			logger.WithError(err).Error("forecast: failed to encode response")
		}
	})
}

// GetForecastHistory retorna a série de fotografias diárias do forecast,
// limitada pela query string days (padrão 30) ou por uma data de corte
// since no formato 2006-01-02
func GetForecastHistory(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do tenant não fornecido", nil)
			return
		}

		if !tenantAllowed(r, tenantID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem acesso a este tenant", nil)
			return
		}

		days := defaultHistoryDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro days inválido", nil)
				return
			}
			days = parsed
		}

		// since tem precedência sobre days quando as duas vierem juntas
		if raw := r.URL.Query().Get("since"); raw != "" {
			since, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro since inválido, use o formato 2006-01-02", nil)
				return
			}

			days = int(time.Since(*since).Hours() / 24)
			if days <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro since precisa ser uma data passada", nil)
				return
			}
		}

		history, err := service.GetForecastHistory(tenantID, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"days":      days,
				"error":     err.Error(),
			}).Error("forecast: failed to load forecast history")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico de forecast", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(history); err != nil {
			logger.WithError(err).Error("forecast: failed to encode response")
		}
	})
}

// tenantAllowed verifica se o usuário autenticado pode consultar o tenant.
// Administradores enxergam qualquer tenant.
func tenantAllowed(r *http.Request, tenantID string) bool {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return false
	}

	if userClaims.UserRoleID == middleware.RoleAdmin {
		return true
	}

	return userClaims.UserTenantID == tenantID
}
