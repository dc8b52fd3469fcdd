package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/solar-pipeline-api/pkg/apiErrors"
)

// InitializeProjectSchedule calcula e persiste as datas alvo do cronograma
// de um projeto recém criado. A operação é idempotente: projetos já
// agendados são retornados como estão.
func InitializeProjectSchedule(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		project, err := service.InitializeSchedule(projectID)
		if err != nil {
			handleProjectError(w, err, "Erro ao inicializar cronograma do projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(project); err != nil {
			logrus.Error("Erro ao enviar resposta do cronograma:", err)
		}
	})
}

// AdvanceProjectStage move o projeto para o próximo estágio do pipeline,
// registrando a data real do estágio concluído e reencadeando as datas alvo
func AdvanceProjectStage(service pipeline.PipelineService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		project, err := service.AdvanceStage(projectID)
		if err != nil {
			handleProjectError(w, err, "Erro ao avançar estágio do projeto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(project); err != nil {
			logrus.Error("Erro ao enviar resposta do avanço de estágio:", err)
		}
	})
}

// handleProjectError mapeia erros do usecase de pipeline para respostas HTTP
func handleProjectError(w http.ResponseWriter, err error, fallbackMsg string) {
	logrus.Error(err)

	switch {
	case errors.Is(err, pipeline.ErrProjectIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do projeto não fornecido", nil)

	case errors.Is(err, pipeline.ErrProjectNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Projeto não encontrado", nil)

	case errors.Is(err, pipeline.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallbackMsg, nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMsg, nil)
	}
}
