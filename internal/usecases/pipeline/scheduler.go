package pipeline

import (
	"time"

	"github.com/vfg2006/solar-pipeline-api/internal/domain"
)

// InitializeSchedule popula o cronograma completo de datas alvo do projeto na
// primeira observação, encadeando as durações configuradas a partir da data
// de criação. Para estágios anteriores ao atual não existe registro
// histórico, então a data real é sintetizada igual à data alvo (backfill de
// melhor esforço). Se o cronograma já existe, apenas o status de SLA é
// recalculado; a função é idempotente sobre as datas.
func InitializeSchedule(project *domain.Project, stages []domain.StageConfig, today time.Time) *domain.Project {
	if project == nil || len(stages) == 0 {
		return project
	}

	out := cloneProject(project)

	if len(out.TargetDates) == 0 || out.ActualDates == nil {
		out.TargetDates = make(map[string]time.Time, len(stages))
		out.ActualDates = make(map[string]time.Time)

		currentIdx := stageIndex(stages, out.Stage)
		if currentIdx < 0 {
			// Estágio desconhecido na configuração: trata como primeiro estágio
			currentIdx = 0
		}

		cursor := startOfDay(out.CreatedAt)
		for i, stage := range stages {
			cursor = cursor.AddDate(0, 0, stageTargetDays(stages, stage.ID))
			out.TargetDates[stage.ID] = cursor
			if i < currentIdx {
				out.ActualDates[stage.ID] = cursor
			}
		}
	}

	out.SLAStatus = EvaluateSLA(out.Stage, DaysInCurrentStage(out, stages, today), stages)
	return out
}

// AdvanceStage move o projeto para o próximo estágio configurado. No último
// estágio (ou com estágio fora da configuração) retorna o projeto inalterado:
// isso é sinal de uso indevido pelo chamador, não uma falha deste serviço.
//
// As datas alvo dos estágios ainda não alcançados são rebaseadas a partir da
// data real do avanço: são estimativas vivas, não compromissos fixos.
func AdvanceStage(project *domain.Project, stages []domain.StageConfig, today time.Time) *domain.Project {
	if project == nil || len(stages) == 0 {
		return project
	}

	currentIdx := stageIndex(stages, project.Stage)
	if currentIdx < 0 || currentIdx >= len(stages)-1 {
		return project
	}

	out := cloneProject(project)
	today = startOfDay(today)

	if out.ActualDates == nil {
		out.ActualDates = make(map[string]time.Time)
	}
	if out.TargetDates == nil {
		out.TargetDates = make(map[string]time.Time, len(stages))
	}

	out.ActualDates[stages[currentIdx].ID] = today

	cursor := today
	for i := currentIdx + 1; i < len(stages); i++ {
		cursor = cursor.AddDate(0, 0, stageTargetDays(stages, stages[i].ID))
		out.TargetDates[stages[i].ID] = cursor
	}

	out.Stage = stages[currentIdx+1].ID
	out.LastUpdated = today
	out.SLAStatus = EvaluateSLA(out.Stage, DaysInCurrentStage(out, stages, today), stages)

	return out
}

// DaysInCurrentStage calcula há quantos dias o projeto está no estágio atual.
// A data de entrada no estágio é a data real do estágio anterior quando
// existe; senão, a data de criação do projeto.
func DaysInCurrentStage(project *domain.Project, stages []domain.StageConfig, today time.Time) int {
	entry := project.CreatedAt

	if idx := stageIndex(stages, project.Stage); idx > 0 {
		if actual, ok := project.ActualDates[stages[idx-1].ID]; ok {
			entry = actual
		}
	}

	return daysBetween(entry, today)
}

func daysBetween(from, to time.Time) int {
	return int(startOfDay(to).Sub(startOfDay(from)).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// cloneProject copia o projeto e seus mapas de datas. As funções de
// cronograma nunca mutam o snapshot recebido, o que as mantém seguras para
// chamadas concorrentes sobre a mesma coleção.
func cloneProject(project *domain.Project) *domain.Project {
	out := *project

	if project.TargetDates != nil {
		out.TargetDates = make(map[string]time.Time, len(project.TargetDates))
		for k, v := range project.TargetDates {
			out.TargetDates[k] = v
		}
	}

	if project.ActualDates != nil {
		out.ActualDates = make(map[string]time.Time, len(project.ActualDates))
		for k, v := range project.ActualDates {
			out.ActualDates[k] = v
		}
	}

	return &out
}
