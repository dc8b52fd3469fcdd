// Package alerting implementa a ponte de notificações de SLA: compara o
// status recém-calculado de cada projeto com o último status registrado e
// emite alertas apenas nas transições (edge-triggered). Reavaliar um projeto
// que continua atrasado não gera alerta novo; só o momento em que ele passa
// a atrasar importa.
package alerting

import "github.com/vfg2006/solar-pipeline-api/internal/domain"

// Transition descreve uma mudança de status de SLA detectada entre duas
// passadas de avaliação. Alert indica se a transição emite notificação;
// transições silenciosas (volta ao prazo, atrasado que melhorou para em
// risco) apenas atualizam o estado registrado.
type Transition struct {
	Project *domain.Project
	From    domain.SLAStatus // vazio quando não havia status registrado
	To      domain.SLAStatus
	Alert   bool
}

// DetectTransitions é o núcleo puro da ponte: recebe o mapa de últimos
// status observados por projeto e a lista de projetos com SLA recém-
// calculado, e devolve as transições detectadas junto com o próximo mapa de
// estado. O chamador é dono da persistência do mapa; esta função não tem
// estado próprio, o que a mantém testável e segura para reexecução.
func DetectTransitions(previous map[string]domain.SLAStatus, projects []*domain.Project) ([]Transition, map[string]domain.SLAStatus) {
	next := make(map[string]domain.SLAStatus, len(previous))
	for id, status := range previous {
		next[id] = status
	}

	transitions := make([]Transition, 0)

	for _, project := range projects {
		if project == nil {
			continue
		}

		current := project.SLAStatus
		if current == "" {
			current = domain.SLAStatusOnTrack
		}

		recorded, hasRecorded := previous[project.ID]
		if hasRecorded && recorded == current {
			continue
		}

		switch current {
		case domain.SLAStatusAtRisk:
			// Atrasado que melhorou para em risco não re-alerta, mas o estado
			// registrado acompanha a melhora para que uma nova piora alerte
			transitions = append(transitions, Transition{
				Project: project,
				From:    recorded,
				To:      current,
				Alert:   recorded != domain.SLAStatusLate,
			})
			next[project.ID] = current

		case domain.SLAStatusLate:
			transitions = append(transitions, Transition{
				Project: project,
				From:    recorded,
				To:      current,
				Alert:   true,
			})
			next[project.ID] = current

		case domain.SLAStatusOnTrack:
			// Voltar ao prazo limpa o registro em silêncio: a ausência de
			// alerta é o próprio sinal de normalidade
			if hasRecorded {
				transitions = append(transitions, Transition{
					Project: project,
					From:    recorded,
					To:      current,
					Alert:   false,
				})
				delete(next, project.ID)
			}
		}
	}

	return transitions, next
}
