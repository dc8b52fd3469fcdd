package pipeline

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pipeline
var (
	ErrProjectNotFound   = errors.New("projeto não encontrado")
	ErrProjectIDRequired = errors.New("o ID do projeto é obrigatório")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// PipelineError é um erro com contexto adicional para operações de pipeline
type PipelineError struct {
	Err       error  // Erro base
	ProjectID string // ID do projeto envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewPipelineError cria um novo erro de pipeline com contexto de projeto
func NewPipelineError(baseErr error, projectID string, details string) *PipelineError {
	return &PipelineError{
		Err:       baseErr,
		ProjectID: projectID,
		Details:   details,
	}
}
