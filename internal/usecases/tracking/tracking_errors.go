package tracking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain      = errors.New("domínio inválido")
	ErrMissingCredentials = errors.New("credenciais do BRON não configuradas")
	ErrProviderFailure    = errors.New("falha ao consultar o provedor de rankings")
)

// TrackingError é um erro com contexto adicional para consultas de ranking
type TrackingError struct {
	Err     error
	Code    string
	Details string
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
