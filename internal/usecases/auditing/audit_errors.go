package auditing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de auditorias
var (
	// Erros de validação
	ErrInvalidDomain = errors.New("domínio inválido")
	ErrInvalidEmail  = errors.New("e-mail inválido")
	ErrInvalidFilter = errors.New("filtro inválido")

	// Erros de recurso
	ErrAuditNotFound  = errors.New("auditoria não encontrada")
	ErrAlreadyClaimed = errors.New("auditoria já reivindicada")

	// Erros de serviços externos
	ErrMissingCredentials = errors.New("credenciais dos provedores de métricas não configuradas")
	ErrAllSourcesFailed   = errors.New("nenhuma fonte de métricas respondeu")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
	ErrFetchStale        = errors.New("erro ao buscar auditorias desatualizadas")
)

// AuditError é um erro com contexto adicional para auditorias
type AuditError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Domain  string // Domínio envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuditError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuditError) Unwrap() error {
	return e.Err
}

// NewAuditError cria um novo AuditError
func NewAuditError(err error, code string, details string) *AuditError {
	return &AuditError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewDomainAuditError cria um novo AuditError com o domínio envolvido
func NewDomainAuditError(err error, code string, domain string, details string) *AuditError {
	return &AuditError{
		Err:     err,
		Code:    code,
		Domain:  domain,
		Details: details,
	}
}

// IsFatal indica erros que abortam a invocação inteira
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingCredentials) || errors.Is(err, ErrFetchStale)
}
