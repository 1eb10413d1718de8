package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	ErrMissingSecret   = errors.New("segredo JWT não configurado")
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrUnknownRole     = errors.New("papel desconhecido")
	ErrInvalidLifetime = errors.New("duração do token inválida")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsAuthorizationError indica se o erro é culpa do token recebido, e não da configuração do servidor
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrUnknownRole)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
