package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro retornados pela API
const (
	// Erros de autenticação e autorização
	ErrMissingToken          = "AUTH_001" // Cabeçalho Authorization ausente
	ErrInvalidToken          = "AUTH_002" // Token inválido
	ErrExpiredToken          = "AUTH_003" // Token expirado
	ErrInsufficientPrivilege = "AUTH_004" // Escopo insuficiente para o papel

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDomain       = "VAL_004" // Domínio malformado
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado pela rota

	// Erros de recurso
	ErrAuditNotFound  = "RES_001" // Auditoria não encontrada
	ErrAlreadyClaimed = "RES_002" // Auditoria já reivindicada
	ErrSyncInProgress = "RES_003" // Atualização em lote já em andamento
	ErrRouteNotFound  = "RES_004" // Rota inexistente

	// Erros do servidor
	ErrInternalServer     = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation  = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService    = "SRV_003" // Erro em serviço externo
	ErrMissingCredentials = "SRV_005" // Credenciais de provedores não configuradas
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrMissingToken:          http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidDomain:         http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrAuditNotFound:         http.StatusNotFound,
	ErrAlreadyClaimed:        http.StatusConflict,
	ErrSyncInProgress:        http.StatusConflict,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrMissingCredentials:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error   string `json:"error"`             // Mensagem descritiva
	Code    string `json:"code"`              // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:  ErrInternalServer,
			Error: "Erro desconhecido",
		}
	}

	return APIError{
		Code:  code,
		Error: err.Error(),
	}
}
