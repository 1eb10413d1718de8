package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Domínio inválido", code: ErrInvalidDomain, expectedStatus: http.StatusBadRequest},
		{name: "Sem token", code: ErrMissingToken, expectedStatus: http.StatusUnauthorized},
		{name: "Sem escopo", code: ErrInsufficientPrivilege, expectedStatus: http.StatusForbidden},
		{name: "Não encontrado", code: ErrAuditNotFound, expectedStatus: http.StatusNotFound},
		{name: "Já reivindicada", code: ErrAlreadyClaimed, expectedStatus: http.StatusConflict},
		{name: "Credenciais ausentes", code: ErrMissingCredentials, expectedStatus: http.StatusInternalServerError},
		{name: "Código desconhecido", code: "XXX_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "mensagem", body["error"])
			assert.Equal(t, tt.code, body["code"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Error)

	apiErr = FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
