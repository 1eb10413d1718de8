package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authenticator := mocks.NewMockAuthenticator(ctrl)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := NewHandler(next, authenticator)

	t.Run("Preflight responde 200 com CORS", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/audits/refresh", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "x-client-info")
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Sem token responde 401 com CORS", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/audits", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Token válido chega ao roteador", func(t *testing.T) {
		authenticator.EXPECT().ValidateToken("good").Return(&domain.Claims{Role: domain.RoleAnon}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/audits", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
