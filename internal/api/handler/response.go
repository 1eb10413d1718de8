package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/seo-audit-api/internal/usecases/tracking"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta com status 200 (ou o informado)
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte os erros dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error, fallback string) {
	var auditErr *auditing.AuditError
	if errors.As(err, &auditErr) {
		var details any
		if auditErr.Domain != "" {
			details = map[string]any{"domain": auditErr.Domain}
		}
		apiErrors.WriteError(w, auditErr.Code, auditErr.Error(), details)
		return
	}

	var trackingErr *tracking.TrackingError
	if errors.As(err, &trackingErr) {
		apiErrors.WriteError(w, trackingErr.Code, trackingErr.Error(), nil)
		return
	}

	logger.WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// parseLimit lê o parâmetro limit. Ausente retorna zero para o limite padrão ser aplicado.
func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.Errorf("limit inválido: %q", raw)
	}

	return limit, nil
}
