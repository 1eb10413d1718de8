package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/usecases/tracking"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

func GetKeywordRankings(service tracking.RankTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		target := r.URL.Query().Get("domain")
		if target == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro domain é obrigatório", nil)
			return
		}

		rankings, err := service.GetKeywordRankings(r.Context(), target)
		if err != nil {
			writeRankingError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, rankings)
	}
}

func GetRankSummary(service tracking.RankTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		target := r.URL.Query().Get("domain")
		if target == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro domain é obrigatório", nil)
			return
		}

		summary, err := service.GetRankSummary(r.Context(), target)
		if err != nil {
			writeRankingError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	}
}

// writeRankingError responde 200 com rate_limited quando o BRON devolve 429,
// para que o cliente possa aguardar e tentar de novo sem tratar como falha.
func writeRankingError(w http.ResponseWriter, logger log.Logger, err error) {
	var rateErr *brondomain.RateLimitedError
	if errors.As(err, &rateErr) {
		w.Header().Set("Retry-After", strconv.Itoa(rateErr.RetryAfter))
		writeJSON(w, logger, http.StatusOK, domain.RateLimitedResponse{
			RateLimited: true,
			RetryAfter:  rateErr.RetryAfter,
			Message:     rateErr.Error(),
		})
		return
	}

	writeServiceError(w, logger, err, "Erro ao consultar rankings")
}
