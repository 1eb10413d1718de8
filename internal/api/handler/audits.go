package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/internal/scheduler"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
	"github.com/vfg2006/seo-audit-api/pkg/middleware"
	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

type ClaimRequest struct {
	Email string `json:"email"`
}

// RefreshAudits atualiza um domínio sob demanda ou dispara o lote de auditorias desatualizadas.
// O lote passa pelo agendador para respeitar o bloqueio de execução concorrente.
func RefreshAudits(service auditing.AuditRefresher, batch scheduler.AuditRefreshScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.WithError(err).Warn("Corpo da requisição de atualização inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		mode, err := req.ResolveMode()
		if errors.Is(err, domain.ErrMissingRefreshDomain) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo domain é obrigatório no modo single", nil)
			return
		}
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Modo inválido. Valores aceitos: single, batch", nil)
			return
		}

		if mode == domain.RefreshModeSingle {
			logger.WithField("domain", req.Domain).Info("Atualização manual solicitada")

			report, err := service.RefreshDomain(r.Context(), req.Domain)
			if err != nil {
				writeServiceError(w, logger, err, "Erro ao atualizar auditoria")
				return
			}
			middleware.AddLogFields(r.Context(), log.Fields{"domain": req.Domain, "run_id": report.RunID})

			writeJSON(w, logger, http.StatusOK, report)
			return
		}

		claims, _ := middleware.ClaimsFromContext(r.Context())
		if !claims.HasScope(domain.ScopeAuditsBatch) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para executar o lote", map[string]any{
				"required_scope": domain.ScopeAuditsBatch,
			})
			return
		}

		logger.Info("Atualização em lote solicitada")

		report, err := batch.RunOnce(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
				return
			}
			writeServiceError(w, logger, err, "Erro ao executar atualização em lote")
			return
		}
		middleware.AddLogFields(r.Context(), log.Fields{"job": scheduler.JobAuditRefresh, "run_id": report.RunID})

		writeJSON(w, logger, http.StatusOK, report)
	}
}

func ListAudits(service auditing.AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		filter := domain.AuditFilter{Limit: limit}
		if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
			filter.Category = &category
		}

		audits, err := service.ListAudits(r.Context(), filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao listar auditorias")
			return
		}

		writeJSON(w, logger, http.StatusOK, audits)
	}
}

func GetAudit(service auditing.AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		audit, err := service.GetAudit(r.Context(), slug)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar auditoria")
			return
		}

		writeJSON(w, logger, http.StatusOK, audit)
	}
}

func GetAuditHistory(service auditing.AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		filter, err := parseHistoryFilter(r)
		if err != nil {
			logger.WithError(err).Warn("Filtro de histórico inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		history, err := service.GetHistory(r.Context(), slug, filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao buscar histórico")
			return
		}

		writeJSON(w, logger, http.StatusOK, history)
	}
}

func GetAuditTrend(service auditing.AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		filter, err := parseHistoryFilter(r)
		if err != nil {
			logger.WithError(err).Warn("Filtro de tendência inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		trend, err := service.GetTrend(r.Context(), slug, filter)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao calcular tendência")
			return
		}

		writeJSON(w, logger, http.StatusOK, trend)
	}
}

func ClaimAudit(service auditing.AuditReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

		var req ClaimRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("Corpo da requisição de reivindicação inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.Email) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "E-mail é obrigatório", nil)
			return
		}

		audit, err := service.ClaimAudit(r.Context(), slug, req.Email)
		if err != nil {
			writeServiceError(w, logger, err, "Erro ao reivindicar auditoria")
			return
		}

		writeJSON(w, logger, http.StatusOK, audit)
	}
}

func parseHistoryFilter(r *http.Request) (domain.HistoryFilter, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return domain.HistoryFilter{}, errors.Wrap(err, "start_date inválido")
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return domain.HistoryFilter{}, errors.Wrap(err, "end_date inválido")
	}

	if endDate != nil {
		end := utils.EndOfDay(*endDate)
		endDate = &end
	}

	limit, err := parseLimit(r)
	if err != nil {
		return domain.HistoryFilter{}, err
	}

	return domain.HistoryFilter{
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     limit,
	}, nil
}
