package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/seo-audit-api/internal/scheduler"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
	"github.com/vfg2006/seo-audit-api/pkg/middleware"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	AuditRefreshSyncService scheduler.AuditRefreshScheduler
}

// RunCronJob executa manualmente uma cron job específica. Por padrão a execução é
// síncrona e retorna o relatório; com async=true apenas dispara em segundo plano.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != scheduler.JobAuditRefresh {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: audit-refresh", nil)
			return
		}

		if services.AuditRefreshSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização de auditorias não disponível", nil)
			return
		}

		logger.WithField("job", cronType).Info("Execução manual de cron job solicitada")

		if r.URL.Query().Get("async") == "true" {
			if !services.AuditRefreshSyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, scheduler.ErrSyncRunning.Error(), nil)
				return
			}

			writeJSON(w, logger, http.StatusAccepted, map[string]any{
				"message": "Cron job iniciada com sucesso",
				"type":    cronType,
			})
			return
		}

		report, err := services.AuditRefreshSyncService.RunOnce(r.Context())
		if err != nil {
			if errors.Is(err, scheduler.ErrSyncRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, err.Error(), nil)
				return
			}
			writeServiceError(w, logger, err, "Erro ao executar cron job")
			return
		}
		middleware.AddLogFields(r.Context(), log.Fields{"job": cronType, "run_id": report.RunID})

		writeJSON(w, logger, http.StatusOK, report)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{}
		if services.AuditRefreshSyncService != nil {
			status[scheduler.JobAuditRefresh] = services.AuditRefreshSyncService.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	}
}
