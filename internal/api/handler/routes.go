package handler

import (
	"net/http"

	"github.com/vfg2006/seo-audit-api/internal/api/handler/router"
	"github.com/vfg2006/seo-audit-api/internal/scheduler"
	"github.com/vfg2006/seo-audit-api/internal/usecases/auditing"
	"github.com/vfg2006/seo-audit-api/internal/usecases/tracking"
	"github.com/vfg2006/seo-audit-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Audits(service auditing.AuditService, batch scheduler.AuditRefreshScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audits/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshAudits(service, batch),
			LongRunning: true,
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsRefresh()},
		},
		{
			Path:        "/v1/audits",
			Method:      http.MethodGet,
			Handler:     ListAudits(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsRead()},
		},
		{
			Path:        "/v1/audits/:slug",
			Method:      http.MethodGet,
			Handler:     GetAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsRead()},
		},
		{
			Path:        "/v1/audits/:slug/history",
			Method:      http.MethodGet,
			Handler:     GetAuditHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsRead()},
		},
		{
			Path:        "/v1/audits/:slug/trend",
			Method:      http.MethodGet,
			Handler:     GetAuditTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsRead()},
		},
		{
			Path:        "/v1/audits/:slug/claim",
			Method:      http.MethodPut,
			Handler:     ClaimAudit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AuditsClaim()},
		},
	}
}

func Rankings(service tracking.RankTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rankings/keywords",
			Method:      http.MethodGet,
			Handler:     GetKeywordRankings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RankingsRead()},
		},
		{
			Path:        "/v1/rankings/summary",
			Method:      http.MethodGet,
			Handler:     GetRankSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RankingsRead()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			LongRunning: true,
			Middlewares: []func(http.Handler) http.Handler{middleware.CronRun()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronRead()},
		},
	}
}
