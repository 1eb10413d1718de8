package auditing

import (
	"context"

	"github.com/vfg2006/seo-audit-api/internal/domain"
)

// MetricFetcher define a busca das métricas de um domínio nas fontes externas
type MetricFetcher interface {
	// CheckCredentials retorna ErrMissingCredentials quando algum provedor não está configurado
	CheckCredentials() error

	// Fetch consulta todas as fontes. Falha apenas quando nenhuma fonte responde.
	Fetch(ctx context.Context, target string) (*domain.AuditMetrics, error)
}

// AuditRefresher atualiza as métricas atuais e grava o histórico
type AuditRefresher interface {
	// RefreshDomain atualiza um único domínio sob demanda (origem manual)
	RefreshDomain(ctx context.Context, rawDomain string) (*domain.RefreshReport, error)

	// RefreshStale atualiza em lote as auditorias desatualizadas (origem auto)
	RefreshStale(ctx context.Context) (*domain.RefreshReport, error)
}

// AuditReader expõe as consultas sobre auditorias e histórico
type AuditReader interface {
	GetAudit(ctx context.Context, slug string) (*domain.Audit, error)
	ListAudits(ctx context.Context, filter domain.AuditFilter) ([]*domain.Audit, error)
	GetHistory(ctx context.Context, slug string, filter domain.HistoryFilter) ([]*domain.AuditHistorySnapshot, error)
	GetTrend(ctx context.Context, slug string, filter domain.HistoryFilter) (*domain.AuditTrend, error)
	ClaimAudit(ctx context.Context, slug string, email string) (*domain.Audit, error)
}

// AuditService é a interface completa usada pela API e pelo agendador
type AuditService interface {
	AuditRefresher
	AuditReader
}
