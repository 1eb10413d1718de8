package auditing

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/vfg2006/seo-audit-api/infrastructure/repository"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

type Service struct {
	auditRepo   repository.AuditRepository
	historyRepo repository.AuditHistoryRepository
	fetcher     MetricFetcher
	cfg         config.AuditRefresh
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewService(
	auditRepo repository.AuditRepository,
	historyRepo repository.AuditHistoryRepository,
	fetcher MetricFetcher,
	cfg *config.Config,
) AuditService {
	return &Service{
		auditRepo:   auditRepo,
		historyRepo: historyRepo,
		fetcher:     fetcher,
		cfg:         cfg.AuditRefresh,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

func (s *Service) RefreshDomain(ctx context.Context, rawDomain string) (*domain.RefreshReport, error) {
	normalized, err := domain.NormalizeDomain(rawDomain)
	if err != nil {
		return nil, NewDomainAuditError(ErrInvalidDomain, apiErrors.ErrInvalidDomain, rawDomain, "informe um domínio como example.com")
	}

	if err := s.fetcher.CheckCredentials(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Atualização manual abortada")
		return nil, err
	}

	runID := s.newRunID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"domain": normalized,
		"source": domain.SnapshotSourceManual,
	})
	logger.Info("Iniciando atualização manual da auditoria")

	audit := &domain.Audit{
		Domain: normalized,
		Slug:   domain.Slugify(normalized),
	}

	result := s.processAudit(ctx, audit, domain.SnapshotSourceManual, logger)

	return &domain.RefreshReport{
		Success:   result.Success,
		Processed: 1,
		Results:   []domain.RefreshResult{result},
		RunID:     runID,
	}, nil
}

// RefreshStale processa até BatchLimit auditorias desatualizadas, uma por vez, com
// RequestDelay entre domínios. O cancelamento do contexto interrompe o lote e os
// domínios restantes continuam desatualizados para a próxima execução.
func (s *Service) RefreshStale(ctx context.Context) (*domain.RefreshReport, error) {
	if err := s.fetcher.CheckCredentials(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Atualização em lote abortada")
		return nil, err
	}

	runID := s.newRunID(ctx)
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"source": domain.SnapshotSourceAuto,
	})

	olderThan := s.now().Add(-s.cfg.StaleAfter())
	audits, err := s.auditRepo.ListStale(ctx, olderThan, s.cfg.BatchLimit)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar auditorias desatualizadas")
		return nil, NewAuditError(ErrFetchStale, apiErrors.ErrDatabaseOperation, err.Error())
	}

	report := &domain.RefreshReport{
		Success: true,
		Results: make([]domain.RefreshResult, 0, len(audits)),
		RunID:   runID,
	}

	if len(audits) == 0 {
		logger.Info("Nenhuma auditoria desatualizada encontrada")
		return report, nil
	}

	logger.WithField("audit_count", len(audits)).Info("Iniciando atualização em lote das auditorias")

	for i, stale := range audits {
		if i > 0 {
			if err := s.sleep(ctx, s.cfg.RequestDelay()); err != nil {
				logger.WithField("remaining", len(audits)-i).Warn("Lote interrompido, domínios restantes ficam para a próxima execução")
				break
			}
		}

		report.Results = append(report.Results, s.refreshStaleAudit(ctx, stale, logger))
	}

	report.Processed = len(report.Results)

	logger.WithFields(log.Fields{
		"audit_processed": report.Processed,
		"audit_failed":    report.Failed(),
	}).Info("Atualização em lote concluída")

	return report, nil
}

func (s *Service) refreshStaleAudit(ctx context.Context, stale *domain.Audit, logger log.Logger) domain.RefreshResult {
	normalized, err := domain.NormalizeDomain(stale.Domain)
	if err != nil {
		logger.WithFields(log.Fields{
			"domain": stale.Domain,
			"slug":   stale.Slug,
		}).Warn("Domínio armazenado é inválido")

		return domain.RefreshResult{
			Domain: stale.Domain,
			Slug:   stale.Slug,
			Error:  ErrInvalidDomain.Error(),
		}
	}

	// O slug armazenado identifica a linha selecionada, mesmo que tenha sido gerado por outra regra
	slug := stale.Slug
	if slug == "" {
		slug = domain.Slugify(normalized)
	}

	audit := &domain.Audit{
		ID:     stale.ID,
		Domain: normalized,
		Slug:   slug,
	}

	return s.processAudit(ctx, audit, domain.SnapshotSourceAuto, logger.WithFields(log.Fields{
		"domain": normalized,
		"slug":   slug,
	}))
}

// processAudit busca as métricas, grava o estado atual e depois o histórico.
// As duas escritas são independentes: falha no histórico não desfaz o upsert.
func (s *Service) processAudit(ctx context.Context, audit *domain.Audit, source domain.SnapshotSource, logger log.Logger) domain.RefreshResult {
	result := domain.RefreshResult{
		Domain: audit.Domain,
		Slug:   audit.Slug,
	}

	metrics, err := s.fetcher.Fetch(ctx, audit.Domain)
	if err != nil {
		logger.WithError(err).Warn("Falha ao buscar métricas do domínio")
		result.Error = err.Error()
		return result
	}

	audit.AuditMetrics = *metrics
	result.Metrics = metrics

	auditID, err := s.auditRepo.UpsertMetrics(ctx, audit)
	if err != nil {
		logger.WithError(err).Error("Erro ao salvar métricas da auditoria")
		result.Error = ErrDatabaseOperation.Error()
		return result
	}

	result.Success = true

	snapshot := domain.NewSnapshotFromAudit(auditID, audit, source)
	if _, err := s.historyRepo.Insert(ctx, snapshot); err != nil {
		logger.WithError(err).Error("Erro ao gravar histórico da auditoria")
		return result
	}

	result.HistoryRecorded = true
	logger.Info("Auditoria atualizada")

	return result
}

func (s *Service) GetAudit(ctx context.Context, slug string) (*domain.Audit, error) {
	audit, err := s.auditRepo.GetBySlug(ctx, slug)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("slug", slug).Error("Erro ao buscar auditoria")
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar auditoria no banco de dados")
	}

	if audit == nil {
		return nil, NewAuditError(ErrAuditNotFound, apiErrors.ErrAuditNotFound, slug)
	}

	return audit, nil
}

func (s *Service) ListAudits(ctx context.Context, filter domain.AuditFilter) ([]*domain.Audit, error) {
	audits, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar auditorias")
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar auditorias no banco de dados")
	}

	return audits, nil
}

func (s *Service) GetHistory(ctx context.Context, slug string, filter domain.HistoryFilter) ([]*domain.AuditHistorySnapshot, error) {
	if err := validateHistoryFilter(filter); err != nil {
		return nil, err
	}

	audit, err := s.GetAudit(ctx, slug)
	if err != nil {
		return nil, err
	}

	return s.listHistory(ctx, audit, filter)
}

func (s *Service) GetTrend(ctx context.Context, slug string, filter domain.HistoryFilter) (*domain.AuditTrend, error) {
	if err := validateHistoryFilter(filter); err != nil {
		return nil, err
	}

	audit, err := s.GetAudit(ctx, slug)
	if err != nil {
		return nil, err
	}

	bounds, err := s.historyRepo.GetBounds(ctx, audit.ID, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("slug", audit.Slug).Error("Erro ao buscar pontas do histórico")
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar histórico no banco de dados")
	}

	return domain.BuildTrend(audit, *bounds), nil
}

func (s *Service) listHistory(ctx context.Context, audit *domain.Audit, filter domain.HistoryFilter) ([]*domain.AuditHistorySnapshot, error) {
	history, err := s.historyRepo.ListByAuditID(ctx, audit.ID, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("slug", audit.Slug).Error("Erro ao buscar histórico da auditoria")
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar histórico no banco de dados")
	}

	return history, nil
}

func validateHistoryFilter(filter domain.HistoryFilter) error {
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return NewAuditError(ErrInvalidFilter, apiErrors.ErrInvalidRequest, "start_date deve ser anterior a end_date")
	}
	return nil
}

// ClaimAudit associa um e-mail à auditoria. Uma auditoria só pode ser reivindicada uma vez.
func (s *Service) ClaimAudit(ctx context.Context, slug string, email string) (*domain.Audit, error) {
	address, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, NewAuditError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, email)
	}
	normalizedEmail := strings.ToLower(address.Address)

	claimed, err := s.auditRepo.Claim(ctx, slug, normalizedEmail)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("slug", slug).Error("Erro ao reivindicar auditoria")
		return nil, NewAuditError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao reivindicar auditoria")
	}

	audit, err := s.GetAudit(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !claimed {
		return nil, NewAuditError(ErrAlreadyClaimed, apiErrors.ErrAlreadyClaimed, slug)
	}

	log.ForContext(ctx).WithField("slug", slug).Info("Auditoria reivindicada")
	return audit, nil
}

func (s *Service) newRunID(ctx context.Context) string {
	runID, err := utils.GenerateRunID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o identificador da execução")
		return ""
	}
	return runID
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
