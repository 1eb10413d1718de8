package tracking

import (
	"context"
	"errors"

	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron"
	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
)

// RankTracker consulta as posições das palavras-chave rastreadas de um domínio.
// Respostas 429 do provedor chegam como *brondomain.RateLimitedError.
type RankTracker interface {
	GetKeywordRankings(ctx context.Context, rawDomain string) (*domain.KeywordRankingsResponse, error)
	GetRankSummary(ctx context.Context, rawDomain string) (*domain.RankSummary, error)
}

type Service struct {
	bron bron.BronIntegrator
}

func NewService(bronService bron.BronIntegrator) RankTracker {
	return &Service{bron: bronService}
}

func (s *Service) GetKeywordRankings(ctx context.Context, rawDomain string) (*domain.KeywordRankingsResponse, error) {
	target, err := s.prepare(rawDomain)
	if err != nil {
		return nil, err
	}

	rankings, err := s.bron.GetKeywordRankings(ctx, target)
	if err != nil {
		return nil, s.providerError(ctx, target, err)
	}

	return rankings, nil
}

func (s *Service) GetRankSummary(ctx context.Context, rawDomain string) (*domain.RankSummary, error) {
	target, err := s.prepare(rawDomain)
	if err != nil {
		return nil, err
	}

	summary, err := s.bron.GetRankSummary(ctx, target)
	if err != nil {
		return nil, s.providerError(ctx, target, err)
	}

	return summary, nil
}

func (s *Service) prepare(rawDomain string) (string, error) {
	target, err := domain.NormalizeDomain(rawDomain)
	if err != nil {
		return "", NewTrackingError(ErrInvalidDomain, apiErrors.ErrInvalidDomain, rawDomain)
	}

	if !s.bron.IsConfigured() {
		return "", NewTrackingError(ErrMissingCredentials, apiErrors.ErrMissingCredentials, "bron")
	}

	return target, nil
}

func (s *Service) providerError(ctx context.Context, target string, err error) error {
	logger := log.ForContext(ctx).WithField("domain", target)

	var rateErr *brondomain.RateLimitedError
	if errors.As(err, &rateErr) {
		logger.WithField("retry_after", rateErr.RetryAfter).Warn("BRON limitou as requisições")
		return rateErr
	}

	logger.WithError(err).Error("Erro ao consultar o BRON")
	return NewTrackingError(ErrProviderFailure, apiErrors.ErrExternalService, err.Error())
}
