package auditing

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs"
	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo"
	"github.com/vfg2006/seo-audit-api/internal/domain"
	"github.com/vfg2006/seo-audit-api/pkg/apiErrors"
	"github.com/vfg2006/seo-audit-api/pkg/log"
	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

// Nomes das fontes usados nos logs e nos detalhes de erro
const (
	SourceAhrefsDomainRating         = "ahrefs.domain_rating"
	SourceAhrefsBacklinksStats       = "ahrefs.backlinks_stats"
	SourceDataForSEORankOverview     = "dataforseo.rank_overview"
	SourceDataForSEOBacklinksSummary = "dataforseo.backlinks_summary"
)

// metricSource preenche em metrics apenas os campos que lhe pertencem
type metricSource struct {
	name  string
	fetch func(ctx context.Context, target string, metrics *domain.AuditMetrics) error
}

type Fetcher struct {
	ahrefs     ahrefs.AhrefsIntegrator
	dataforseo dataforseo.DataForSEOIntegrator
	sources    []metricSource
}

func NewFetcher(ahrefsService ahrefs.AhrefsIntegrator, dataforseoService dataforseo.DataForSEOIntegrator) MetricFetcher {
	f := &Fetcher{
		ahrefs:     ahrefsService,
		dataforseo: dataforseoService,
	}

	f.sources = []metricSource{
		{name: SourceAhrefsDomainRating, fetch: f.fetchDomainRating},
		{name: SourceAhrefsBacklinksStats, fetch: f.fetchBacklinksStats},
		{name: SourceDataForSEORankOverview, fetch: f.fetchRankOverview},
		{name: SourceDataForSEOBacklinksSummary, fetch: f.fetchBacklinksSummary},
	}

	return f
}

func (f *Fetcher) CheckCredentials() error {
	missing := make([]string, 0, 2)
	if !f.ahrefs.IsConfigured() {
		missing = append(missing, "ahrefs")
	}
	if !f.dataforseo.IsConfigured() {
		missing = append(missing, "dataforseo")
	}

	if len(missing) > 0 {
		return NewAuditError(ErrMissingCredentials, apiErrors.ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

// Fetch executa as fontes em sequência. Uma fonte com falha deixa seus campos nulos.
func (f *Fetcher) Fetch(ctx context.Context, target string) (*domain.AuditMetrics, error) {
	logger := log.ForContext(ctx).WithField("domain", target)
	logger.Debug("Buscando métricas do domínio")

	metrics := &domain.AuditMetrics{}
	failures := make([]string, 0, len(f.sources))

	for _, source := range f.sources {
		if err := source.fetch(ctx, target, metrics); err != nil {
			logger.WithFields(log.Fields{
				"source": source.name,
				"error":  err.Error(),
			}).Warn("Fonte de métricas falhou")

			failures = append(failures, fmt.Sprintf("%s: %s", source.name, err.Error()))
		}
	}

	if len(failures) == len(f.sources) {
		return nil, NewDomainAuditError(ErrAllSourcesFailed, apiErrors.ErrExternalService, target, strings.Join(failures, "; "))
	}

	logger.WithField("failed_sources", len(failures)).Debug("Métricas obtidas")

	return metrics, nil
}

func (f *Fetcher) fetchDomainRating(ctx context.Context, target string, metrics *domain.AuditMetrics) error {
	rating, err := f.ahrefs.GetDomainRating(ctx, target)
	if err != nil {
		return err
	}

	metrics.DomainRating = &rating
	return nil
}

func (f *Fetcher) fetchBacklinksStats(ctx context.Context, target string, metrics *domain.AuditMetrics) error {
	stats, err := f.ahrefs.GetBacklinksStats(ctx, target)
	if err != nil {
		return err
	}

	backlinks := stats.Live
	refdomains := stats.LiveRefdomains
	metrics.Backlinks = &backlinks
	metrics.ReferringDomains = &refdomains
	return nil
}

func (f *Fetcher) fetchRankOverview(ctx context.Context, target string, metrics *domain.AuditMetrics) error {
	organic, err := f.dataforseo.GetOrganicMetrics(ctx, target)
	if err != nil {
		return err
	}

	traffic := int64(math.Round(organic.ETV))
	keywords := organic.Count
	value := utils.RoundWithTwoDecimalPlace(organic.EstimatedPaidTrafficCost)
	metrics.OrganicTraffic = &traffic
	metrics.OrganicKeywords = &keywords
	metrics.TrafficValue = &value
	return nil
}

func (f *Fetcher) fetchBacklinksSummary(ctx context.Context, target string, metrics *domain.AuditMetrics) error {
	rank, err := f.dataforseo.GetRankScore(ctx, target)
	if err != nil {
		return err
	}

	metrics.RankScore = &rank
	return nil
}
