package dataforseo

import (
	"context"

	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/dataforseoclient"
	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

type DataForSEOIntegrator interface {
	IsConfigured() bool
	GetOrganicMetrics(ctx context.Context, domain string) (*dataforseodomain.OrganicMetrics, error)
	GetRankScore(ctx context.Context, domain string) (float64, error)
}

type DataForSEOService struct {
	cfg    *config.Config
	Client dataforseoclient.Client
}

func New(cfg *config.Config, client dataforseoclient.Client) DataForSEOIntegrator {
	return &DataForSEOService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DataForSEOService) IsConfigured() bool {
	return s.cfg.DataForSEO.Login != "" && s.cfg.DataForSEO.Password != ""
}

// GetOrganicMetrics retorna tráfego, palavras-chave e valor de tráfego orgânico.
// Domínios sem dados na base retornam métricas zeradas.
func (s *DataForSEOService) GetOrganicMetrics(ctx context.Context, domain string) (*dataforseodomain.OrganicMetrics, error) {
	resp, err := s.Client.GetDomainRankOverview(ctx, domain)
	if err != nil {
		return nil, err
	}

	result, err := resp.FirstResult()
	if err != nil {
		return nil, err
	}

	if len(result.Items) == 0 {
		return &dataforseodomain.OrganicMetrics{}, nil
	}

	organic := result.Items[0].Metrics.Organic
	return &organic, nil
}

func (s *DataForSEOService) GetRankScore(ctx context.Context, domain string) (float64, error) {
	resp, err := s.Client.GetBacklinksSummary(ctx, domain)
	if err != nil {
		return 0, err
	}

	result, err := resp.FirstResult()
	if err != nil {
		return 0, err
	}

	return result.Rank, nil
}
