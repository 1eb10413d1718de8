package ahrefs

import (
	"context"
	"time"

	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/ahrefsclient"
	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

type AhrefsIntegrator interface {
	IsConfigured() bool
	GetDomainRating(ctx context.Context, domain string) (float64, error)
	GetBacklinksStats(ctx context.Context, domain string) (*ahrefsdomain.BacklinksStats, error)
}

type AhrefsService struct {
	cfg    *config.Config
	Client ahrefsclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client ahrefsclient.Client) AhrefsIntegrator {
	return &AhrefsService{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *AhrefsService) IsConfigured() bool {
	return s.cfg.Ahrefs.Token != ""
}

func (s *AhrefsService) GetDomainRating(ctx context.Context, domain string) (float64, error) {
	resp, err := s.Client.GetDomainRating(ctx, domain, s.today())
	if err != nil {
		return 0, err
	}

	return resp.DomainRating.DomainRating, nil
}

func (s *AhrefsService) GetBacklinksStats(ctx context.Context, domain string) (*ahrefsdomain.BacklinksStats, error) {
	resp, err := s.Client.GetBacklinksStats(ctx, domain, s.today())
	if err != nil {
		return nil, err
	}

	return &resp.Metrics, nil
}

func (s *AhrefsService) today() string {
	return s.now().Format(time.DateOnly)
}
