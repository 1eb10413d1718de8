package bron

import (
	"context"

	"github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/bronclient"
	"github.com/vfg2006/seo-audit-api/internal/config"
	"github.com/vfg2006/seo-audit-api/internal/domain"
)

type BronIntegrator interface {
	IsConfigured() bool
	GetKeywordRankings(ctx context.Context, target string) (*domain.KeywordRankingsResponse, error)
	GetRankSummary(ctx context.Context, target string) (*domain.RankSummary, error)
}

type BronService struct {
	cfg    *config.Config
	Client bronclient.Client
}

func New(cfg *config.Config, client bronclient.Client) BronIntegrator {
	return &BronService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BronService) IsConfigured() bool {
	return s.cfg.BRON.APIKey != ""
}

func (s *BronService) GetKeywordRankings(ctx context.Context, target string) (*domain.KeywordRankingsResponse, error) {
	resp, err := s.Client.GetKeywords(ctx, target)
	if err != nil {
		return nil, err
	}

	rankings := &domain.KeywordRankingsResponse{
		Domain:   target,
		Keywords: make([]domain.KeywordRanking, 0, len(resp.Keywords)),
	}

	for _, kw := range resp.Keywords {
		ranking := domain.KeywordRanking{
			Keyword:          kw.Keyword,
			Position:         kw.Position,
			PreviousPosition: kw.PreviousPosition,
			URL:              kw.URL,
			SearchVolume:     kw.SearchVolume,
		}

		// Posição menor é melhor, então a variação é anterior - atual
		if kw.Position != nil && kw.PreviousPosition != nil {
			change := *kw.PreviousPosition - *kw.Position
			ranking.PositionChange = &change
		}

		rankings.Keywords = append(rankings.Keywords, ranking)
	}

	return rankings, nil
}

func (s *BronService) GetRankSummary(ctx context.Context, target string) (*domain.RankSummary, error) {
	resp, err := s.Client.GetDomainSummary(ctx, target)
	if err != nil {
		return nil, err
	}

	return &domain.RankSummary{
		Domain:          target,
		TrackedKeywords: resp.TrackedKeywords,
		AveragePosition: resp.AveragePosition,
		Visibility:      resp.Visibility,
		Top3:            resp.Top3,
		Top10:           resp.Top10,
	}, nil
}
