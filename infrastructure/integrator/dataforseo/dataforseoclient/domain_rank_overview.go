package dataforseoclient

import (
	"context"

	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
)

func (c *DataForSEOClient) GetDomainRankOverview(ctx context.Context, target string) (*RankOverviewResponse, error) {
	tasks := []dataforseodomain.TaskRequest{
		{
			Target:       target,
			LocationCode: c.config.DataForSEO.LocationCode,
			LanguageCode: c.config.DataForSEO.LanguageCode,
		},
	}

	var response RankOverviewResponse
	if err := c.post(ctx, "/dataforseo_labs/google/domain_rank_overview/live", tasks, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
