package dataforseoclient

import (
	"context"

	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
)

func (c *DataForSEOClient) GetBacklinksSummary(ctx context.Context, target string) (*BacklinksSummaryResponse, error) {
	includeSubdomains := true
	tasks := []dataforseodomain.TaskRequest{
		{
			Target:            target,
			IncludeSubdomains: &includeSubdomains,
		},
	}

	var response BacklinksSummaryResponse
	if err := c.post(ctx, "/backlinks/summary/live", tasks, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
