package ahrefsclient

import (
	"context"
	"net/url"

	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
)

func (c *AhrefsClient) GetBacklinksStats(ctx context.Context, target string, date string) (*ahrefsdomain.BacklinksStatsResponse, error) {
	query := url.Values{}
	query.Set("target", target)
	query.Set("date", date)
	query.Set("mode", "subdomains")

	var response ahrefsdomain.BacklinksStatsResponse
	if err := c.get(ctx, "/site-explorer/backlinks-stats", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
