package ahrefsclient

import (
	"context"
	"net/url"

	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
)

func (c *AhrefsClient) GetDomainRating(ctx context.Context, target string, date string) (*ahrefsdomain.DomainRatingResponse, error) {
	query := url.Values{}
	query.Set("target", target)
	query.Set("date", date)

	var response ahrefsdomain.DomainRatingResponse
	if err := c.get(ctx, "/site-explorer/domain-rating", query, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
