package bronclient

import (
	"context"
	"net/url"
	"time"

	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
)

func (c *BronClient) GetKeywords(ctx context.Context, domain string) (*brondomain.KeywordsResponse, error) {
	query := url.Values{}
	query.Set("domain", domain)

	timeout := secondsOrDefault(c.config.BRON.KeywordsTimeoutSeconds, 25*time.Second)

	var response brondomain.KeywordsResponse
	if err := c.get(ctx, "/keywords", query, timeout, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
