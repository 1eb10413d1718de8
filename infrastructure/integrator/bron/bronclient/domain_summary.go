package bronclient

import (
	"context"
	"net/url"
	"time"

	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
)

func (c *BronClient) GetDomainSummary(ctx context.Context, domain string) (*brondomain.SummaryResponse, error) {
	timeout := secondsOrDefault(c.config.BRON.SummaryTimeoutSeconds, 30*time.Second)

	var response brondomain.SummaryResponse
	if err := c.get(ctx, "/domains/"+url.PathEscape(domain)+"/summary", nil, timeout, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
