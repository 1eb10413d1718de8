package bronclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	brondomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/bron/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetKeywords(ctx context.Context, domain string) (*brondomain.KeywordsResponse, error)
	GetDomainSummary(ctx context.Context, domain string) (*brondomain.SummaryResponse, error)
}

type BronClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &BronClient{
		httpClient: &http.Client{},
		config:     cfg,
	}
}

// get executa o GET com o timeout próprio de cada chamada
func (c *BronClient) get(ctx context.Context, resource string, query url.Values, timeout time.Duration, out any) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint, err := url.Parse(c.config.BRON.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("X-API-Key", c.config.BRON.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &brondomain.RateLimitedError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// parseRetryAfter aceita apenas o formato em segundos
func parseRetryAfter(value string) int {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return brondomain.DefaultRetryAfterSeconds
	}
	return seconds
}

func secondsOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
