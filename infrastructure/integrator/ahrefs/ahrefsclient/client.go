package ahrefsclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	ahrefsdomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/ahrefs/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetDomainRating(ctx context.Context, target string, date string) (*ahrefsdomain.DomainRatingResponse, error)
	GetBacklinksStats(ctx context.Context, target string, date string) (*ahrefsdomain.BacklinksStatsResponse, error)
}

type AhrefsClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AhrefsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// get executa um GET autenticado em resource e decodifica o corpo em out
func (c *AhrefsClient) get(ctx context.Context, resource string, query url.Values, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Ahrefs.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Ahrefs.Token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ahrefsdomain.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("requisição falhou com status: %s: %s", resp.Status, errResp.Error)
		}
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
