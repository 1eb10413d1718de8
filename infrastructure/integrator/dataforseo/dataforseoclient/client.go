package dataforseoclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	dataforseodomain "github.com/vfg2006/seo-audit-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/seo-audit-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RankOverviewResponse = dataforseodomain.Envelope[dataforseodomain.RankOverviewResult]
type BacklinksSummaryResponse = dataforseodomain.Envelope[dataforseodomain.BacklinksSummaryResult]

type Client interface {
	GetDomainRankOverview(ctx context.Context, target string) (*RankOverviewResponse, error)
	GetBacklinksSummary(ctx context.Context, target string) (*BacklinksSummaryResponse, error)
}

type DataForSEOClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &DataForSEOClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// post envia as tarefas em resource com autenticação Basic e decodifica o envelope em out
func (c *DataForSEOClient) post(ctx context.Context, resource string, tasks []dataforseodomain.TaskRequest, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.DataForSEO.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	body, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("erro ao serializar as tarefas: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.SetBasicAuth(c.config.DataForSEO.Login, c.config.DataForSEO.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
