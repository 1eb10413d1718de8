package domain

// KeywordRanking é a posição de uma palavra-chave rastreada para o domínio
type KeywordRanking struct {
	Keyword          string `json:"keyword"`
	Position         *int   `json:"position"`
	PreviousPosition *int   `json:"previous_position"`
	PositionChange   *int   `json:"position_change"` // Valor positivo = subiu, negativo = desceu
	URL              string `json:"url,omitempty"`
	SearchVolume     *int64 `json:"search_volume"`
}

type KeywordRankingsResponse struct {
	Domain   string           `json:"domain"`
	Keywords []KeywordRanking `json:"keywords"`
}

type RankSummary struct {
	Domain          string   `json:"domain"`
	TrackedKeywords int      `json:"tracked_keywords"`
	AveragePosition *float64 `json:"average_position"`
	Visibility      *float64 `json:"visibility"`
	Top3            int      `json:"top_3"`
	Top10           int      `json:"top_10"`
}

// RateLimitedResponse é a resposta "suave" devolvida quando o provedor retorna 429
type RateLimitedResponse struct {
	RateLimited bool   `json:"rate_limited"`
	RetryAfter  int    `json:"retry_after"`
	Message     string `json:"message"`
}
