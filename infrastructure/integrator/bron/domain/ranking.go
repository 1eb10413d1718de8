package brondomain

import "fmt"

// KeywordsResponse é a resposta de GET /keywords?domain=
type KeywordsResponse struct {
	Domain   string    `json:"domain"`
	Keywords []Keyword `json:"keywords"`
}

type Keyword struct {
	Keyword          string `json:"keyword"`
	Position         *int   `json:"position"`
	PreviousPosition *int   `json:"previous_position"`
	URL              string `json:"url"`
	SearchVolume     *int64 `json:"search_volume"`
}

// SummaryResponse é a resposta de GET /domains/{domain}/summary
type SummaryResponse struct {
	Domain          string   `json:"domain"`
	TrackedKeywords int      `json:"tracked_keywords"`
	AveragePosition *float64 `json:"average_position"`
	Visibility      *float64 `json:"visibility"`
	Top3            int      `json:"top_3"`
	Top10           int      `json:"top_10"`
}

// DefaultRetryAfterSeconds é usado quando a resposta 429 não traz Retry-After
const DefaultRetryAfterSeconds = 60

// RateLimitedError indica que a API respondeu 429
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("limite de requisições atingido, tente novamente em %d segundos", e.RetryAfter)
}
