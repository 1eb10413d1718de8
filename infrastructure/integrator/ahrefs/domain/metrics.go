package ahrefsdomain

// DomainRatingResponse é a resposta de /site-explorer/domain-rating
type DomainRatingResponse struct {
	DomainRating DomainRating `json:"domain_rating"`
}

type DomainRating struct {
	DomainRating float64 `json:"domain_rating"`
	AhrefsRank   *int64  `json:"ahrefs_rank"`
}

// BacklinksStatsResponse é a resposta de /site-explorer/backlinks-stats
type BacklinksStatsResponse struct {
	Metrics BacklinksStats `json:"metrics"`
}

type BacklinksStats struct {
	Live              int64 `json:"live"`
	AllTime           int64 `json:"all_time"`
	LiveRefdomains    int64 `json:"live_refdomains"`
	AllTimeRefdomains int64 `json:"all_time_refdomains"`
}

// ErrorResponse representa a estrutura de erro da API do Ahrefs
type ErrorResponse struct {
	Error string `json:"error"`
}
