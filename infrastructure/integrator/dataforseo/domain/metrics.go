package dataforseodomain

// RankOverviewResult é o resultado de dataforseo_labs/google/domain_rank_overview/live
type RankOverviewResult struct {
	Target     string             `json:"target"`
	TotalCount int                `json:"total_count"`
	Items      []RankOverviewItem `json:"items"`
}

type RankOverviewItem struct {
	LocationCode int                 `json:"location_code"`
	LanguageCode string              `json:"language_code"`
	Metrics      RankOverviewMetrics `json:"metrics"`
}

type RankOverviewMetrics struct {
	Organic OrganicMetrics `json:"organic"`
	Paid    OrganicMetrics `json:"paid"`
}

type OrganicMetrics struct {
	ETV                      float64 `json:"etv"`
	Count                    int64   `json:"count"`
	EstimatedPaidTrafficCost float64 `json:"estimated_paid_traffic_cost"`
}

// BacklinksSummaryResult é o resultado de backlinks/summary/live
type BacklinksSummaryResult struct {
	Target           string  `json:"target"`
	Rank             float64 `json:"rank"`
	Backlinks        int64   `json:"backlinks"`
	ReferringDomains int64   `json:"referring_domains"`
}
