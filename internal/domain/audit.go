// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// AuditMetrics é o conjunto de métricas de SEO de um domínio. Cada campo é nulo
// quando a fonte correspondente falhou ou não retornou dados.
type AuditMetrics struct {
	DomainRating     *float64 `json:"domain_rating"`
	OrganicTraffic   *int64   `json:"organic_traffic"`
	OrganicKeywords  *int64   `json:"organic_keywords"`
	Backlinks        *int64   `json:"backlinks"`
	ReferringDomains *int64   `json:"referring_domains"`
	TrafficValue     *float64 `json:"traffic_value"`
	RankScore        *float64 `json:"rank_score"`
}

// IsEmpty indica se nenhuma métrica foi preenchida
func (m AuditMetrics) IsEmpty() bool {
	return m.DomainRating == nil &&
		m.OrganicTraffic == nil &&
		m.OrganicKeywords == nil &&
		m.Backlinks == nil &&
		m.ReferringDomains == nil &&
		m.TrafficValue == nil &&
		m.RankScore == nil
}

// Audit representa o estado atual das métricas de um domínio (tabela saved_audits)
type Audit struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
	Slug   string `json:"slug"`
	AuditMetrics
	Category       *string   `json:"category"`
	SubmitterEmail *string   `json:"submitter_email"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsClaimed indica se a auditoria já foi reivindicada por um e-mail
func (a *Audit) IsClaimed() bool {
	return a.SubmitterEmail != nil && *a.SubmitterEmail != ""
}

// IsStale indica se a auditoria está desatualizada em relação ao limite informado
func (a *Audit) IsStale(now time.Time, staleAfter time.Duration) bool {
	return a.UpdatedAt.Before(now.Add(-staleAfter))
}

type AuditFilter struct {
	Category *string
	Limit    int
}

const (
	DefaultAuditListLimit = 50
	MaxAuditListLimit     = 200
)

// NormalizedLimit aplica o limite padrão e o máximo permitido
func (f AuditFilter) NormalizedLimit() int {
	if f.Limit <= 0 {
		return DefaultAuditListLimit
	}
	if f.Limit > MaxAuditListLimit {
		return MaxAuditListLimit
	}
	return f.Limit
}
