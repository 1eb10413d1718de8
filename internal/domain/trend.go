package domain

import (
	"math"
	"time"

	"github.com/vfg2006/seo-audit-api/pkg/utils"
)

// MetricTrend é a variação de uma métrica entre o primeiro e o último ponto do histórico
type MetricTrend struct {
	Metric        string   `json:"metric"`
	First         *float64 `json:"first"`
	Last          *float64 `json:"last"`
	Delta         *float64 `json:"delta"`
	PercentChange *float64 `json:"percent_change"`
}

type AuditTrend struct {
	Domain    string        `json:"domain"`
	Slug      string        `json:"slug"`
	Snapshots int           `json:"snapshots"`
	From      *time.Time    `json:"from"`
	To        *time.Time    `json:"to"`
	Metrics   []MetricTrend `json:"metrics"`
}

// metricValues retorna as métricas na ordem em que aparecem na tendência
func metricValues(m AuditMetrics) []struct {
	name  string
	value *float64
} {
	return []struct {
		name  string
		value *float64
	}{
		{"domain_rating", m.DomainRating},
		{"organic_traffic", int64PtrToFloat(m.OrganicTraffic)},
		{"organic_keywords", int64PtrToFloat(m.OrganicKeywords)},
		{"backlinks", int64PtrToFloat(m.Backlinks)},
		{"referring_domains", int64PtrToFloat(m.ReferringDomains)},
		{"traffic_value", m.TrafficValue},
		{"rank_score", m.RankScore},
	}
}

// BuildTrend calcula a tendência de cada métrica entre o primeiro e o último ponto do intervalo.
// O percentual é nulo quando o primeiro valor é nulo ou zero.
func BuildTrend(audit *Audit, bounds HistoryBounds) *AuditTrend {
	trend := &AuditTrend{
		Domain:    audit.Domain,
		Slug:      audit.Slug,
		Snapshots: bounds.Count,
		Metrics:   make([]MetricTrend, 0, 7),
	}

	if bounds.First == nil || bounds.Last == nil {
		for _, mv := range metricValues(audit.AuditMetrics) {
			trend.Metrics = append(trend.Metrics, MetricTrend{Metric: mv.name, Last: mv.value})
		}
		return trend
	}

	first := bounds.First
	last := bounds.Last
	trend.From = &first.SnapshotAt
	trend.To = &last.SnapshotAt

	firstValues := metricValues(first.AuditMetrics)
	lastValues := metricValues(last.AuditMetrics)

	for i := range firstValues {
		mt := MetricTrend{
			Metric: firstValues[i].name,
			First:  firstValues[i].value,
			Last:   lastValues[i].value,
		}

		if mt.First != nil && mt.Last != nil {
			delta := utils.RoundWithTwoDecimalPlace(*mt.Last - *mt.First)
			mt.Delta = &delta

			if *mt.First != 0 {
				pct := utils.RoundWithTwoDecimalPlace((*mt.Last - *mt.First) / math.Abs(*mt.First) * 100)
				mt.PercentChange = &pct
			}
		}

		trend.Metrics = append(trend.Metrics, mt)
	}

	return trend
}

func int64PtrToFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
