package domain

import "time"

type SnapshotSource string

const (
	// SnapshotSourceManual é usado quando um único domínio é atualizado sob demanda
	SnapshotSourceManual SnapshotSource = "manual"
	// SnapshotSourceAuto é usado pela atualização em lote agendada
	SnapshotSourceAuto SnapshotSource = "auto"
)

func (s SnapshotSource) IsValid() bool {
	return s == SnapshotSourceManual || s == SnapshotSourceAuto
}

// AuditHistorySnapshot é uma cópia pontual das métricas de uma auditoria (tabela audit_history).
// Registros são apenas inseridos, nunca alterados ou removidos.
type AuditHistorySnapshot struct {
	ID      int64   `json:"id"`
	AuditID *string `json:"audit_id"`
	Domain  string  `json:"domain"`
	AuditMetrics
	Source     SnapshotSource `json:"source"`
	SnapshotAt time.Time      `json:"snapshot_at"`
}

// NewSnapshotFromAudit cria o ponto de histórico a partir do estado atual da auditoria
func NewSnapshotFromAudit(auditID string, audit *Audit, source SnapshotSource) *AuditHistorySnapshot {
	snapshot := &AuditHistorySnapshot{
		Domain:       audit.Domain,
		AuditMetrics: audit.AuditMetrics,
		Source:       source,
	}

	if auditID != "" {
		snapshot.AuditID = &auditID
	}

	return snapshot
}

// HistoryBounds são as pontas do histórico dentro de um intervalo, usadas para a tendência
type HistoryBounds struct {
	First *AuditHistorySnapshot
	Last  *AuditHistorySnapshot
	Count int
}

type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

const (
	DefaultHistoryLimit = 365
	MaxHistoryLimit     = 1000
)

func (f HistoryFilter) NormalizedLimit() int {
	if f.Limit <= 0 {
		return DefaultHistoryLimit
	}
	if f.Limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return f.Limit
}
