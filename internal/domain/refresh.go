package domain

import "errors"

var (
	ErrUnknownRefreshMode   = errors.New("modo de atualização desconhecido")
	ErrMissingRefreshDomain = errors.New("modo single exige o campo domain")
)

// RefreshResult é o resultado da atualização de um único domínio
type RefreshResult struct {
	Domain          string        `json:"domain"`
	Slug            string        `json:"slug,omitempty"`
	Success         bool          `json:"success"`
	Error           string        `json:"error,omitempty"`
	Metrics         *AuditMetrics `json:"metrics,omitempty"`
	HistoryRecorded bool          `json:"history_recorded"`
}

// RefreshReport é a resposta de uma execução (manual ou em lote)
type RefreshReport struct {
	Success   bool            `json:"success"`
	Processed int             `json:"processed"`
	Results   []RefreshResult `json:"results"`
	RunID     string          `json:"run_id,omitempty"`
}

// Failed retorna quantos domínios falharam na execução
func (r *RefreshReport) Failed() int {
	failed := 0
	for _, result := range r.Results {
		if !result.Success {
			failed++
		}
	}
	return failed
}

type RefreshMode string

const (
	RefreshModeSingle RefreshMode = "single"
	RefreshModeBatch  RefreshMode = "batch"
)

// RefreshRequest é o corpo aceito pelo endpoint de atualização. A ausência de domain
// indica uma execução em lote.
type RefreshRequest struct {
	Domain string      `json:"domain,omitempty"`
	Mode   RefreshMode `json:"mode,omitempty"`
}

// ResolveMode decide o modo da execução
func (r RefreshRequest) ResolveMode() (RefreshMode, error) {
	switch r.Mode {
	case RefreshModeBatch:
		return RefreshModeBatch, nil
	case RefreshModeSingle:
		if r.Domain == "" {
			return RefreshModeSingle, ErrMissingRefreshDomain
		}
		return RefreshModeSingle, nil
	case "":
		if r.Domain == "" {
			return RefreshModeBatch, nil
		}
		return RefreshModeSingle, nil
	default:
		return "", ErrUnknownRefreshMode
	}
}
