package dataforseodomain

import "fmt"

// StatusOK é o status_code de sucesso retornado pela DataForSEO no envelope e em cada tarefa
const StatusOK = 20000

// Envelope é o formato comum das respostas da API v3
type Envelope[T any] struct {
	StatusCode    int       `json:"status_code"`
	StatusMessage string    `json:"status_message"`
	TasksCount    int       `json:"tasks_count"`
	TasksError    int       `json:"tasks_error"`
	Tasks         []Task[T] `json:"tasks"`
}

type Task[T any] struct {
	ID            string `json:"id"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Result        []T    `json:"result"`
}

// FirstResult valida o envelope e a primeira tarefa e devolve o primeiro resultado
func (e *Envelope[T]) FirstResult() (*T, error) {
	if e.StatusCode != StatusOK {
		return nil, &APIError{StatusCode: e.StatusCode, StatusMessage: e.StatusMessage}
	}

	if len(e.Tasks) == 0 {
		return nil, &APIError{StatusCode: e.StatusCode, StatusMessage: "resposta sem tarefas"}
	}

	task := e.Tasks[0]
	if task.StatusCode != StatusOK {
		return nil, &APIError{StatusCode: task.StatusCode, StatusMessage: task.StatusMessage}
	}

	if len(task.Result) == 0 {
		return nil, &APIError{StatusCode: task.StatusCode, StatusMessage: "tarefa sem resultado"}
	}

	return &task.Result[0], nil
}

// APIError é um status_code diferente de 20000
type APIError struct {
	StatusCode    int
	StatusMessage string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("dataforseo status %d: %s", e.StatusCode, e.StatusMessage)
}

// TaskRequest é o corpo de uma tarefa enviada aos endpoints live
type TaskRequest struct {
	Target            string `json:"target"`
	LocationCode      int    `json:"location_code,omitempty"`
	LanguageCode      string `json:"language_code,omitempty"`
	IncludeSubdomains *bool  `json:"include_subdomains,omitempty"`
}
