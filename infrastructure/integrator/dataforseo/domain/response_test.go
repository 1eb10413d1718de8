package dataforseodomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_FirstResult(t *testing.T) {
	tests := []struct {
		name        string
		envelope    Envelope[BacklinksSummaryResult]
		expectedErr int
	}{
		{
			name:        "Envelope com erro",
			envelope:    Envelope[BacklinksSummaryResult]{StatusCode: 40100, StatusMessage: "You are not authorized"},
			expectedErr: 40100,
		},
		{
			name:        "Sem tarefas",
			envelope:    Envelope[BacklinksSummaryResult]{StatusCode: StatusOK},
			expectedErr: StatusOK,
		},
		{
			name: "Tarefa com erro",
			envelope: Envelope[BacklinksSummaryResult]{
				StatusCode: StatusOK,
				Tasks:      []Task[BacklinksSummaryResult]{{StatusCode: 40501, StatusMessage: "Invalid Field"}},
			},
			expectedErr: 40501,
		},
		{
			name: "Tarefa sem resultado",
			envelope: Envelope[BacklinksSummaryResult]{
				StatusCode: StatusOK,
				Tasks:      []Task[BacklinksSummaryResult]{{StatusCode: StatusOK}},
			},
			expectedErr: StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.envelope.FirstResult()

			assert.Nil(t, result)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedErr, apiErr.StatusCode)
		})
	}

	t.Run("Sucesso", func(t *testing.T) {
		envelope := Envelope[BacklinksSummaryResult]{
			StatusCode: StatusOK,
			Tasks: []Task[BacklinksSummaryResult]{{
				StatusCode: StatusOK,
				Result:     []BacklinksSummaryResult{{Target: "example.com", Rank: 300}},
			}},
		}

		result, err := envelope.FirstResult()

		require.NoError(t, err)
		assert.Equal(t, 300.0, result.Rank)
	})
}
