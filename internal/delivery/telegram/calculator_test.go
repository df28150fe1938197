package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStopLossInput(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantCapital float64
		wantLoss    float64
		wantOk      bool
	}{
		{
			name:        "two lines",
			text:        "20\n3",
			wantCapital: 20,
			wantLoss:    3,
			wantOk:      true,
		},
		{
			name:        "blank lines and whitespace skipped",
			text:        "\n  1000  \n\n  25 \n",
			wantCapital: 1000,
			wantLoss:    25,
			wantOk:      true,
		},
		{
			name:        "decimal values",
			text:        "150.5\n7.25",
			wantCapital: 150.5,
			wantLoss:    7.25,
			wantOk:      true,
		},
		{
			name:   "single line",
			text:   "20",
			wantOk: false,
		},
		{
			name:   "non numeric",
			text:   "abc\n3",
			wantOk: false,
		},
		{
			name:   "empty",
			text:   "",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capital, loss, ok := ParseStopLossInput(tt.text)
			assert.Equal(t, tt.wantOk, ok)
			if !tt.wantOk {
				return
			}
			assert.Equal(t, tt.wantCapital, capital)
			assert.Equal(t, tt.wantLoss, loss)
		})
	}
}

func TestParseCapitalPercentPayload(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantPercent  float64
		wantLeverage float64
		wantErr      bool
	}{
		{
			name:         "percent and leverage",
			payload:      "2:10",
			wantPercent:  2,
			wantLeverage: 10,
		},
		{
			name:         "decimal leverage",
			payload:      "5:2.5",
			wantPercent:  5,
			wantLeverage: 2.5,
		},
		{
			name:    "missing leverage",
			payload: "2",
			wantErr: true,
		},
		{
			name:    "too many parts",
			payload: "2:10:1",
			wantErr: true,
		},
		{
			name:    "non numeric percent",
			payload: "abc:10",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, leverage, err := ParseCapitalPercentPayload(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantLeverage, leverage)
		})
	}
}
