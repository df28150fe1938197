package telegram

import (
	"testing"
	"trading-signal-bot/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestParseSignalArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    dto.Signal
		wantErr bool
	}{
		{
			name: "valid args",
			args: []string{"50000", "49500", "52000", "10"},
			want: dto.Signal{Entry: 50000, StopLoss: 49500, TakeProfit: 52000, Leverage: 10},
		},
		{
			name: "decimal values",
			args: []string{"0.065", "0.060", "0.075", "20"},
			want: dto.Signal{Entry: 0.065, StopLoss: 0.060, TakeProfit: 0.075, Leverage: 20},
		},
		{
			name:    "non numeric entry",
			args:    []string{"abc", "49500", "52000", "10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSignalArgs(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
