package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStopLossPercent(t *testing.T) {
	tests := []struct {
		name    string
		capital float64
		loss    float64
		want    float64
		wantErr error
	}{
		{
			name:    "capital 20 loss 3",
			capital: 20,
			loss:    3,
			want:    15,
		},
		{
			name:    "capital 1000 loss 25",
			capital: 1000,
			loss:    25,
			want:    2.5,
		},
		{
			name:    "zero capital",
			capital: 0,
			loss:    3,
			wantErr: ErrNonPositiveCapital,
		},
		{
			name:    "negative capital",
			capital: -10,
			loss:    3,
			wantErr: ErrNonPositiveCapital,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StopLossPercent(tt.capital, tt.loss)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPositionSize(t *testing.T) {
	tests := []struct {
		name     string
		capital  float64
		percent  float64
		leverage float64
		want     float64
	}{
		{
			name:     "capital 1000 at 2 percent with 10x",
			capital:  1000,
			percent:  2,
			leverage: 10,
			want:     200,
		},
		{
			name:     "capital 500 at 5 percent with 1x",
			capital:  500,
			percent:  5,
			leverage: 1,
			want:     25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PositionSize(tt.capital, tt.percent, tt.leverage), 1e-9)
		})
	}
}

func TestLossAmount(t *testing.T) {
	tests := []struct {
		name        string
		tradeAmount float64
		entry       float64
		stopLoss    float64
		want        float64
		wantErr     error
	}{
		{
			name:        "long position",
			tradeAmount: 200,
			entry:       50000,
			stopLoss:    49500,
			want:        2,
		},
		{
			name:        "short position uses absolute distance",
			tradeAmount: 200,
			entry:       50000,
			stopLoss:    50500,
			want:        2,
		},
		{
			name:        "zero entry",
			tradeAmount: 200,
			entry:       0,
			stopLoss:    49500,
			wantErr:     ErrNonPositiveEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LossAmount(tt.tradeAmount, tt.entry, tt.stopLoss)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, DirectionLong, Direction(50000, 49500))
	assert.Equal(t, DirectionShort, Direction(50000, 50500))
	assert.Equal(t, DirectionLong, Direction(50000, 50000))
}

func TestLossPercent(t *testing.T) {
	tests := []struct {
		name     string
		entry    float64
		stopLoss float64
		want     float64
		wantErr  error
	}{
		{
			name:     "long one percent",
			entry:    50000,
			stopLoss: 49500,
			want:     1,
		},
		{
			name:     "short one percent",
			entry:    50000,
			stopLoss: 50500,
			want:     1,
		},
		{
			name:     "zero entry",
			entry:    0,
			stopLoss: 100,
			wantErr:  ErrNonPositiveEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LossPercent(tt.entry, tt.stopLoss)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
