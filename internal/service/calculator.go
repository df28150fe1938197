package service

import (
	"errors"
	"math"
)

var (
	ErrNonPositiveCapital = errors.New("capital must be greater than zero")
	ErrNonPositiveEntry   = errors.New("entry price must be greater than zero")
)

const (
	DirectionLong  = "Long"
	DirectionShort = "Short"
)

// StopLossPercent returns loss relative to capital as a percentage.
func StopLossPercent(capital, loss float64) (float64, error) {
	if capital <= 0 {
		return 0, ErrNonPositiveCapital
	}
	return loss / capital * 100, nil
}

// PositionSize returns the trade amount for the chosen capital percentage and
// leverage.
func PositionSize(capital, percent, leverage float64) float64 {
	return capital * (percent / 100) * leverage
}

// LossAmount returns the dollar loss of a trade amount if price moves from
// entry to stop-loss.
func LossAmount(tradeAmount, entry, stopLoss float64) (float64, error) {
	if entry <= 0 {
		return 0, ErrNonPositiveEntry
	}
	return tradeAmount * math.Abs(entry-stopLoss) / entry, nil
}

// Direction is Short when the stop-loss sits above the entry, otherwise Long.
func Direction(entry, stopLoss float64) string {
	if stopLoss > entry {
		return DirectionShort
	}
	return DirectionLong
}

// LossPercent returns the distance between entry and stop-loss relative to
// entry as a percentage.
func LossPercent(entry, stopLoss float64) (float64, error) {
	if entry <= 0 {
		return 0, ErrNonPositiveEntry
	}
	return math.Abs(stopLoss-entry) / entry * 100, nil
}
