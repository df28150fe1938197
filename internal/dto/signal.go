package dto

// Signal is a trading recommendation broadcast to verified users.
type Signal struct {
	Entry      float64 `validate:"required,gt=0"`
	StopLoss   float64 `validate:"required,gt=0"`
	TakeProfit float64 `validate:"required,gt=0"`
	Leverage   float64 `validate:"required,gt=0"`
}

// BroadcastReport aggregates the outcome of a fan-out over verified users.
type BroadcastReport struct {
	Success int
	Failed  int
	Total   int
}
