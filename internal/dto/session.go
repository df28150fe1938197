package dto

// Conversation flow states. One state is active per chat at a time; StateIdle
// means the user is on the main menu.
const (
	StateIdle = iota

	// registration flow
	StateAwaitingPhone
	StateAwaitingNameNationalID
	StateAwaitingPaymentPhoto

	// stop-loss calculator
	StateAwaitingStopLossInput

	// position sizing after a signal
	StateAwaitingCapitalAmount

	// admin broadcast mode
	StateAwaitingBroadcastMessage
)

// SessionData holds the fields captured during a conversation flow. Entry and
// StopLoss are written at signal-dispatch time so the sizing flow never has
// to re-parse a rendered message.
type SessionData struct {
	// registration
	UserID     int64
	Phone      string
	FullName   string
	NationalID string

	// position sizing
	CapitalPercent float64
	Leverage       float64
	Entry          float64
	StopLoss       float64
}
