package game

import "errors"

// Precondition failures. Call sites wrap these with context, so match them with errors.Is.
var (
	// A draw or evaluation needs more cards than are available
	ErrInsufficientCards = errors.New("insufficient cards")
	// A card set holds duplicates, out-of-range identifiers or the wrong number of cards
	ErrInvalidCardSet = errors.New("invalid card set")
	// A search budget or other setting is absent or out of range
	ErrConfiguration = errors.New("invalid configuration")
)
