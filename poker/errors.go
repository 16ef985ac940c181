package poker

import "errors"

var (
	// ErrInvalidCard is returned for an out-of-range rank, unknown suit, or bad index.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidHandSize is returned when a hand to evaluate has fewer than 5 or more than 7 cards.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrDeckExhausted is returned when every card is already excluded from a draw.
	ErrDeckExhausted = errors.New("deck exhausted")
)
