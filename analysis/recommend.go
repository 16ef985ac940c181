package analysis

// Recommendation is the suggested line of play for a hand.
type Recommendation int

const (
	Fold Recommendation = iota
	CheckOrFold
	CallOrModerateBet
	BetAggressively
)

func (r Recommendation) String() string {
	switch r {
	case BetAggressively:
		return "Very strong hand in this position. Consider raising or betting aggressively."
	case CallOrModerateBet:
		return "Reasonably strong hand in this position. Call or make a moderate bet."
	case CheckOrFold:
		return "Weak hand in this position. Consider checking or folding to aggression."
	case Fold:
		return "Very weak hand in this position. Folding is advised."
	default:
		return "unknown"
	}
}

// Recommend maps equity and percentile onto a line of play.
func Recommend(equity, percentile float64) Recommendation {
	switch {
	case equity > 0.65 && percentile > 0.75:
		return BetAggressively
	case equity > 0.50 && percentile > 0.60:
		return CallOrModerateBet
	case equity > 0.35:
		return CheckOrFold
	default:
		return Fold
	}
}

// Interpret gives a one-line reading of an equity figure.
func Interpret(equity float64) string {
	switch {
	case equity > 0.65:
		return "Strong hand. Bet or raise."
	case equity > 0.50:
		return "Decent hand. Play cautiously."
	case equity > 0.35:
		return "Weak hand. Consider pot odds."
	default:
		return "Very weak. Usually fold."
	}
}
