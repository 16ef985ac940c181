package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHole buckets two hole cards before the flop.
// Premium: JJ+, AK. Strong: TT, AQ, AJ. Medium: 77-99, suited broadway.
// Weak: 22-66, suited cards within two ranks. Trash: everything else.
func CategorizeHole(hole Hand) HoleCardCategory {
	cards := hole.Cards()
	if len(cards) != 2 {
		return CategoryUnknown
	}

	low, high := cards[0].Rank(), cards[1].Rank()
	if low > high {
		low, high = high, low
	}
	suited := cards[0].Suit() == cards[1].Suit()
	paired := low == high

	switch {
	case paired && low >= Jack, low == King && high == Ace:
		return CategoryPremium
	case paired && low == Ten, high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case paired && low >= Seven, suited && low >= Ten:
		return CategoryMedium
	case paired, suited && high-low <= 2:
		return CategoryWeak
	default:
		return CategoryTrash
	}
}
