package poker

import (
	"fmt"
	"strings"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumHandTypes is the number of hand categories.
const NumHandTypes = int(StraightFlush) + 1

var handTypeNames = [NumHandTypes]string{
	"High Card",
	"Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

// String returns a human-readable category name.
func (t HandType) String() string {
	if int(t) >= NumHandTypes {
		return "Unknown"
	}
	return handTypeNames[t]
}

// Lower returns the category name in lower case, as used in prose ("any flush").
func (t HandType) Lower() string {
	return strings.ToLower(t.String())
}

// tiebreakLen is the arity of the tiebreak tuple for each category.
var tiebreakLen = [NumHandTypes]uint8{
	HighCard:      5,
	Pair:          4,
	TwoPair:       3,
	ThreeOfAKind:  3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
}

// HandStrength is the comparable value of an evaluated hand: a category plus
// the ranks that break ties within it, most significant first. Unused
// tiebreak slots are zero, so two strengths are equal exactly when == holds.
type HandStrength struct {
	Category HandType
	Tiebreak [5]uint8
}

func newStrength(category HandType, ranks ...uint8) HandStrength {
	s := HandStrength{Category: category}
	copy(s.Tiebreak[:], ranks)
	return s
}

// Ranks returns the meaningful part of the tiebreak tuple.
func (s HandStrength) Ranks() []uint8 {
	n := tiebreakLen[HighCard]
	if int(s.Category) < NumHandTypes {
		n = tiebreakLen[s.Category]
	}
	return s.Tiebreak[:n]
}

// High returns the most significant tiebreak rank: the straight's top card,
// the quad, trip or pair rank, or the highest card.
func (s HandStrength) High() uint8 {
	return s.Tiebreak[0]
}

// Compare returns 1 if s beats other, -1 if other beats s, 0 for a tie.
func (s HandStrength) Compare(other HandStrength) int {
	switch {
	case s.Category > other.Category:
		return 1
	case s.Category < other.Category:
		return -1
	}
	for i := range s.Tiebreak {
		switch {
		case s.Tiebreak[i] > other.Tiebreak[i]:
			return 1
		case s.Tiebreak[i] < other.Tiebreak[i]:
			return -1
		}
	}
	return 0
}

// Beats reports whether s is strictly stronger than other.
func (s HandStrength) Beats(other HandStrength) bool {
	return s.Compare(other) > 0
}

// String describes the hand, e.g. "Straight (5 high)" or "Two Pair (K Q, 9 kicker)".
func (s HandStrength) String() string {
	r := s.Tiebreak
	switch s.Category {
	case StraightFlush, Straight:
		return fmt.Sprintf("%s (%s high)", s.Category, RankName(r[0]))
	case FourOfAKind:
		return fmt.Sprintf("%s (%s, %s kicker)", s.Category, RankName(r[0]), RankName(r[1]))
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", s.Category, RankName(r[0]), RankName(r[1]))
	case ThreeOfAKind:
		return fmt.Sprintf("%s (%s, %s)", s.Category, RankName(r[0]), joinRanks(r[1:3]))
	case TwoPair:
		return fmt.Sprintf("%s (%s %s, %s kicker)", s.Category, RankName(r[0]), RankName(r[1]), RankName(r[2]))
	case Pair:
		return fmt.Sprintf("%s (%s, %s)", s.Category, RankName(r[0]), joinRanks(r[1:4]))
	default:
		return fmt.Sprintf("%s (%s)", s.Category, joinRanks(s.Ranks()))
	}
}

func joinRanks(ranks []uint8) string {
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = RankName(r)
	}
	return strings.Join(parts, " ")
}
