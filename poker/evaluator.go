package poker

import (
	"fmt"
	"math/bits"
)

const (
	broadwayMask = 0x1F00 // T-J-Q-K-A
	wheelMask    = 0x100F // A-2-3-4-5
	straightRun  = 0x1F

	wheelHigh = Five
)

// Evaluate ranks the best five-card hand contained in a 5-7 card hand.
// It is a pure function and safe for concurrent use.
func Evaluate(hand Hand) (HandStrength, error) {
	if n := hand.CountCards(); n < 5 || n > 7 || hand&^FullDeck != 0 {
		return HandStrength{}, fmt.Errorf("%w: %d cards", ErrInvalidHandSize, n)
	}
	return evaluateUnchecked(hand), nil
}

// MustEvaluate is Evaluate for hands known to be valid; it panics otherwise.
func MustEvaluate(hand Hand) HandStrength {
	s, err := Evaluate(hand)
	if err != nil {
		panic(err)
	}
	return s
}

func evaluateUnchecked(hand Hand) HandStrength {
	sh := newShape(hand)
	for _, r := range resolvers {
		if s, ok := r.resolve(&sh); ok {
			return s
		}
	}
	// resolveHighCard always matches
	panic("poker: no category resolved")
}

// resolver recognises one category. Resolvers run strongest first, so each
// one may assume every stronger category has already been ruled out.
type resolver struct {
	category HandType
	resolve  func(*shape) (HandStrength, bool)
}

var resolvers = [...]resolver{
	{StraightFlush, resolveStraightFlush},
	{FourOfAKind, resolveFourOfAKind},
	{FullHouse, resolveFullHouse},
	{Flush, resolveFlush},
	{Straight, resolveStraight},
	{ThreeOfAKind, resolveThreeOfAKind},
	{TwoPair, resolveTwoPair},
	{Pair, resolvePair},
	{HighCard, resolveHighCard},
}

// ResolutionOrder returns the order in which categories are tested.
func ResolutionOrder() []HandType {
	order := make([]HandType, len(resolvers))
	for i, r := range resolvers {
		order[i] = r.category
	}
	return order
}

// rankList holds ranks in descending order. Seven cards give at most three pairs.
type rankList struct {
	ranks [3]uint8
	n     int
}

func (l *rankList) push(r uint8) {
	if l.n < len(l.ranks) {
		l.ranks[l.n] = r
		l.n++
	}
}

func (l *rankList) empty() bool { return l.n == 0 }

// shape is the per-evaluation scratch: rank counts folded into multiples,
// the present-rank mask and the flush suit, if any.
type shape struct {
	present   uint16
	quads     rankList
	trips     rankList
	pairs     rankList
	flush     bool
	flushMask uint16
}

func newShape(hand Hand) shape {
	var counts [13]uint8
	var sh shape
	for suit := Clubs; suit <= Spades; suit++ {
		mask := hand.GetSuitMask(suit)
		sh.present |= mask
		if !sh.flush && bits.OnesCount16(mask) >= 5 {
			sh.flush = true
			sh.flushMask = mask
		}
		for m := mask; m != 0; m &= m - 1 {
			counts[bits.TrailingZeros16(m)]++
		}
	}
	for r := int(Ace); r >= 0; r-- {
		switch counts[r] {
		case 4:
			sh.quads.push(uint8(r))
		case 3:
			sh.trips.push(uint8(r))
		case 2:
			sh.pairs.push(uint8(r))
		}
	}
	return sh
}

// findStraight returns the high rank of the best straight in a rank mask.
// Broadway is tested first, then every window from king-high down to
// six-high, then the wheel, which counts as five-high.
func findStraight(mask uint16) (uint8, bool) {
	if mask&broadwayMask == broadwayMask {
		return Ace, true
	}
	for high := int(Ace); high >= int(Six); high-- {
		window := uint16(straightRun) << (high - 4)
		if mask&window == window {
			return uint8(high), true
		}
	}
	if mask&wheelMask == wheelMask {
		return wheelHigh, true
	}
	return 0, false
}

// topRanks fills dst with the highest ranks of mask, descending, skipping excluded ranks.
func topRanks(mask, exclude uint16, dst []uint8) []uint8 {
	available := mask &^ exclude
	for i := range dst {
		if available == 0 {
			return dst[:i]
		}
		top := uint8(bits.Len16(available) - 1)
		dst[i] = top
		available &^= 1 << top
	}
	return dst
}

func resolveStraightFlush(sh *shape) (HandStrength, bool) {
	if !sh.flush {
		return HandStrength{}, false
	}
	high, ok := findStraight(sh.flushMask)
	if !ok {
		return HandStrength{}, false
	}
	return newStrength(StraightFlush, high), true
}

func resolveFourOfAKind(sh *shape) (HandStrength, bool) {
	if sh.quads.empty() {
		return HandStrength{}, false
	}
	quad := sh.quads.ranks[0]
	var kicker [1]uint8
	topRanks(sh.present, 1<<quad, kicker[:])
	return newStrength(FourOfAKind, quad, kicker[0]), true
}

func resolveFullHouse(sh *shape) (HandStrength, bool) {
	if sh.trips.empty() {
		return HandStrength{}, false
	}
	trip := sh.trips.ranks[0]
	// A second trip can fill the pair slot; take whichever is higher.
	var pair uint8
	havePair := false
	if !sh.pairs.empty() {
		pair, havePair = sh.pairs.ranks[0], true
	}
	if sh.trips.n > 1 && (!havePair || sh.trips.ranks[1] > pair) {
		pair, havePair = sh.trips.ranks[1], true
	}
	if !havePair {
		return HandStrength{}, false
	}
	return newStrength(FullHouse, trip, pair), true
}

func resolveFlush(sh *shape) (HandStrength, bool) {
	if !sh.flush {
		return HandStrength{}, false
	}
	var ranks [5]uint8
	topRanks(sh.flushMask, 0, ranks[:])
	return newStrength(Flush, ranks[:]...), true
}

func resolveStraight(sh *shape) (HandStrength, bool) {
	high, ok := findStraight(sh.present)
	if !ok {
		return HandStrength{}, false
	}
	return newStrength(Straight, high), true
}

func resolveThreeOfAKind(sh *shape) (HandStrength, bool) {
	if sh.trips.empty() {
		return HandStrength{}, false
	}
	trip := sh.trips.ranks[0]
	var kickers [2]uint8
	topRanks(sh.present, 1<<trip, kickers[:])
	return newStrength(ThreeOfAKind, trip, kickers[0], kickers[1]), true
}

func resolveTwoPair(sh *shape) (HandStrength, bool) {
	if sh.pairs.n < 2 {
		return HandStrength{}, false
	}
	high, low := sh.pairs.ranks[0], sh.pairs.ranks[1]
	var kicker [1]uint8
	topRanks(sh.present, 1<<high|1<<low, kicker[:])
	return newStrength(TwoPair, high, low, kicker[0]), true
}

func resolvePair(sh *shape) (HandStrength, bool) {
	if sh.pairs.empty() {
		return HandStrength{}, false
	}
	pair := sh.pairs.ranks[0]
	var kickers [3]uint8
	topRanks(sh.present, 1<<pair, kickers[:])
	return newStrength(Pair, pair, kickers[0], kickers[1], kickers[2]), true
}

func resolveHighCard(sh *shape) (HandStrength, bool) {
	var ranks [5]uint8
	topRanks(sh.present, 0, ranks[:])
	return newStrength(HighCard, ranks[:]...), true
}
