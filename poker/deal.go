package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// DealRandom draws one card uniformly from the cards not in excluded,
// redrawing on collision. The expected number of draws is 52/(52-|excluded|).
func DealRandom(rng *rand.Rand, excluded Hand) (Card, error) {
	excluded &= FullDeck
	if excluded == FullDeck {
		return 0, ErrDeckExhausted
	}
	for {
		card := Card(1) << rng.IntN(DeckSize)
		if !excluded.HasCard(card) {
			return card, nil
		}
	}
}

// DealN draws n distinct cards, none of them in excluded.
func DealN(rng *rand.Rand, excluded Hand, n int) (Hand, error) {
	if free := DeckSize - (excluded & FullDeck).CountCards(); n > free {
		return 0, fmt.Errorf("%w: need %d cards, %d remain", ErrDeckExhausted, n, free)
	}
	var dealt Hand
	for range n {
		card, err := DealRandom(rng, excluded|dealt)
		if err != nil {
			return 0, err
		}
		dealt.AddCard(card)
	}
	return dealt, nil
}

// Remaining returns every card not in excluded.
func Remaining(excluded Hand) Hand {
	return FullDeck &^ excluded
}
