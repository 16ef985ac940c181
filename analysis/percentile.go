package analysis

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-analyzer/poker"
)

// PercentileResult classifies sampled opponent holdings against the hero on a fixed board.
type PercentileResult struct {
	Better  uint32 // opponent strictly stronger
	Equal   uint32
	Worse   uint32 // opponent strictly weaker
	Samples uint32
}

// Percentile returns the fraction of holdings the hero beats, with ties counted half.
func (p PercentileResult) Percentile() float64 {
	if p.Samples == 0 {
		return 0.0
	}
	return (float64(p.Worse) + float64(p.Equal)*0.5) / float64(p.Samples)
}

// EstimatePercentile samples random two-card opponent holdings on a fixed
// board, on a single goroutine. The board is not run out; the board must
// already hold 3-5 cards so both hands can be evaluated.
func EstimatePercentile(ctx context.Context, rng *rand.Rand, hole, board poker.Hand, samples int) (PercentileResult, error) {
	return Simulator{Workers: 1}.Percentile(ctx, rng, hole, board, samples)
}

func percentileSamples(hole, board poker.Hand) (trialFunc, error) {
	hero, err := poker.Evaluate(hole | board)
	if err != nil {
		return nil, err
	}
	used := hole | board

	return func(rng *rand.Rand, n int) (tally, error) {
		var t tally
		for range n {
			opponent, err := poker.DealN(rng, used, 2)
			if err != nil {
				return tally{}, err
			}
			villain, err := poker.Evaluate(opponent | board)
			if err != nil {
				return tally{}, err
			}
			t.record(hero.Compare(villain))
		}
		return t, nil
	}, nil
}

func validateFixedBoard(hole, board poker.Hand) error {
	if err := validateDeal(hole, board); err != nil {
		return err
	}
	if board.CountCards() < 3 {
		return fmt.Errorf("%w: percentile needs a flop, turn or river board", ErrInvalidInput)
	}
	return nil
}
