// Package analysis estimates how a hero's hole cards fare against a random
// opponent: Monte Carlo equity over the remaining board, percentile against
// random holdings on a fixed board, and a combined per-hand report.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/lox/holdem-analyzer/poker"
)

// ErrInvalidInput is returned for hole or board card counts a simulation cannot use.
var ErrInvalidInput = errors.New("invalid input")

// EquityResult represents the result of an equity calculation
type EquityResult struct {
	Wins   uint32
	Ties   uint32
	Losses uint32
	Trials uint32
}

// WinRate returns the win rate as a fraction (0.0 to 1.0)
func (e EquityResult) WinRate() float64 {
	return e.rate(e.Wins)
}

// TieRate returns the tie rate as a fraction (0.0 to 1.0)
func (e EquityResult) TieRate() float64 {
	return e.rate(e.Ties)
}

// LossRate returns the loss rate as a fraction (0.0 to 1.0)
func (e EquityResult) LossRate() float64 {
	return e.rate(e.Losses)
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as 0.5
func (e EquityResult) Equity() float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return (float64(e.Wins) + float64(e.Ties)*0.5) / float64(e.Trials)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	if e.Trials == 0 {
		return 0.0, 0.0
	}
	equity := e.Equity()

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / float64(e.Trials))
	margin := 1.96 * se

	return math.Max(0.0, equity-margin), math.Min(1.0, equity+margin)
}

func (e EquityResult) rate(n uint32) float64 {
	if e.Trials == 0 {
		return 0.0
	}
	return float64(n) / float64(e.Trials)
}

// SimulateEquity runs trials independent deals on a single goroutine. Each
// trial completes the board to five cards, deals the opponent two cards, and
// scores the hero's hand against the opponent's.
func SimulateEquity(ctx context.Context, rng *rand.Rand, hole, board poker.Hand, trials int) (EquityResult, error) {
	return Simulator{Workers: 1}.Equity(ctx, rng, hole, board, trials)
}

func equityTrials(hole, board poker.Hand) trialFunc {
	used := hole | board
	missing := 5 - board.CountCards()

	return func(rng *rand.Rand, n int) (tally, error) {
		var t tally
		for range n {
			runout, err := poker.DealN(rng, used, missing)
			if err != nil {
				return tally{}, err
			}
			final := board | runout

			opponent, err := poker.DealN(rng, used|runout, 2)
			if err != nil {
				return tally{}, err
			}

			hero, err := poker.Evaluate(hole | final)
			if err != nil {
				return tally{}, err
			}
			villain, err := poker.Evaluate(opponent | final)
			if err != nil {
				return tally{}, err
			}
			t.record(hero.Compare(villain))
		}
		return t, nil
	}
}

// validateDeal checks the card counts every simulation needs.
func validateDeal(hole, board poker.Hand) error {
	if (hole|board)&^poker.FullDeck != 0 {
		return fmt.Errorf("%w: cards outside the deck", ErrInvalidInput)
	}
	if n := hole.CountCards(); n != 2 {
		return fmt.Errorf("%w: need 2 hole cards, got %d", ErrInvalidInput, n)
	}
	switch n := board.CountCards(); n {
	case 0, 3, 4, 5:
	default:
		return fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", ErrInvalidInput, n)
	}
	if hole&board != 0 {
		return fmt.Errorf("%w: %s appears in both hole and board", ErrInvalidInput, hole&board)
	}
	return nil
}
