package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-analyzer/internal/randutil"
	"github.com/lox/holdem-analyzer/poker"
)

func TestSimulateEquity(t *testing.T) {
	tests := []struct {
		name        string
		hole        string
		board       string
		expectedMin float64
		expectedMax float64
	}{
		{"pocket aces vs random", "As Ad", "", 0.78, 0.92},
		{"72o vs random", "7h 2c", "", 0.25, 0.45},
		{"strong draw vs random", "As Ks", "Qs Js 2h", 0.55, 0.85},
		{"weak hand vs random", "2h 3c", "As Kd Qh", 0.05, 0.35},
		{"top set on the turn", "Ah Ac", "Ad 7s 2c 9h", 0.85, 1.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := randutil.New(12345)
			result, err := SimulateEquity(context.Background(), rng,
				poker.MustParseHand(tt.hole), poker.MustParseHand(tt.board), 2000)
			require.NoError(t, err)

			equity := result.Equity()
			if equity < tt.expectedMin || equity > tt.expectedMax {
				t.Errorf("equity %.3f outside expected range [%.3f, %.3f]",
					equity, tt.expectedMin, tt.expectedMax)
			}
		})
	}
}

func TestSimulateEquityRatesSumToOne(t *testing.T) {
	result, err := SimulateEquity(context.Background(), randutil.New(7),
		poker.MustParseHand("Jh Tc"), poker.MustParseHand("9d 8c 2s"), 1500)
	require.NoError(t, err)

	assert.Equal(t, result.Trials, result.Wins+result.Ties+result.Losses)
	assert.InDelta(t, 1.0, result.WinRate()+result.TieRate()+result.LossRate(), 1e-9)
	assert.GreaterOrEqual(t, result.Equity(), 0.0)
	assert.LessOrEqual(t, result.Equity(), 1.0)

	lower, upper := result.ConfidenceInterval()
	assert.LessOrEqual(t, lower, result.Equity())
	assert.GreaterOrEqual(t, upper, result.Equity())
}

func TestSimulateEquityNutsOnRiver(t *testing.T) {
	result, err := SimulateEquity(context.Background(), randutil.New(1),
		poker.MustParseHand("As Ks"), poker.MustParseHand("Qs Js Ts 9h 2c"), 500)
	require.NoError(t, err)

	assert.Equal(t, uint32(500), result.Wins)
	assert.Equal(t, 1.0, result.Equity())
}

func TestSimulateEquityDeterministic(t *testing.T) {
	hole := poker.MustParseHand("Qh Qd")
	board := poker.MustParseHand("Kc 8h 3s")

	first, err := SimulateEquity(context.Background(), randutil.New(99), hole, board, 3000)
	require.NoError(t, err)
	second, err := SimulateEquity(context.Background(), randutil.New(99), hole, board, 3000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulateEquityInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		hole   poker.Hand
		board  poker.Hand
		trials int
	}{
		{"one hole card", poker.MustParseHand("As"), 0, 100},
		{"three hole cards", poker.MustParseHand("As Ks Qs"), 0, 100},
		{"two board cards", poker.MustParseHand("As Ks"), poker.MustParseHand("2c 3c"), 100},
		{"six board cards", poker.MustParseHand("As Ks"), poker.MustParseHand("2c 3c 4c 5c 6c 7c"), 100},
		{"shared card", poker.MustParseHand("As Ks"), poker.MustParseHand("As 3c 4d"), 100},
		{"cards outside deck", poker.MustParseHand("As Ks") | 1<<60, 0, 100},
		{"zero trials", poker.MustParseHand("As Ks"), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SimulateEquity(context.Background(), randutil.New(1), tt.hole, tt.board, tt.trials)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEquityResultZeroTrials(t *testing.T) {
	var result EquityResult
	assert.Equal(t, 0.0, result.Equity())
	assert.Equal(t, 0.0, result.WinRate())

	lower, upper := result.ConfidenceInterval()
	assert.Equal(t, 0.0, lower)
	assert.Equal(t, 0.0, upper)
}

func BenchmarkSimulateEquity(b *testing.B) {
	hole := poker.MustParseHand("As Kd")
	board := poker.MustParseHand("Qh 7c 2s")
	rng := randutil.New(1)

	for i := 0; i < b.N; i++ {
		if _, err := SimulateEquity(context.Background(), rng, hole, board, 1000); err != nil {
			b.Fatal(err)
		}
	}
}
