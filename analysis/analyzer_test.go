package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-analyzer/classification"
	"github.com/lox/holdem-analyzer/internal/randutil"
	"github.com/lox/holdem-analyzer/poker"
)

func TestAnalyzerFlop(t *testing.T) {
	mockClock := quartz.NewMock(t)
	analyzer := NewAnalyzer(WithTrials(1000), WithSamples(500), WithWorkers(2), WithClock(mockClock))

	start := mockClock.Now()
	report, err := analyzer.Analyze(context.Background(), randutil.New(1),
		poker.MustParseHand("As Ks"), poker.MustParseHand("Qs Js Ts"))
	require.NoError(t, err)

	assert.Equal(t, Flop, report.Street)
	assert.True(t, report.HasPercentile())
	assert.Equal(t, poker.StraightFlush, report.Strength.Category)
	assert.Equal(t, poker.Ace, report.Strength.High())
	assert.Equal(t, 1.0, report.Equity.Equity())
	assert.Equal(t, 1.0, report.Percentile.Percentile())
	assert.Equal(t, BetAggressively, report.Recommendation)
	assert.Equal(t, classification.VeryWet, report.Texture)

	require.Len(t, report.Threats, 2)
	assert.Equal(t, classification.FlushThreat, report.Threats[0].Kind)
	assert.Equal(t, classification.StraightThreat, report.Threats[1].Kind)

	assert.Equal(t, start, report.Started)
	assert.Equal(t, time.Duration(0), report.Elapsed)
}

func TestAnalyzerPreflop(t *testing.T) {
	analyzer := NewAnalyzer(WithTrials(2000), WithClock(quartz.NewMock(t)))

	report, err := analyzer.Analyze(context.Background(), randutil.New(3), poker.MustParseHand("Ah Ad"), 0)
	require.NoError(t, err)

	assert.Equal(t, PreFlop, report.Street)
	assert.False(t, report.HasPercentile())
	assert.Equal(t, poker.CategoryPremium, report.HoleCategory)
	assert.Empty(t, report.Threats)
	assert.Zero(t, report.Percentile.Samples)
	assert.Greater(t, report.Equity.Equity(), 0.75)
	assert.Equal(t, BetAggressively, report.Recommendation)
}

func TestAnalyzerElapsedUsesClock(t *testing.T) {
	mockClock := quartz.NewMock(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	trap := mockClock.Trap().Since()
	defer trap.Close()

	analyzer := NewAnalyzer(WithTrials(200), WithSamples(100), WithClock(mockClock))

	done := make(chan Report, 1)
	go func() {
		report, err := analyzer.Analyze(ctx, randutil.New(4),
			poker.MustParseHand("7c 7d"), poker.MustParseHand("7h Kd 2s 9c"))
		assert.NoError(t, err)
		done <- report
	}()

	call := trap.MustWait(ctx)
	mockClock.Advance(250 * time.Millisecond).MustWait(ctx)
	call.MustRelease(ctx)

	report := <-done
	assert.Equal(t, Turn, report.Street)
	assert.Equal(t, 250*time.Millisecond, report.Elapsed)
}

func TestAnalyzerInvalidInput(t *testing.T) {
	analyzer := NewAnalyzer(WithTrials(100))

	_, err := analyzer.Analyze(context.Background(), randutil.New(1),
		poker.MustParseHand("As"), poker.MustParseHand("Qs Js Ts"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = analyzer.Analyze(context.Background(), randutil.New(1),
		poker.MustParseHand("As Ks"), poker.MustParseHand("Qs Js"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAnalyzer().Analyze(ctx, randutil.New(1), poker.MustParseHand("As Ks"), 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreetOf(t *testing.T) {
	tests := []struct {
		board string
		want  Street
		name  string
	}{
		{"", PreFlop, "pre-flop"},
		{"2c 3d 4h", Flop, "flop"},
		{"2c 3d 4h 5s", Turn, "turn"},
		{"2c 3d 4h 5s 6c", River, "river"},
	}

	for _, tt := range tests {
		got, err := StreetOf(poker.MustParseHand(tt.board))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.name, got.String())
	}

	_, err := StreetOf(poker.MustParseHand("2c"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
