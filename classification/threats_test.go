package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-analyzer/poker"
)

func kinds(threats []Threat) []ThreatKind {
	out := make([]ThreatKind, len(threats))
	for i, t := range threats {
		out[i] = t.Kind
	}
	return out
}

func TestAnalyzeThreatsRoyalFlush(t *testing.T) {
	threats, err := AnalyzeThreats(poker.MustParseHand("As Ks"), poker.MustParseHand("Qs Js Ts"))
	require.NoError(t, err)

	require.Equal(t, []ThreatKind{FlushThreat, StraightThreat}, kinds(threats))
	assert.Equal(t, 3, threats[0].Count)
	assert.Equal(t, []string{
		"Possible flush (board has 3 of the same suit)",
		"Possible straight (connected board)",
	}, Strings(threats))
}

func TestAnalyzeThreatsPairedBoard(t *testing.T) {
	threats, err := AnalyzeThreats(poker.MustParseHand("2c 7d"), poker.MustParseHand("Kh Kd 9s"))
	require.NoError(t, err)

	require.NotEmpty(t, threats)
	assert.Equal(t, PairedBoardThreat, threats[0].Kind)

	better := threats[1:]
	require.Len(t, better, int(poker.StraightFlush-poker.Pair))
	for i, th := range better {
		assert.Equal(t, BetterHandThreat, th.Kind)
		assert.Equal(t, poker.Pair+1+poker.HandType(i), th.Category)
	}
	assert.Equal(t, "Any two pair will beat you", better[0].String())
	assert.Equal(t, "Any straight flush will beat you", better[len(better)-1].String())
}

func TestAnalyzeThreatsTripsBoard(t *testing.T) {
	// A single distinct rank never counts as connected.
	threats, err := AnalyzeThreats(poker.MustParseHand("2c 3c"), poker.MustParseHand("Kh Kd Ks"))
	require.NoError(t, err)

	assert.Equal(t, []ThreatKind{
		TripsBoardThreat,
		BetterHandThreat, BetterHandThreat, BetterHandThreat, BetterHandThreat, BetterHandThreat,
	}, kinds(threats))
	assert.Equal(t, poker.Straight, threats[1].Category)
}

func TestAnalyzeThreatsTwoPairOnBoard(t *testing.T) {
	threats, err := AnalyzeThreats(poker.MustParseHand("Ac Qd"), poker.MustParseHand("9h 9d 4s 4c"))
	require.NoError(t, err)

	assert.Equal(t, PairedBoardThreat, threats[0].Kind)
	assert.Equal(t, BetterHandThreat, threats[1].Kind)
	assert.Equal(t, poker.ThreeOfAKind, threats[1].Category)
}

func TestThreatsForStraightHeuristic(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  bool
	}{
		{"connected", "9h 8s 7c", true},
		{"one gap of two", "9h 7s 5c", true},
		{"gap of three", "9h 6s 5c", false},
		{"low board under five", "2h 3s 4c", false},
		{"wheel ranks", "2h 3s 5c", true},
		{"single rank", "7h 7s 7c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threats := ThreatsFor(poker.MustParseHand(tt.board), poker.StraightFlush)
			assert.Equal(t, tt.want, containsKind(threats, StraightThreat))
		})
	}
}

func TestThreatsForStraightFlushHeroHasNoBetterHands(t *testing.T) {
	threats := ThreatsFor(poker.MustParseHand("Ah 7d 2c"), poker.StraightFlush)
	assert.Empty(t, threats)
}

func TestAnalyzeThreatsInvalidSize(t *testing.T) {
	_, err := AnalyzeThreats(poker.MustParseHand("As Ks"), poker.MustParseHand("Qs"))
	assert.ErrorIs(t, err, poker.ErrInvalidHandSize)
}

func TestThreatKindString(t *testing.T) {
	assert.Equal(t, "flush", FlushThreat.String())
	assert.Equal(t, "better-hand", BetterHandThreat.String())
	assert.Equal(t, "unknown", ThreatKind(42).String())
}

func containsKind(threats []Threat, kind ThreatKind) bool {
	for _, t := range threats {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
