package classification

import (
	"fmt"

	"github.com/lox/holdem-analyzer/poker"
)

// ThreatKind tags an advisory warning about the board.
type ThreatKind int

const (
	FlushThreat ThreatKind = iota
	StraightThreat
	PairedBoardThreat
	TripsBoardThreat
	BetterHandThreat
)

func (k ThreatKind) String() string {
	switch k {
	case FlushThreat:
		return "flush"
	case StraightThreat:
		return "straight"
	case PairedBoardThreat:
		return "paired-board"
	case TripsBoardThreat:
		return "trips-board"
	case BetterHandThreat:
		return "better-hand"
	default:
		return "unknown"
	}
}

// Threat is one advisory warning. Count is the number of same-suit board
// cards for FlushThreat; Category is the stronger hand for BetterHandThreat.
type Threat struct {
	Kind     ThreatKind
	Count    int
	Category poker.HandType
}

func (t Threat) String() string {
	switch t.Kind {
	case FlushThreat:
		return fmt.Sprintf("Possible flush (board has %d of the same suit)", t.Count)
	case StraightThreat:
		return "Possible straight (connected board)"
	case PairedBoardThreat:
		return "Board paired, possible full house or better"
	case TripsBoardThreat:
		return "Board has trips, possible full house or quads"
	case BetterHandThreat:
		return fmt.Sprintf("Any %s will beat you", t.Category.Lower())
	default:
		return "unknown threat"
	}
}

// maxStraightGap is the widest rank gap a board may have and still count as connected.
const maxStraightGap = 2

// AnalyzeThreats evaluates the hero's hand on the board and lists the
// warnings for it. hole|board must hold 5-7 cards.
func AnalyzeThreats(hole, board poker.Hand) ([]Threat, error) {
	hero, err := poker.Evaluate(hole | board)
	if err != nil {
		return nil, err
	}
	return ThreatsFor(board, hero.Category), nil
}

// ThreatsFor lists board warnings in a fixed order: flush, straight, paired
// board, trips on board, then every category above hero, weakest first.
// The straight check is a connectedness heuristic, not a completion count.
func ThreatsFor(board poker.Hand, hero poker.HandType) []Threat {
	var threats []Threat
	sc := scanBoard(board)

	if most := max(sc.suitCounts[0], sc.suitCounts[1], sc.suitCounts[2], sc.suitCounts[3]); most >= 3 {
		threats = append(threats, Threat{Kind: FlushThreat, Count: most})
	}

	if ranks := sc.distinctRanks(); len(ranks) >= 2 && ranks[len(ranks)-1] >= int(poker.Five) {
		maxGap := 0
		for i := 1; i < len(ranks); i++ {
			maxGap = max(maxGap, ranks[i]-ranks[i-1])
		}
		if maxGap <= maxStraightGap {
			threats = append(threats, Threat{Kind: StraightThreat})
		}
	}

	if sc.rankGroups(2) > 0 {
		threats = append(threats, Threat{Kind: PairedBoardThreat})
	}
	if sc.rankGroups(3) > 0 {
		threats = append(threats, Threat{Kind: TripsBoardThreat})
	}

	for category := hero + 1; category <= poker.StraightFlush; category++ {
		threats = append(threats, Threat{Kind: BetterHandThreat, Category: category})
	}

	return threats
}

// Strings renders threats as their descriptions.
func Strings(threats []Threat) []string {
	out := make([]string, len(threats))
	for i, t := range threats {
		out[i] = t.String()
	}
	return out
}
