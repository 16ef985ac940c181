// Package classification reads the shared board: how coordinated it is and
// which stronger hands it makes possible for an opponent.
package classification

import (
	"math/bits"

	"github.com/lox/holdem-analyzer/poker"
)

// BoardTexture represents the "wetness" of a poker board from dry to very wet
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// FlushInfo contains information about flush potential on a board
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit uint8 // meaningful only when MaxSuitCount > 0
	IsMonotone   bool  // Single suit (3+ cards)
	IsRainbow    bool  // All different suits
}

// StraightInfo contains information about straight potential on a board
type StraightInfo struct {
	ConnectedCards int // Longest run of consecutive ranks, ace playing low or high
	MaxGap         int // Largest rank distance between neighbouring distinct ranks
	HasAce         bool
	BroadwayCards  int // Number of T, J, Q, K, A cards
}

// boardScan is the rank and suit distribution of the board cards.
type boardScan struct {
	cards      int
	suitCounts [4]int
	rankCounts [13]int
	ranks      uint16 // distinct ranks present
}

func scanBoard(board poker.Hand) boardScan {
	sc := boardScan{cards: board.CountCards()}
	for suit := poker.Clubs; suit <= poker.Spades; suit++ {
		mask := board.GetSuitMask(suit)
		sc.suitCounts[suit] = bits.OnesCount16(mask)
		sc.ranks |= mask
		for m := mask; m != 0; m &= m - 1 {
			sc.rankCounts[bits.TrailingZeros16(m)]++
		}
	}
	return sc
}

// distinctRanks lists the board's ranks in ascending order without repeats.
func (sc boardScan) distinctRanks() []int {
	ranks := make([]int, 0, bits.OnesCount16(sc.ranks))
	for m := sc.ranks; m != 0; m &= m - 1 {
		ranks = append(ranks, bits.TrailingZeros16(m))
	}
	return ranks
}

// rankGroups counts ranks that appear exactly n times.
func (sc boardScan) rankGroups(n int) int {
	groups := 0
	for _, c := range sc.rankCounts {
		if c == n {
			groups++
		}
	}
	return groups
}

// AnalyzeBoardTexture analyzes how coordinated/dangerous a board is
func AnalyzeBoardTexture(board poker.Hand) BoardTexture {
	if board.CountCards() < 3 {
		return Dry
	}

	var wetness int

	flushInfo := AnalyzeFlushPotential(board)
	switch {
	case flushInfo.IsMonotone, flushInfo.MaxSuitCount >= 4:
		wetness += 4
	case flushInfo.MaxSuitCount == 3:
		wetness += 3
	case flushInfo.MaxSuitCount == 2:
		wetness++
	}

	straightInfo := AnalyzeStraightPotential(board)
	switch {
	case straightInfo.ConnectedCards >= 4:
		wetness += 4
	case straightInfo.ConnectedCards == 3:
		wetness += 3
	case straightInfo.ConnectedCards == 2:
		wetness++
	}

	sc := scanBoard(board)
	if sc.rankGroups(2)+sc.rankGroups(3)+sc.rankGroups(4) > 0 {
		wetness++
	}
	if bits.OnesCount64(uint64(board)&highCardBits) >= 3 {
		wetness++
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// highCardBits selects T-A in every suit window.
const highCardBits = 0x1F00 | 0x1F00<<13 | 0x1F00<<26 | 0x1F00<<39

// AnalyzeFlushPotential reports how many board cards share the most common suit.
// Ties between suits go to the suit holding the higher card.
func AnalyzeFlushPotential(board poker.Hand) FlushInfo {
	sc := scanBoard(board)

	var info FlushInfo
	bestHigh := -1
	suits := 0
	for suit := poker.Spades; ; suit-- {
		if count := sc.suitCounts[suit]; count > 0 {
			suits++
			high := bits.Len16(board.GetSuitMask(suit)) - 1
			if count > info.MaxSuitCount || (count == info.MaxSuitCount && high > bestHigh) {
				info.MaxSuitCount = count
				info.DominantSuit = suit
				bestHigh = high
			}
		}
		if suit == poker.Clubs {
			break
		}
	}

	info.IsMonotone = suits == 1 && sc.cards >= 3
	info.IsRainbow = suits == sc.cards && sc.cards >= 3
	return info
}

// AnalyzeStraightPotential measures how connected the board's ranks are.
func AnalyzeStraightPotential(board poker.Hand) StraightInfo {
	sc := scanBoard(board)
	ranks := sc.distinctRanks()
	if len(ranks) == 0 {
		return StraightInfo{}
	}

	info := StraightInfo{
		ConnectedCards: 1,
		HasAce:         sc.ranks&(1<<poker.Ace) != 0,
		BroadwayCards:  bits.OnesCount16(sc.ranks & 0x1F00),
	}

	run := 1
	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1]
		info.MaxGap = max(info.MaxGap, gap)
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		info.ConnectedCards = max(info.ConnectedCards, run)
	}

	// With the ace playing low, count the run 2-3-4-5 upward from it. A lone
	// ace-deuce does not count as connected.
	if info.HasAce {
		low := 1
		for r := poker.Two; r <= poker.Five && sc.ranks&(1<<r) != 0; r++ {
			low++
		}
		if low >= 3 {
			info.ConnectedCards = max(info.ConnectedCards, low)
		}
	}

	return info
}
