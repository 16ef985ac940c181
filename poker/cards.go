package poker

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Card is a single card stored as one bit of a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], deuce in the lowest bit
// of each suit window, so a card's bit index is suit*13 + rank.
type Card uint64

// Hand is a set of cards. Multiple cards are represented by multiple bits set.
type Hand uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

const (
	// DeckSize is the number of distinct cards.
	DeckSize = 52

	// RankMask covers the 13 rank bits of one suit window.
	RankMask = 0x1FFF

	// FullDeck has every card bit set.
	FullDeck Hand = 1<<DeckSize - 1
)

const (
	rankChars   = "23456789TJQKA"
	suitChars   = "cdhs"
	suitSymbols = "♣♦♥♠"
)

// NewCard creates a card from rank and suit without validation.
// Use Encode when the inputs come from outside the package.
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

// Encode maps a (suit, rank) pair to its card. Rank is 0-12 (deuce to ace).
func Encode(suit, rank uint8) (Card, error) {
	if suit > Spades {
		return 0, fmt.Errorf("%w: suit %d out of range", ErrInvalidCard, suit)
	}
	if rank > Ace {
		return 0, fmt.Errorf("%w: rank %d out of range", ErrInvalidCard, rank)
	}
	return NewCard(rank, suit), nil
}

// EncodeOneBased maps the record-file notation to a card: a suit letter
// (c, d, h, s) and a rank from 1 (deuce) to 13 (ace).
func EncodeOneBased(suit byte, rank int) (Card, error) {
	s := strings.IndexByte(suitChars, lower(suit))
	if s < 0 {
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, suit)
	}
	if rank < 1 || rank > 13 {
		return 0, fmt.Errorf("%w: rank %d out of range 1-13", ErrInvalidCard, rank)
	}
	return NewCard(uint8(rank-1), uint8(s)), nil
}

// Decode is the inverse of Encode for bit indexes 0-51.
func Decode(index int) (suit, rank uint8, err error) {
	if index < 0 || index >= DeckSize {
		return 0, 0, fmt.Errorf("%w: index %d out of range", ErrInvalidCard, index)
	}
	return uint8(index / 13), uint8(index % 13), nil
}

// CardAt returns the card occupying bit index i.
func CardAt(i int) (Card, error) {
	suit, rank, err := Decode(i)
	if err != nil {
		return 0, err
	}
	return NewCard(rank, suit), nil
}

// Index returns the bit position this card occupies (0-51), or -1 for the zero card.
func (c Card) Index() int {
	if c == 0 {
		return -1
	}
	return bits.TrailingZeros64(uint64(c))
}

// Rank returns the rank of the card (0-12)
func (c Card) Rank() uint8 {
	idx := c.Index()
	if idx < 0 {
		return 255
	}
	return uint8(idx % 13)
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	idx := c.Index()
	if idx < 0 {
		return 255
	}
	return uint8(idx / 13)
}

// String returns the string representation (e.g., "As", "Kh")
func (c Card) String() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > Ace || suit > Spades {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// Symbol renders the card with a suit glyph, e.g. "A♠" or "10♥".
func (c Card) Symbol() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > Ace || suit > Spades {
		return "??"
	}
	name := string(rankChars[rank])
	if rank == Ten {
		name = "10"
	}
	return name + string([]rune(suitSymbols)[suit])
}

// OneBased renders the card in record-file notation, e.g. "s13".
func (c Card) OneBased() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > Ace || suit > Spades {
		return "??"
	}
	return string(suitChars[suit]) + strconv.Itoa(int(rank)+1)
}

// RankName returns the single-character name of a rank (2-9, T, J, Q, K, A).
func RankName(rank uint8) string {
	if rank > Ace {
		return "?"
	}
	return string(rankChars[rank])
}

// ParseCard parses a string like "As" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("%w: invalid rank %q", ErrInvalidCard, s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("%w: invalid suit %q", ErrInvalidCard, s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// ParseToken accepts either notation: rank-then-suit ("As") or the one-based
// record form of suit-then-rank ("s13", "d7").
func ParseToken(tok string) (Card, error) {
	if len(tok) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, tok)
	}
	if strings.IndexByte(suitChars, lower(tok[0])) >= 0 {
		if rank, err := strconv.Atoi(tok[1:]); err == nil {
			return EncodeOneBased(tok[0], rank)
		}
	}
	return ParseCard(tok)
}

// MustParseHand parses space separated cards and panics on error (for tests)
func MustParseHand(s string) Hand {
	var h Hand
	for _, tok := range strings.Fields(s) {
		c, err := ParseToken(tok)
		if err != nil {
			panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
		}
		h.AddCard(c)
	}
	return h
}

// NewHand creates a hand from multiple cards
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(c Card) {
	*h |= Hand(c)
}

// HasCard checks if the hand contains a specific card
func (h Hand) HasCard(c Card) bool {
	return (h & Hand(c)) != 0
}

// CountCards returns the number of cards in the hand
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// GetSuitMask returns the cards of a specific suit as a bitmask
func (h Hand) GetSuitMask(suit uint8) uint16 {
	return uint16((h >> (suit * 13)) & RankMask)
}

// GetRankMask returns a bitmask of which ranks are present in any suit.
func (h Hand) GetRankMask() uint16 {
	var mask uint16
	for suit := Clubs; suit <= Spades; suit++ {
		mask |= h.GetSuitMask(suit)
	}
	return mask
}

// Cards lists the cards in ascending bit order: clubs 2-A, diamonds, hearts, spades.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	for rest := uint64(h & FullDeck); rest != 0; rest &= rest - 1 {
		cards = append(cards, Card(rest&-rest))
	}
	return cards
}

// String joins the cards with spaces, e.g. "Ac Kd".
func (h Hand) String() string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
