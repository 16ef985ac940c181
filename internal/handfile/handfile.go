// Package handfile reads hand records: one hand per line, two hole cards
// followed by zero, three, four or five board cards.
package handfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/holdem-analyzer/poker"
)

// ErrMalformedRecord marks a line that does not describe a valid hand.
var ErrMalformedRecord = errors.New("malformed record")

// Record is one parsed hand.
type Record struct {
	Hole  poker.Hand
	Board poker.Hand
}

// Outcome is the result of reading one line. Exactly one of Record and Err
// is meaningful.
type Outcome struct {
	Line   int
	Raw    string
	Record Record
	Err    error
}

// OK reports whether the line parsed.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// ReadFile opens path and reads every record in it.
func ReadFile(path string) ([]Outcome, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read parses r line by line. Blank lines and lines starting with '#' are
// skipped; every other line produces an Outcome. The error is only set when
// reading r itself fails.
func Read(r io.Reader) ([]Outcome, error) {
	var outcomes []Outcome

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		record, err := ParseRecord(raw)
		if err != nil {
			err = fmt.Errorf("line %d: %w", line, err)
		}
		outcomes = append(outcomes, Outcome{Line: line, Raw: raw, Record: record, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return outcomes, fmt.Errorf("reading hand records: %w", err)
	}
	return outcomes, nil
}

// ParseRecord parses one whitespace separated line such as "s1 s13 h10 d4 c7"
// or "As Kd Th 4c 7c". Both notations may be mixed.
func ParseRecord(line string) (Record, error) {
	tokens := strings.Fields(line)
	switch len(tokens) {
	case 2, 5, 6, 7:
	default:
		return Record{}, fmt.Errorf("%w: want 2 hole cards and 0, 3, 4 or 5 board cards, got %d tokens",
			ErrMalformedRecord, len(tokens))
	}

	var rec Record
	for i, tok := range tokens {
		card, err := poker.ParseToken(tok)
		if err != nil {
			return Record{}, fmt.Errorf("%w: token %d: %w", ErrMalformedRecord, i+1, err)
		}
		if (rec.Hole | rec.Board).HasCard(card) {
			return Record{}, fmt.Errorf("%w: duplicate card %s", ErrMalformedRecord, card)
		}
		if i < 2 {
			rec.Hole.AddCard(card)
		} else {
			rec.Board.AddCard(card)
		}
	}
	return rec, nil
}
