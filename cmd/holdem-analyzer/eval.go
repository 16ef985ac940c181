package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/holdem-analyzer/poker"
)

// EvalCmd prints the strength of a made hand.
type EvalCmd struct {
	Cards []string `arg:"" help:"5 to 7 cards, e.g. 'As Ks Qs Js Ts' or 's13 s12 s11 s10 s9'"`
}

func (cmd *EvalCmd) Run(globals *Globals) error {
	a, err := globals.newApp(os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	return cmd.run(a)
}

func (cmd *EvalCmd) run(a *app) error {
	hand, err := parseCards(cmd.Cards)
	if err != nil {
		return err
	}

	strength, err := poker.Evaluate(hand)
	if err != nil {
		return err
	}
	a.out.Strength(hand, strength)
	return nil
}

// parseCards parses card tokens, which may also be packed into one
// argument separated by spaces, and rejects repeats.
func parseCards(args []string) (poker.Hand, error) {
	var hand poker.Hand
	for _, tok := range strings.Fields(strings.Join(args, " ")) {
		card, err := poker.ParseToken(tok)
		if err != nil {
			return 0, err
		}
		if hand.HasCard(card) {
			return 0, fmt.Errorf("duplicate card %s", card)
		}
		hand.AddCard(card)
	}
	return hand, nil
}
