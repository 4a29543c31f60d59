package validator

import (
	"fmt"

	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/game"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	GamePath string
	MaxCards int
	Results  ValidationResults
}

func NewValidator(gamePath string) *Validator {
	return &Validator{
		GamePath: gamePath,
		MaxCards: card.MaxCards,
		Results:  ValidationResults{},
	}
}

// Validate checks a game file. Unreadable files return an error; unknown
// identifiers and duplicate stacks are reported as errors, and counts
// outside their ranges as warnings since rendering does not depend on them.
func (v *Validator) Validate() (ValidationResults, error) {
	f, err := game.DecodeFile(v.GamePath)
	if err != nil {
		return v.Results, err
	}

	if len(f.Deals) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "game has no [[deal]] entries; nothing will be drawn")
	}
	if len(f.Deals) > card.NumStacks {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("game has %d deals but the table only has %d stacks", len(f.Deals), card.NumStacks))
	}

	seen := make(map[card.StackID]int)
	for i, d := range f.Deals {
		v.validateDeal(i+1, d, seen)
	}

	return v.Results, nil
}

func (v *Validator) validateDeal(n int, d game.DealFile, seen map[card.StackID]int) {
	stack, err := card.ParseStack(d.Stack)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("deal %d: unknown stack %q", n, d.Stack))
	} else if first, ok := seen[stack]; ok {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("deal %d: %s already dealt in deal %d", n, stack, first))
	} else {
		seen[stack] = n
	}

	if _, err := card.ParseSuit(d.Suit); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("deal %d: unknown suit %q", n, d.Suit))
	}

	v.validateCounts(n, d)
}

// validateCounts reports range violations without rejecting the game
func (v *Validator) validateCounts(n int, d game.DealFile) {
	if d.Cards < 0 || d.Cards > v.MaxCards {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deal %d: cards = %d is outside 0..%d", n, d.Cards, v.MaxCards))
	}

	switch {
	case d.Extra < 0:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deal %d: extra = %d is negative", n, d.Extra))
	case d.Cards == 0 && d.Extra > 0:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deal %d: extra = %d on an empty stack", n, d.Extra))
	case d.Extra > d.Cards:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("deal %d: extra = %d exceeds cards = %d", n, d.Extra, d.Cards))
	}
}
