package game

import (
	"fmt"

	"github.com/arcanaland/tableau/internal/card"
)

// Literal builds a description from explicit deals. Nothing is checked:
// ranges and identifiers are the caller's responsibility.
func Literal(deals ...card.StackDeal) card.GameDescription {
	g := make(card.GameDescription, len(deals))
	copy(g, deals)
	return g
}

func d(stack card.StackID, suit card.SuitID, count, extra int) card.StackDeal {
	return card.StackDeal{Stack: stack, Suit: suit, Count: count, Extra: extra}
}

// fixedGames are scripted layouts used while developing artwork: single
// cards, repeated cards, jokers, then typical multi-stack deals.
var fixedGames = []card.GameDescription{
	Literal(d(card.Stack1, card.SuitA, 1, 0)),
	Literal(d(card.Stack2, card.SuitB, 1, 0)),
	Literal(d(card.Stack3, card.SuitC, 1, 0)),
	Literal(d(card.Stack4, card.SuitD, 1, 0)),

	Literal(d(card.Stack2, card.SuitA, 4, 0)),
	Literal(d(card.Stack3, card.SuitB, 3, 0)),
	Literal(d(card.Stack4, card.SuitC, 2, 0)),
	Literal(d(card.Stack5, card.SuitD, 5, 0)),

	Literal(
		d(card.Stack1, card.SuitA, 1, 0),
		d(card.Stack2, card.SuitB, 1, 0),
		d(card.Stack3, card.SuitC, 1, 0),
		d(card.Stack4, card.SuitD, 1, 0),
	),

	Literal(d(card.Stack3, card.SuitD, 4, 4)),
	Literal(d(card.Stack4, card.SuitC, 3, 2)),
	Literal(d(card.Stack5, card.SuitB, 2, 1)),
	Literal(d(card.Stack6, card.SuitA, 5, 5)),

	Literal(
		d(card.Stack6, card.SuitD, 9, 6),
		d(card.Stack4, card.SuitB, 5, 0),
		d(card.Stack5, card.SuitB, 1, 1),
		d(card.Stack2, card.SuitC, 4, 0),
	),
	Literal(
		d(card.Stack1, card.SuitC, 1, 0),
		d(card.Stack5, card.SuitD, 2, 1),
		d(card.Stack3, card.SuitA, 2, 0),
		d(card.Stack2, card.SuitA, 8, 5),
		d(card.Stack6, card.SuitC, 10, 0),
	),
	Literal(
		d(card.Stack3, card.SuitD, 0, 0),
		d(card.Stack6, card.SuitB, 2, 0),
		d(card.Stack2, card.SuitD, 6, 0),
		d(card.Stack1, card.SuitC, 1, 0),
		d(card.Stack4, card.SuitB, 1, 1),
		d(card.Stack5, card.SuitA, 3, 0),
	),
	Literal(
		d(card.Stack6, card.SuitC, 8, 0),
		d(card.Stack2, card.SuitC, 4, 4),
		d(card.Stack5, card.SuitA, 9, 3),
		d(card.Stack4, card.SuitC, 0, 0),
		d(card.Stack1, card.SuitA, 5, 0),
		d(card.Stack3, card.SuitB, 5, 0),
	),
	Literal(
		d(card.Stack4, card.SuitA, 6, 0),
		d(card.Stack6, card.SuitC, 1, 1),
		d(card.Stack5, card.SuitC, 4, 0),
		d(card.Stack1, card.SuitD, 10, 0),
		d(card.Stack3, card.SuitB, 9, 0),
		d(card.Stack2, card.SuitD, 2, 2),
	),
}

// NumFixed is the number of scripted games.
func NumFixed() int {
	return len(fixedGames)
}

// Fixed returns a copy of scripted game n.
func Fixed(n int) (card.GameDescription, error) {
	if n < 0 || n >= len(fixedGames) {
		return nil, fmt.Errorf("fixed game %d not found (have 0-%d)", n, len(fixedGames)-1)
	}
	return Literal(fixedGames[n]...), nil
}
