package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier is returned when a stack or suit name is outside
// the fixed sets of six stacks and four suits.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// MaxCards is the largest number of suited cards a stack may hold.
const MaxCards = 10

// StackID identifies one of the six fixed table positions.
type StackID int

const (
	Stack1 StackID = iota + 1
	Stack2
	Stack3
	Stack4
	Stack5
	Stack6
)

// NumStacks is the number of stack positions on the table.
const NumStacks = 6

// Stacks returns every stack identifier in table order.
func Stacks() []StackID {
	return []StackID{Stack1, Stack2, Stack3, Stack4, Stack5, Stack6}
}

// Valid reports whether s is one of the six stacks.
func (s StackID) Valid() bool {
	return s >= Stack1 && s <= Stack6
}

// Index returns the zero-based table position of the stack.
func (s StackID) Index() int {
	return int(s) - 1
}

func (s StackID) String() string {
	return fmt.Sprintf("Stack %d", int(s))
}

// ParseStack parses names like "Stack 3".
func ParseStack(name string) (StackID, error) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(name), "Stack %d", &n); err != nil {
		return 0, fmt.Errorf("stack %q: %w", name, ErrInvalidIdentifier)
	}
	s := StackID(n)
	if !s.Valid() || s.String() != strings.TrimSpace(name) {
		return 0, fmt.Errorf("stack %q: %w", name, ErrInvalidIdentifier)
	}
	return s, nil
}

// SuitID identifies one of the four decorative card themes.
type SuitID int

const (
	SuitA SuitID = iota + 1 // orange
	SuitB                   // watermelon
	SuitC                   // strawberry
	SuitD                   // avocado
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// Suits returns every suit identifier in order.
func Suits() []SuitID {
	return []SuitID{SuitA, SuitB, SuitC, SuitD}
}

// Valid reports whether s is one of the four suits.
func (s SuitID) Valid() bool {
	return s >= SuitA && s <= SuitD
}

func (s SuitID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return "Suit " + string(rune('A'+int(s)-1))
}

// Theme returns the fruit drawn on cards of this suit.
func (s SuitID) Theme() string {
	switch s {
	case SuitA:
		return "orange"
	case SuitB:
		return "watermelon"
	case SuitC:
		return "strawberry"
	case SuitD:
		return "avocado"
	default:
		return "unknown"
	}
}

// ParseSuit parses names like "Suit B".
func ParseSuit(name string) (SuitID, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Suits() {
		if s.String() == trimmed {
			return s, nil
		}
	}
	return 0, fmt.Errorf("suit %q: %w", name, ErrInvalidIdentifier)
}

// StackDeal describes the cards dealt onto a single stack: Count cards of
// Suit followed by Extra jokers.
//
// Count is expected in 0..MaxCards and Extra in 0..Count. These ranges are
// preconditions of rendering and are not enforced here.
type StackDeal struct {
	Stack StackID
	Suit  SuitID
	Count int
	Extra int
}

func (d StackDeal) String() string {
	return fmt.Sprintf("['%s', '%s', %d, %d]", d.Stack, d.Suit, d.Count, d.Extra)
}

// GameDescription is the ordered deal plan for one rendering run.
type GameDescription []StackDeal

// Cards returns the total number of cards, jokers included.
func (g GameDescription) Cards() int {
	total := 0
	for _, d := range g {
		total += d.Count + d.Extra
	}
	return total
}
