package game

import (
	"math/rand"

	"github.com/arcanaland/tableau/internal/card"
)

// Params tunes random game generation. Probabilities are percentages.
type Params struct {
	MaxCards int
	// ExtraProbability is the chance a non-empty stack gets jokers.
	ExtraProbability int
	// EmptyStackProbability is the chance an empty stack is kept in the
	// description rather than omitted.
	EmptyStackProbability int
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		MaxCards:              card.MaxCards,
		ExtraProbability:      20,
		EmptyStackProbability: 25,
	}
}

// Generator produces game descriptions from a random source.
type Generator struct {
	rng    *rand.Rand
	params Params
}

// NewGenerator creates a generator. A nil rng is replaced by a source
// seeded with seed 1 so output stays reproducible.
func NewGenerator(rng *rand.Rand, params Params) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if params.MaxCards <= 0 || params.MaxCards > card.MaxCards {
		params.MaxCards = card.MaxCards
	}
	return &Generator{rng: rng, params: params}
}

// Params returns the parameters in effect.
func (g *Generator) Params() Params {
	return g.params
}

// chance reports true with the given percentage.
func (g *Generator) chance(percent int) bool {
	return g.rng.Intn(100)+1 <= percent
}

// between returns a uniform integer in lo..hi inclusive.
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) shuffledStacks() []card.StackID {
	stacks := card.Stacks()
	g.rng.Shuffle(len(stacks), func(i, j int) {
		stacks[i], stacks[j] = stacks[j], stacks[i]
	})
	return stacks
}

// RandomGame deals every stack in a random order. Each stack gets a
// random suit and 0..MaxCards cards; non-empty stacks sometimes get
// 1..count jokers, and empty stacks are usually left out.
func (g *Generator) RandomGame() card.GameDescription {
	suits := card.Suits()
	game := card.GameDescription{}

	for _, stack := range g.shuffledStacks() {
		suit := suits[g.rng.Intn(len(suits))]
		count := g.between(0, g.params.MaxCards)

		extra := 0
		if count > 0 && g.chance(g.params.ExtraProbability) {
			extra = g.between(1, count)
		}

		if count != 0 || g.chance(g.params.EmptyStackProbability) {
			game = append(game, card.StackDeal{
				Stack: stack,
				Suit:  suit,
				Count: count,
				Extra: extra,
			})
		}
	}

	return game
}

// FullGame deals the maximum number of cards onto every stack, cycling
// through a shuffled suit order, with 0..MaxCards jokers per stack.
func (g *Generator) FullGame() card.GameDescription {
	stacks := g.shuffledStacks()
	suits := card.Suits()
	g.rng.Shuffle(len(suits), func(i, j int) {
		suits[i], suits[j] = suits[j], suits[i]
	})

	game := make(card.GameDescription, 0, len(stacks))
	for i, stack := range stacks {
		game = append(game, card.StackDeal{
			Stack: stack,
			Suit:  suits[i%len(suits)],
			Count: g.params.MaxCards,
			Extra: g.between(0, g.params.MaxCards),
		})
	}
	return game
}
