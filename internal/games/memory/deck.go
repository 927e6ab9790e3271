package memory

import "math/rand"

// Card is one face of the deck.
type Card struct {
	Symbol  string
	Flipped bool // face up, waiting to be resolved
	Matched bool // paired and out of play
}

// FaceUp reports whether the symbol is visible.
func (c Card) FaceUp() bool {
	return c.Flipped || c.Matched
}

// NewDeck returns every symbol twice, shuffled with rng.
func NewDeck(symbols []string, rng *rand.Rand) []Card {
	deck := make([]Card, 0, 2*len(symbols))
	for range 2 {
		for _, s := range symbols {
			deck = append(deck, Card{Symbol: s})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// countMatched returns how many cards are paired.
func countMatched(deck []Card) int {
	n := 0
	for _, c := range deck {
		if c.Matched {
			n++
		}
	}
	return n
}
