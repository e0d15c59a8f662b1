package rng

import "github.com/lost-woods/sampler/src/sample"

type Card struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

func NewDeck(numDecks int, jokers bool) []Card {
	perDeck := 52
	if jokers {
		perDeck += 2
	}
	deck := make([]Card, 0, numDecks*perDeck)

	suits := []string{"Hearts", "Diamonds", "Clubs", "Spades"}
	values := []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

	for d := 0; d < numDecks; d++ {
		for _, suit := range suits {
			for _, v := range values {
				deck = append(deck, Card{Value: v, Suit: suit})
			}
		}
		if jokers {
			deck = append(deck, Card{Value: "Joker", Suit: "Red"})
			deck = append(deck, Card{Value: "Joker", Suit: "Black"})
		}
	}
	return deck
}

// DrawCards picks count distinct cards from deck, in random order, via a
// single without-replacement index sample. Reports false when count exceeds
// the deck size; no draws are consumed in that case.
func DrawCards(e Entropy, deck []Card, count int) ([]Card, bool) {
	indices, ok := sample.Sample(e, len(deck), count)
	if !ok {
		return nil, false
	}

	picked := make([]Card, count)
	for i, idx := range indices {
		picked[i] = deck[idx]
	}
	return picked, true
}
