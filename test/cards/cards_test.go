package cards_test

import (
	"testing"

	"github.com/lost-woods/sampler/src/rng"
)

func TestDeck_UniqueSingleDeck(t *testing.T) {
	deck := rng.NewDeck(1, false)
	seen := map[string]bool{}

	for _, card := range deck {
		key := card.Value + "_" + card.Suit
		if seen[key] {
			t.Fatalf("duplicate card: %s", key)
		}
		seen[key] = true
	}

	if len(seen) != 52 {
		t.Fatalf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestDeck_MultipleDecksMultiplicity(t *testing.T) {
	decks := 3
	deck := rng.NewDeck(decks, false)
	counts := map[string]int{}

	for _, c := range deck {
		key := c.Value + "_" + c.Suit
		counts[key]++
	}

	for k, v := range counts {
		if v != decks {
			t.Fatalf("card %s appears %d times, want %d", k, v, decks)
		}
	}
}

func TestDrawCards_DistinctPositions(t *testing.T) {
	e := rng.NewSeededPRNGSource(11)
	deck := rng.NewDeck(1, true) // 54 cards

	picked, ok := rng.DrawCards(e, deck, 54)
	if !ok {
		t.Fatal("drawing the whole deck should be feasible")
	}

	seen := map[string]int{}
	for _, c := range picked {
		seen[c.Value+"_"+c.Suit]++
	}
	for k, v := range seen {
		if v != 1 {
			t.Fatalf("card %s drawn %d times", k, v)
		}
	}
}

func TestDrawCards_TooManyIsInfeasible(t *testing.T) {
	e := rng.NewSeededPRNGSource(11)
	deck := rng.NewDeck(1, false)

	if _, ok := rng.DrawCards(e, deck, 53); ok {
		t.Fatal("drawing 53 cards from a 52-card deck should be infeasible")
	}
}
