package game

import (
	"testing"

	"github.com/luca-patrignani/balatro/domain/card"
	"github.com/luca-patrignani/balatro/domain/deck"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(DefaultConfig(), deck.NewSeededShuffler(42))
	g.Start()
	return g
}

// blindGame returns a game inside the small blind holding exactly cards.
func blindGame(t *testing.T, cards ...card.Card) *Game {
	t.Helper()
	g := newTestGame(t)
	if err := g.SelectBlind(Small); err != nil {
		t.Fatalf("select blind: %v", err)
	}
	g.Deck.Append(g.Available.Take()...)
	g.Available.Extend(cards...)
	return g
}

func mk(v card.Value, s card.Suit) card.Card {
	return card.NewCard(v, s)
}
