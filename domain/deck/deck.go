package deck

import (
	"encoding/json"
	"slices"

	"github.com/luca-patrignani/balatro/domain/card"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck is the draw pile of a game. Cards are drawn from the front.
type Deck struct {
	cards    []card.Card
	shuffler Shuffler
}

// NewDeck returns an ordered 52-card deck that shuffles with s.
// Card IDs are the raw card numbers 1-52.
func NewDeck(s Shuffler) *Deck {
	cards := make([]card.Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		c, err := card.IntToCard(i)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return &Deck{cards: cards, shuffler: s}
}

// SetShuffler replaces the randomness source, e.g. after restoring a snapshot.
func (d *Deck) SetShuffler(s Shuffler) {
	d.shuffler = s
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []card.Card {
	return slices.Clone(d.cards)
}

// Draw removes up to n cards from the top of the deck.
// It returns fewer cards when the deck runs out.
func (d *Deck) Draw(n int) []card.Card {
	if n <= 0 {
		return nil
	}
	n = min(n, len(d.cards))
	drawn := slices.Clone(d.cards[:n])
	d.cards = slices.Delete(d.cards, 0, n)
	return drawn
}

// Append puts cards at the bottom of the deck.
func (d *Deck) Append(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

// Shuffle permutes the deck with the configured shuffler.
// A deck without a shuffler keeps its order.
func (d *Deck) Shuffle() {
	if d.shuffler == nil {
		return
	}
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.cards)
}

func (d *Deck) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &d.cards)
}
