package game

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/luca-patrignani/balatro/domain/card"
)

// Available is the ordered pool of cards the player can act on during a
// blind. Each card carries its own selection flag, so reordering keeps the
// selection attached to the card.
type Available struct {
	cards    []card.Card
	selected []bool
}

func NewAvailable() *Available {
	return &Available{}
}

func (a *Available) Len() int {
	return len(a.cards)
}

// Cards returns a copy of the pool in display order.
func (a *Available) Cards() []card.Card {
	return slices.Clone(a.cards)
}

// At returns the card at position i.
func (a *Available) At(i int) (card.Card, bool) {
	if i < 0 || i >= len(a.cards) {
		return card.Card{}, false
	}
	return a.cards[i], true
}

// Selected returns the selected cards in display order.
func (a *Available) Selected() []card.Card {
	var out []card.Card
	for i, c := range a.cards {
		if a.selected[i] {
			out = append(out, c)
		}
	}
	return out
}

func (a *Available) SelectedCount() int {
	n := 0
	for _, s := range a.selected {
		if s {
			n++
		}
	}
	return n
}

func (a *Available) IsSelected(i int) bool {
	return i >= 0 && i < len(a.selected) && a.selected[i]
}

// Index returns the position of c, or -1.
func (a *Available) Index(c card.Card) int {
	return slices.Index(a.cards, c)
}

// SelectedIndex returns the position of the only selected card. It fails
// unless exactly one card is selected.
func (a *Available) SelectedIndex() (int, error) {
	idx := -1
	for i, s := range a.selected {
		if !s {
			continue
		}
		if idx >= 0 {
			return -1, fmt.Errorf("%w: more than one card selected", ErrInvalidAction)
		}
		idx = i
	}
	if idx < 0 {
		return -1, fmt.Errorf("%w: no card selected", ErrInvalidAction)
	}
	return idx, nil
}

func (a *Available) Toggle(i int) {
	a.selected[i] = !a.selected[i]
}

func (a *Available) ClearSelection() {
	clear(a.selected)
}

// Swap exchanges two positions together with their selection flags.
func (a *Available) Swap(i, j int) {
	a.cards[i], a.cards[j] = a.cards[j], a.cards[i]
	a.selected[i], a.selected[j] = a.selected[j], a.selected[i]
}

// Extend appends unselected cards to the end of the pool.
func (a *Available) Extend(cards ...card.Card) {
	a.cards = append(a.cards, cards...)
	a.selected = append(a.selected, make([]bool, len(cards))...)
}

// Take empties the pool and returns its cards.
func (a *Available) Take() []card.Card {
	out := a.cards
	a.cards = nil
	a.selected = nil
	return out
}

// Contains reports whether every card of cards can be matched to a distinct
// card of the pool.
func (a *Available) Contains(cards []card.Card) bool {
	_, ok := a.match(cards)
	return ok
}

// Remove takes cards out of the pool. Nothing is removed unless every card
// matches.
func (a *Available) Remove(cards []card.Card) ([]card.Card, error) {
	used, ok := a.match(cards)
	if !ok {
		return nil, ErrNoCardMatch
	}
	removed := make([]card.Card, 0, len(cards))
	keepCards := a.cards[:0]
	keepSel := a.selected[:0]
	for i, c := range a.cards {
		if used[i] {
			removed = append(removed, c)
			continue
		}
		keepCards = append(keepCards, c)
		keepSel = append(keepSel, a.selected[i])
	}
	a.cards = keepCards
	a.selected = keepSel
	return removed, nil
}

func (a *Available) match(cards []card.Card) ([]bool, bool) {
	used := make([]bool, len(a.cards))
	for _, want := range cards {
		found := false
		for i, c := range a.cards {
			if !used[i] && c == want {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return used, true
}

type availableJSON struct {
	Cards    []card.Card `json:"cards"`
	Selected []bool      `json:"selected"`
}

func (a *Available) MarshalJSON() ([]byte, error) {
	return json.Marshal(availableJSON{Cards: a.cards, Selected: a.selected})
}

func (a *Available) UnmarshalJSON(data []byte) error {
	var in availableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Selected) != len(in.Cards) {
		in.Selected = make([]bool, len(in.Cards))
	}
	a.cards = in.Cards
	a.selected = in.Selected
	return nil
}
