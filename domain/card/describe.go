package card

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a human readable name for the made hand. Five distinct
// standard cards are described by the poker evaluator ("king-high straight"),
// anything else falls back to the rank name.
func (m MadeHand) Describe() string {
	if len(m.All) != MaxHandSize || !distinct(m.All) {
		return m.Rank.String()
	}
	cards, err := toPokerCards(m.All)
	if err != nil {
		return m.Rank.String()
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return m.Rank.String()
	}
	return desc
}

func toPokerCards(cards []Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		pc, err := poker.MakeCard(poker.Suit(c.Suit), poker.Rank(c.Value))
		if err != nil {
			return nil, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = pc
	}
	return out, nil
}

func distinct(cards []Card) bool {
	seen := make(map[[2]uint8]bool, len(cards))
	for _, c := range cards {
		key := [2]uint8{uint8(c.Suit), uint8(c.Value)}
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}
