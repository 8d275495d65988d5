package game

import (
	"iter"
	"slices"

	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/planet"
)

// ShopPlanetSlots is the number of planets offered per shop visit.
const ShopPlanetSlots = 2

// Shop is the inventory offered between rounds.
type Shop struct {
	Jokers  []Jokers         `json:"jokers"`
	Planets []planet.Planets `json:"planets"`
}

func NewShop() *Shop {
	return &Shop{}
}

// Restock replaces the inventory with jokerSlots catalog jokers, drawn with
// replacement, and ShopPlanetSlots planets. A nil src leaves the shop empty.
func (s *Shop) Restock(src deck.Shuffler, jokerSlots int) {
	s.Jokers = nil
	s.Planets = nil
	if src == nil {
		return
	}
	for range jokerSlots {
		s.Jokers = append(s.Jokers, rollJoker(src))
	}
	for range ShopPlanetSlots {
		s.Planets = append(s.Planets, planet.All[src.IntN(len(planet.All))])
	}
}

// rollJoker draws a catalog joker uniformly.
func rollJoker(src deck.Shuffler) Jokers {
	return AllJokers[src.IntN(len(AllJokers))]
}

// GenBuyJoker yields a buy action for every slot holding a joker affordable
// with money, in shop order.
func (s *Shop) GenBuyJoker(money int) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for i, j := range s.Jokers {
			if j.Cost() > money {
				continue
			}
			if !yield(BuyJokerSlotAction(j, i)) {
				return
			}
		}
	}
}

func (s *Shop) HasJoker(j Jokers) bool {
	return slices.Contains(s.Jokers, j)
}

// jokerAt reports whether slot i holds j.
func (s *Shop) jokerAt(i int, j Jokers) bool {
	return i >= 0 && i < len(s.Jokers) && s.Jokers[i] == j
}

func (s *Shop) HasPlanet(p planet.Planets) bool {
	return slices.Contains(s.Planets, p)
}

func (s *Shop) removeJokerAt(i int) {
	s.Jokers = slices.Delete(s.Jokers, i, i+1)
}

func (s *Shop) removePlanet(p planet.Planets) {
	if i := slices.Index(s.Planets, p); i >= 0 {
		s.Planets = slices.Delete(s.Planets, i, i+1)
	}
}
