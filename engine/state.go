package engine

import (
	"github.com/luca-patrignani/balatro/domain/card"
	"github.com/luca-patrignani/balatro/domain/game"
	"github.com/luca-patrignani/balatro/domain/planet"
)

// State is a copy of everything an agent may observe.
type State struct {
	EpisodeID   string           `json:"episode_id"`
	Stage       game.Stage       `json:"stage"`
	Ante        game.Ante        `json:"ante"`
	Round       int              `json:"round"`
	Score       int              `json:"score"`
	Required    int              `json:"required,omitempty"`
	Money       int              `json:"money"`
	Reward      int              `json:"reward"`
	Plays       int              `json:"plays"`
	Discards    int              `json:"discards"`
	Available   []card.Card      `json:"available"`
	Selected    []card.Card      `json:"selected"`
	DeckSize    int              `json:"deck_size"`
	Discarded   int              `json:"discarded"`
	Jokers      []game.Jokers    `json:"jokers"`
	ShopJokers  []game.Jokers    `json:"shop_jokers"`
	ShopPlanets []planet.Planets `json:"shop_planets"`
	LastHand    *card.MadeHand   `json:"last_hand,omitempty"`
	Steps       int              `json:"steps"`
}

func stateOf(id string, g *game.Game, steps int) State {
	required, _ := g.RequiredScore()
	s := State{
		EpisodeID:   id,
		Stage:       g.Stage,
		Ante:        g.Ante,
		Round:       g.Round,
		Score:       g.Score,
		Required:    required,
		Money:       g.Money,
		Reward:      g.Reward,
		Plays:       g.Plays,
		Discards:    g.Discards,
		Available:   g.Available.Cards(),
		Selected:    g.Available.Selected(),
		DeckSize:    g.Deck.Len(),
		Discarded:   len(g.Discarded),
		Jokers:      append([]game.Jokers(nil), g.Jokers...),
		ShopJokers:  append([]game.Jokers(nil), g.Shop.Jokers...),
		ShopPlanets: append([]planet.Planets(nil), g.Shop.Planets...),
		Steps:       steps,
	}
	if g.LastHand != nil {
		last := *g.LastHand
		s.LastHand = &last
	}
	return s
}
