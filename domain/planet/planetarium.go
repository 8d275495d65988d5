// Package planet holds the per-hand-rank scoring levels and the planet
// cards that raise them.
package planet

import (
	"encoding/json"

	"github.com/luca-patrignani/balatro/domain/card"
)

// Level is the scoring state of one hand rank.
type Level struct {
	Level int `json:"level"`
	Chips int `json:"chips"`
	Mult  int `json:"mult"`
	Plays int `json:"plays"`
}

// levelUp is the additive step applied by one planet.
type levelUp struct {
	level, chips, mult int
}

var (
	baseLevels = map[card.HandRank]Level{
		card.HighCard:      {Level: 1, Chips: 5, Mult: 1},
		card.OnePair:       {Level: 1, Chips: 10, Mult: 2},
		card.TwoPair:       {Level: 1, Chips: 20, Mult: 2},
		card.ThreeOfAKind:  {Level: 1, Chips: 30, Mult: 3},
		card.Straight:      {Level: 1, Chips: 30, Mult: 4},
		card.Flush:         {Level: 1, Chips: 35, Mult: 4},
		card.FullHouse:     {Level: 1, Chips: 40, Mult: 4},
		card.FourOfAKind:   {Level: 1, Chips: 60, Mult: 7},
		card.StraightFlush: {Level: 1, Chips: 100, Mult: 8},
		card.RoyalFlush:    {Level: 1, Chips: 100, Mult: 8},
		card.FiveOfAKind:   {Level: 1, Chips: 120, Mult: 12},
		card.FlushHouse:    {Level: 1, Chips: 140, Mult: 14},
		card.FlushFive:     {Level: 1, Chips: 160, Mult: 16},
	}

	// Royal flush is absent: it only moves together with straight flush.
	levelUps = map[card.HandRank]levelUp{
		card.HighCard:      {1, 10, 1},
		card.OnePair:       {1, 15, 1},
		card.TwoPair:       {1, 20, 1},
		card.ThreeOfAKind:  {2, 20, 1},
		card.Straight:      {1, 30, 3},
		card.Flush:         {1, 15, 2},
		card.FullHouse:     {1, 25, 2},
		card.FourOfAKind:   {1, 30, 3},
		card.StraightFlush: {1, 40, 4},
		card.FiveOfAKind:   {1, 35, 3},
		card.FlushHouse:    {1, 40, 4},
		card.FlushFive:     {1, 50, 3},
	}
)

// Planetarium is the table of levels for all thirteen hand ranks.
type Planetarium struct {
	levels [card.NumHandRanks]Level
}

// NewPlanetarium returns every hand rank at level 1.
func NewPlanetarium() *Planetarium {
	p := &Planetarium{}
	for _, r := range card.HandRanks {
		p.levels[r] = baseLevels[r]
	}
	return p
}

// Play counts one play of rank and returns its current level.
func (p *Planetarium) Play(rank card.HandRank) Level {
	p.levels[rank].Plays++
	return p.levels[rank]
}

// Level returns the current level of rank without counting a play.
func (p *Planetarium) Level(rank card.HandRank) Level {
	return p.levels[rank]
}

// LevelUp raises rank by one planet step. Straight flush also raises royal
// flush; royal flush cannot be raised on its own.
func (p *Planetarium) LevelUp(rank card.HandRank) {
	up, ok := levelUps[rank]
	if !ok {
		return
	}
	p.apply(rank, up)
	if rank == card.StraightFlush {
		p.apply(card.RoyalFlush, up)
	}
}

func (p *Planetarium) apply(rank card.HandRank, up levelUp) {
	l := &p.levels[rank]
	l.Level += up.level
	l.Chips += up.chips
	l.Mult += up.mult
}

func (p *Planetarium) MarshalJSON() ([]byte, error) {
	out := make(map[string]Level, len(p.levels))
	for _, r := range card.HandRanks {
		out[r.String()] = p.levels[r]
	}
	return json.Marshal(out)
}

func (p *Planetarium) UnmarshalJSON(data []byte) error {
	var in map[string]Level
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	for _, r := range card.HandRanks {
		if l, ok := in[r.String()]; ok {
			p.levels[r] = l
		} else {
			p.levels[r] = baseLevels[r]
		}
	}
	return nil
}
