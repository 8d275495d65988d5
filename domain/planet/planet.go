package planet

import (
	"fmt"

	"github.com/luca-patrignani/balatro/domain/card"
)

// Planets is the closed set of planet cards. Each one levels a single hand rank.
type Planets int

const (
	Pluto Planets = iota
	Mercury
	Uranus
	Venus
	Saturn
	Jupiter
	Earth
	Mars
	Neptune
	PlanetX
	Ceres
	Eris
)

// All lists every planet in catalog order.
var All = []Planets{Pluto, Mercury, Uranus, Venus, Saturn, Jupiter, Earth, Mars, Neptune, PlanetX, Ceres, Eris}

// Cost is the shop price of any planet.
const Cost = 3

var planetRanks = map[Planets]card.HandRank{
	Pluto:   card.HighCard,
	Mercury: card.OnePair,
	Uranus:  card.TwoPair,
	Venus:   card.ThreeOfAKind,
	Saturn:  card.Straight,
	Jupiter: card.Flush,
	Earth:   card.FullHouse,
	Mars:    card.FourOfAKind,
	Neptune: card.StraightFlush,
	PlanetX: card.FiveOfAKind,
	Ceres:   card.FlushHouse,
	Eris:    card.FlushFive,
}

var planetNames = map[Planets]string{
	Pluto:   "Pluto",
	Mercury: "Mercury",
	Uranus:  "Uranus",
	Venus:   "Venus",
	Saturn:  "Saturn",
	Jupiter: "Jupiter",
	Earth:   "Earth",
	Mars:    "Mars",
	Neptune: "Neptune",
	PlanetX: "Planet X",
	Ceres:   "Ceres",
	Eris:    "Eris",
}

func (p Planets) Name() string {
	if name, ok := planetNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Planet(%d)", int(p))
}

func (p Planets) String() string { return p.Name() }

// HandRank returns the rank this planet levels up.
func (p Planets) HandRank() card.HandRank {
	return planetRanks[p]
}

func (p Planets) Desc() string {
	return fmt.Sprintf("Level up %s", p.HandRank())
}

// Effect applies the planet to the planetarium immediately.
func (p Planets) Effect(pl *Planetarium) {
	pl.LevelUp(p.HandRank())
}
