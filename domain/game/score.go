package game

import (
	"github.com/luca-patrignani/balatro/domain/card"
)

// CalcScore runs the scoring pipeline for a made hand:
// level chips and mult, then the chips of every scoring card, then each
// on-score hook in registry order. The accumulators are zero on return.
func (g *Game) CalcScore(made card.MadeHand) int {
	level := g.Planetarium.Play(made.Rank)
	g.Chips += level.Chips
	g.Mult += level.Mult

	for _, c := range made.Hand {
		g.Chips += c.Chips()
	}

	for _, e := range g.Registry.OnScore {
		g.applyEffect(e, made)
	}

	score := g.Chips * g.Mult
	g.log().Debug("hand scored",
		"hand", made.Rank.String(),
		"chips", g.Chips,
		"mult", g.Mult,
		"score", score,
	)
	g.Chips = 0
	g.Mult = 0
	return score
}
