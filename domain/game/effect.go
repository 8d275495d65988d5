package game

import (
	"github.com/luca-patrignani/balatro/domain/card"
)

// Trigger is the moment of the game an effect hooks into.
type Trigger string

const OnScore Trigger = "on_score"

// Effect is a registered hook. It is plain data: the behaviour lives in
// Game.applyEffect, keyed by the joker that registered it.
type Effect struct {
	Trigger Trigger `json:"trigger"`
	Joker   Jokers  `json:"joker"`
}

// EffectRegistry holds the hooks of the owned jokers, in acquisition order.
type EffectRegistry struct {
	OnScore []Effect `json:"on_score"`
}

// Register rebuilds the registry from jokers.
func (r *EffectRegistry) Register(jokers []Jokers, g *Game) {
	r.OnScore = r.OnScore[:0]
	for _, j := range jokers {
		for _, e := range j.Effects(g) {
			if e.Trigger == OnScore {
				r.OnScore = append(r.OnScore, e)
			}
		}
	}
}

func (r *EffectRegistry) Len() int {
	return len(r.OnScore)
}

// applyEffect runs one hook against the chip and mult accumulators.
func (g *Game) applyEffect(e Effect, made card.MadeHand) {
	switch e.Joker {
	case TheJoker:
		g.Mult += 4
	case GreedyJoker:
		g.Mult += 3 * countSuit(made.Hand, card.Diamond)
	case LustyJoker:
		g.Mult += 3 * countSuit(made.Hand, card.Heart)
	case WrathfulJoker:
		g.Mult += 3 * countSuit(made.Hand, card.Spade)
	case GluttonousJoker:
		g.Mult += 3 * countSuit(made.Hand, card.Club)
	case JollyJoker:
		if containsPair(made.Rank) {
			g.Mult += 8
		}
	case ZanyJoker:
		if containsThree(made.Rank) {
			g.Mult += 12
		}
	case SlyJoker:
		if containsPair(made.Rank) {
			g.Chips += 50
		}
	case WilyJoker:
		if containsThree(made.Rank) {
			g.Chips += 100
		}
	case Banner:
		g.Chips += 30 * g.Discards
	case MysticSummit:
		if g.Discards == 0 {
			g.Mult += 15
		}
	default:
		panic("no effect for joker " + e.Joker.String())
	}
}

func countSuit(cards []card.Card, s card.Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == s {
			n++
		}
	}
	return n
}

func containsPair(r card.HandRank) bool {
	switch r {
	case card.OnePair, card.TwoPair, card.ThreeOfAKind, card.FullHouse,
		card.FourOfAKind, card.FiveOfAKind, card.FlushHouse, card.FlushFive:
		return true
	}
	return false
}

func containsThree(r card.HandRank) bool {
	switch r {
	case card.ThreeOfAKind, card.FullHouse, card.FourOfAKind,
		card.FiveOfAKind, card.FlushHouse, card.FlushFive:
		return true
	}
	return false
}
