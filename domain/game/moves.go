package game

import (
	"iter"

	"github.com/luca-patrignani/balatro/domain/card"
)

// GenMovesPlay yields a play for every subset of 1 to 5 available cards,
// largest subsets first.
func (g *Game) GenMovesPlay() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Plays <= 0 {
		return nil, false
	}
	return subsetActions(g.Available.Cards(), PlayHandAction), true
}

// GenMovesDiscard yields a discard for every subset of 1 to 5 available cards.
func (g *Game) GenMovesDiscard() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Discards <= 0 {
		return nil, false
	}
	return subsetActions(g.Available.Cards(), DiscardHandAction), true
}

// GenMovesMoveCard yields every legal swap: left for all but the first card,
// right for all but the last.
func (g *Game) GenMovesMoveCard() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Available.Len() < 2 {
		return nil, false
	}
	cards := g.Available.Cards()
	return func(yield func(Action) bool) {
		for i, c := range cards {
			if i > 0 && !yield(MoveCardAction(Left, c)) {
				return
			}
			if i < len(cards)-1 && !yield(MoveCardAction(Right, c)) {
				return
			}
		}
	}, true
}

// Moves chains every legal concrete move: play, discard, move-card,
// cash-out, next-round, select-blind, buy-joker.
func (g *Game) Moves() iter.Seq[Action] {
	return chain(
		g.GenMovesPlay,
		g.GenMovesDiscard,
		g.GenMovesMoveCard,
		g.GenActionsCashOut,
		g.GenActionsNextRound,
		g.GenActionsSelectBlind,
		g.GenActionsBuyJoker,
	)
}

func subsetActions(cards []card.Card, mk func(card.SelectHand) Action) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for k := min(card.MaxHandSize, len(cards)); k >= 1; k-- {
			for combo := range Combinations(cards, k) {
				if !yield(mk(card.NewSelectHand(combo))) {
					return
				}
			}
		}
	}
}

// Combinations yields every k-element subset of cards in lexicographic
// index order. The yielded slice is reused between iterations.
func Combinations(cards []card.Card, k int) iter.Seq[[]card.Card] {
	return func(yield func([]card.Card) bool) {
		n := len(cards)
		if k <= 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		out := make([]card.Card, k)
		for {
			for i, j := range idx {
				out[i] = cards[j]
			}
			if !yield(out) {
				return
			}
			// advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
