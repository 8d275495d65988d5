package game

import (
	"iter"
)

// Generators come in two flavours. The GenActions* family describes intents
// relative to the current selection and is what the action space encodes.
// The GenMoves* family (moves.go) names every concrete hand instead.
// Each returns false when the whole category is illegal in the current state.

func (g *Game) GenActionsSelectCard() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() {
		return nil, false
	}
	if g.Available.SelectedCount() >= g.Config.SelectedMax {
		return nil, false
	}
	cards := g.Available.Cards()
	return func(yield func(Action) bool) {
		for _, c := range cards {
			if !yield(SelectCardAction(c)) {
				return
			}
		}
	}, true
}

func (g *Game) GenActionsPlay() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Plays <= 0 || g.Available.SelectedCount() == 0 {
		return nil, false
	}
	return single(PlayAction()), true
}

func (g *Game) GenActionsDiscard() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Discards <= 0 || g.Available.SelectedCount() == 0 {
		return nil, false
	}
	return single(DiscardAction()), true
}

// GenActionsMoveCard offers both directions for the single selected card.
func (g *Game) GenActionsMoveCard() (iter.Seq[Action], bool) {
	if !g.Stage.IsBlind() || g.Available.SelectedCount() != 1 {
		return nil, false
	}
	return func(yield func(Action) bool) {
		if !yield(MoveSelectedAction(Left)) {
			return
		}
		yield(MoveSelectedAction(Right))
	}, true
}

func (g *Game) GenActionsCashOut() (iter.Seq[Action], bool) {
	if g.Stage != PostBlindStage() {
		return nil, false
	}
	return single(CashOutAction(g.Reward)), true
}

func (g *Game) GenActionsNextRound() (iter.Seq[Action], bool) {
	if g.Stage != ShopStage() {
		return nil, false
	}
	return single(NextRoundAction()), true
}

func (g *Game) GenActionsSelectBlind() (iter.Seq[Action], bool) {
	if g.Stage != PreBlindStage() {
		return nil, false
	}
	return single(SelectBlindAction(g.expectedBlind())), true
}

func (g *Game) GenActionsBuyJoker() (iter.Seq[Action], bool) {
	if g.Stage != ShopStage() || len(g.Jokers) >= g.Config.JokerSlots {
		return nil, false
	}
	return g.Shop.GenBuyJoker(g.Money), true
}

// Actions chains every legal selection-relative action: select-card, play,
// discard, move-card, cash-out, next-round, select-blind, buy-joker.
func (g *Game) Actions() iter.Seq[Action] {
	return chain(
		g.GenActionsSelectCard,
		g.GenActionsPlay,
		g.GenActionsDiscard,
		g.GenActionsMoveCard,
		g.GenActionsCashOut,
		g.GenActionsNextRound,
		g.GenActionsSelectBlind,
		g.GenActionsBuyJoker,
	)
}

func single(a Action) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		yield(a)
	}
}

// chain concatenates the legal categories. Each generator is evaluated when
// the sequence is ranged over, so the sequence always reflects the game's
// current state.
func chain(gens ...func() (iter.Seq[Action], bool)) iter.Seq[Action] {
	return func(yield func(Action) bool) {
		for _, gen := range gens {
			seq, ok := gen()
			if !ok {
				continue
			}
			for a := range seq {
				if !yield(a) {
					return
				}
			}
		}
	}
}
