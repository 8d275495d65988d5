package game

import (
	"fmt"

	"github.com/luca-patrignani/balatro/domain/card"
)

// HandleAction applies a to the game. Rejected actions leave the game
// untouched and are not recorded in the history.
func (g *Game) HandleAction(a Action) error {
	if err := g.applyAction(a); err != nil {
		return err
	}
	g.ActionHistory = append(g.ActionHistory, a)
	return nil
}

func (g *Game) applyAction(a Action) error {
	switch a.Type {
	case ActionSelectCard:
		if !g.Stage.IsBlind() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		if a.Card == nil {
			return fmt.Errorf("%w: select without card", ErrInvalidAction)
		}
		return g.SelectCard(*a.Card)
	case ActionMoveCard:
		if !g.Stage.IsBlind() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		if a.Card == nil {
			return g.MoveSelected(a.Direction)
		}
		return g.MoveCard(a.Direction, *a.Card)
	case ActionPlay:
		if !g.Stage.IsBlind() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		if a.Hand == nil {
			return g.PlaySelected()
		}
		return g.Play(card.NewSelectHand(a.Hand))
	case ActionDiscard:
		if !g.Stage.IsBlind() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		if a.Hand == nil {
			return g.DiscardSelected()
		}
		return g.Discard(card.NewSelectHand(a.Hand))
	case ActionCashOut:
		if g.Stage != PostBlindStage() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		_, err := g.Cashout()
		return err
	case ActionBuyJoker:
		if g.Stage != ShopStage() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		if a.Slot != nil {
			return g.BuyJokerAt(*a.Slot, a.Joker)
		}
		return g.BuyJoker(a.Joker)
	case ActionNextRound:
		if g.Stage != ShopStage() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		return g.NextRound()
	case ActionSelectBlind:
		if g.Stage != PreBlindStage() {
			return fmt.Errorf("%w: %s in %s", ErrInvalidAction, a.Type, g.Stage)
		}
		return g.SelectBlind(a.Blind)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidAction, a.Type)
	}
}
