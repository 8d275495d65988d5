package game

import (
	"fmt"
	"slices"
)

// The UnmaskActionSpace* helpers project the legality rules of the
// generators onto a space. A helper whose precondition fails leaves the
// space untouched.

func (g *Game) UnmaskActionSpaceSelectCards(s *ActionSpace) {
	if !g.Stage.IsBlind() || g.Available.SelectedCount() >= g.Config.SelectedMax {
		return
	}
	for i := range g.Available.Len() {
		if s.UnmaskSelectCard(i) != nil {
			return
		}
	}
}

func (g *Game) UnmaskActionSpacePlayAndDiscard(s *ActionSpace) {
	if !g.Stage.IsBlind() || g.Available.SelectedCount() == 0 {
		return
	}
	if g.Plays > 0 {
		s.UnmaskPlay()
	}
	if g.Discards > 0 {
		s.UnmaskDiscard()
	}
}

// UnmaskActionSpaceMoveCards opens move-left slot i for the card at i+1 and
// move-right slot i for the card at i.
func (g *Game) UnmaskActionSpaceMoveCards(s *ActionSpace) {
	if !g.Stage.IsBlind() {
		return
	}
	n := g.Available.Len()
	for i := 1; i < n; i++ {
		if s.UnmaskMoveCardLeft(i-1) != nil {
			break
		}
	}
	for i := 0; i < n-1; i++ {
		if s.UnmaskMoveCardRight(i) != nil {
			break
		}
	}
}

func (g *Game) UnmaskActionSpaceCashOut(s *ActionSpace) {
	if g.Stage != PostBlindStage() {
		return
	}
	s.UnmaskCashOut()
}

func (g *Game) UnmaskActionSpaceNextRound(s *ActionSpace) {
	if g.Stage != ShopStage() {
		return
	}
	s.UnmaskNextRound()
}

func (g *Game) UnmaskActionSpaceSelectBlind(s *ActionSpace) {
	if g.Stage != PreBlindStage() {
		return
	}
	s.UnmaskSelectBlind()
}

func (g *Game) UnmaskActionSpaceBuyJoker(s *ActionSpace) {
	if g.Stage != ShopStage() || len(g.Jokers) >= g.Config.JokerSlots {
		return
	}
	for i, j := range g.Shop.Jokers {
		if j.Cost() > g.Money {
			continue
		}
		if s.UnmaskBuyJoker(i) != nil {
			return
		}
	}
}

// GenActionSpace returns the mask of every action legal right now.
func (g *Game) GenActionSpace() ActionSpace {
	s := NewActionSpace(g.Config)
	g.UnmaskActionSpaceSelectCards(&s)
	g.UnmaskActionSpacePlayAndDiscard(&s)
	g.UnmaskActionSpaceMoveCards(&s)
	g.UnmaskActionSpaceCashOut(&s)
	g.UnmaskActionSpaceBuyJoker(&s)
	g.UnmaskActionSpaceNextRound(&s)
	g.UnmaskActionSpaceSelectBlind(&s)
	return s
}

// ActionFromIndex decodes a flat index of the action space against the
// current state. It does not check the mask.
func (g *Game) ActionFromIndex(index int) (Action, error) {
	s := NewActionSpace(g.Config)
	seg, i, err := s.Locate(index)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %d", err, index)
	}
	switch seg {
	case SegmentSelectCard:
		c, ok := g.Available.At(i)
		if !ok {
			return Action{}, fmt.Errorf("%w: no card at %d", ErrNoCardMatch, i)
		}
		return SelectCardAction(c), nil
	case SegmentMoveCardLeft:
		c, ok := g.Available.At(i + 1)
		if !ok {
			return Action{}, fmt.Errorf("%w: no card at %d", ErrNoCardMatch, i+1)
		}
		return MoveCardAction(Left, c), nil
	case SegmentMoveCardRight:
		c, ok := g.Available.At(i)
		if !ok || i+1 >= g.Available.Len() {
			return Action{}, fmt.Errorf("%w: no card at %d with a right neighbour", ErrNoCardMatch, i)
		}
		return MoveCardAction(Right, c), nil
	case SegmentPlay:
		return PlayAction(), nil
	case SegmentDiscard:
		return DiscardAction(), nil
	case SegmentCashOut:
		return CashOutAction(g.Reward), nil
	case SegmentBuyJoker:
		if i >= len(g.Shop.Jokers) {
			return Action{}, fmt.Errorf("%w: no joker at %d", ErrNoShopMatch, i)
		}
		return BuyJokerSlotAction(g.Shop.Jokers[i], i), nil
	case SegmentNextRound:
		return NextRoundAction(), nil
	case SegmentSelectBlind:
		return SelectBlindAction(g.expectedBlind()), nil
	}
	return Action{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
}

// ActionIndex encodes a against the current state. Plays and discards of an
// explicit hand have no slot.
func (g *Game) ActionIndex(a Action) (int, error) {
	s := NewActionSpace(g.Config)
	switch a.Type {
	case ActionSelectCard:
		if a.Card == nil {
			return 0, ErrInvalidAction
		}
		i := g.Available.Index(*a.Card)
		if i < 0 {
			return 0, ErrNoCardMatch
		}
		return s.Index(SegmentSelectCard, i)
	case ActionMoveCard:
		i, err := g.moveSource(a)
		if err != nil {
			return 0, err
		}
		switch a.Direction {
		case Left:
			if i == 0 {
				return 0, ErrInvalidMoveDirection
			}
			return s.Index(SegmentMoveCardLeft, i-1)
		case Right:
			if i >= g.Available.Len()-1 {
				return 0, ErrInvalidMoveDirection
			}
			return s.Index(SegmentMoveCardRight, i)
		}
		return 0, ErrInvalidMoveDirection
	case ActionPlay:
		if a.Hand != nil {
			return 0, fmt.Errorf("%w: explicit hands are not encoded", ErrInvalidAction)
		}
		return s.Index(SegmentPlay, 0)
	case ActionDiscard:
		if a.Hand != nil {
			return 0, fmt.Errorf("%w: explicit hands are not encoded", ErrInvalidAction)
		}
		return s.Index(SegmentDiscard, 0)
	case ActionCashOut:
		return s.Index(SegmentCashOut, 0)
	case ActionBuyJoker:
		i := slices.Index(g.Shop.Jokers, a.Joker)
		if a.Slot != nil {
			i = *a.Slot
		}
		if !g.Shop.jokerAt(i, a.Joker) {
			return 0, ErrNoShopMatch
		}
		return s.Index(SegmentBuyJoker, i)
	case ActionNextRound:
		return s.Index(SegmentNextRound, 0)
	case ActionSelectBlind:
		return s.Index(SegmentSelectBlind, 0)
	}
	return 0, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, a.Type)
}

func (g *Game) moveSource(a Action) (int, error) {
	if a.Card == nil {
		return g.Available.SelectedIndex()
	}
	i := g.Available.Index(*a.Card)
	if i < 0 {
		return 0, ErrNoCardMatch
	}
	return i, nil
}

// HandleActionIndex applies the action at index, which must be unmasked.
// It returns the decoded action.
func (g *Game) HandleActionIndex(index int) (Action, error) {
	s := g.GenActionSpace()
	if index < 0 || index >= s.Size() {
		return Action{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if s.Vector()[index] == 0 {
		return Action{}, fmt.Errorf("%w: index %d is masked", ErrInvalidAction, index)
	}
	a, err := g.ActionFromIndex(index)
	if err != nil {
		return Action{}, err
	}
	return a, g.HandleAction(a)
}
