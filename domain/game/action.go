package game

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/balatro/domain/card"
)

type ActionType string

const (
	ActionSelectCard  ActionType = "select_card"
	ActionMoveCard    ActionType = "move_card"
	ActionPlay        ActionType = "play"
	ActionDiscard     ActionType = "discard"
	ActionCashOut     ActionType = "cash_out"
	ActionBuyJoker    ActionType = "buy_joker"
	ActionNextRound   ActionType = "next_round"
	ActionSelectBlind ActionType = "select_blind"
)

type MoveDirection string

const (
	Left  MoveDirection = "left"
	Right MoveDirection = "right"
)

// Action is a player intent. Only the fields relevant to Type are set:
//   - SelectCard: Card
//   - MoveCard: Direction, and Card unless the single selected card moves
//   - Play, Discard: Hand, or nil Hand to use the current selection
//   - CashOut: Reward
//   - BuyJoker: Joker, and Slot when a specific shop slot is bought
//   - SelectBlind: Blind
type Action struct {
	Type      ActionType    `json:"type"`
	Card      *card.Card    `json:"card,omitempty"`
	Direction MoveDirection `json:"direction,omitempty"`
	Hand      []card.Card   `json:"hand,omitempty"`
	Blind     Blind         `json:"blind,omitempty"`
	Joker     Jokers        `json:"joker,omitempty"`
	Slot      *int          `json:"slot,omitempty"`
	Reward    int           `json:"reward,omitempty"`
}

func SelectCardAction(c card.Card) Action {
	return Action{Type: ActionSelectCard, Card: &c}
}

// MoveSelectedAction moves the single selected card.
func MoveSelectedAction(d MoveDirection) Action {
	return Action{Type: ActionMoveCard, Direction: d}
}

func MoveCardAction(d MoveDirection, c card.Card) Action {
	return Action{Type: ActionMoveCard, Direction: d, Card: &c}
}

// PlayAction plays the current selection.
func PlayAction() Action {
	return Action{Type: ActionPlay}
}

func PlayHandAction(h card.SelectHand) Action {
	return Action{Type: ActionPlay, Hand: h.Cards()}
}

// DiscardAction discards the current selection.
func DiscardAction() Action {
	return Action{Type: ActionDiscard}
}

func DiscardHandAction(h card.SelectHand) Action {
	return Action{Type: ActionDiscard, Hand: h.Cards()}
}

func CashOutAction(reward int) Action {
	return Action{Type: ActionCashOut, Reward: reward}
}

// BuyJokerAction buys the first copy of j in the shop.
func BuyJokerAction(j Jokers) Action {
	return Action{Type: ActionBuyJoker, Joker: j}
}

// BuyJokerSlotAction buys the joker j held in shop slot i.
func BuyJokerSlotAction(j Jokers, i int) Action {
	return Action{Type: ActionBuyJoker, Joker: j, Slot: &i}
}

func NextRoundAction() Action {
	return Action{Type: ActionNextRound}
}

func SelectBlindAction(b Blind) Action {
	return Action{Type: ActionSelectBlind, Blind: b}
}

func (a Action) String() string {
	switch a.Type {
	case ActionSelectCard:
		return fmt.Sprintf("select %s", a.cardString())
	case ActionMoveCard:
		if a.Card == nil {
			return fmt.Sprintf("move selected %s", a.Direction)
		}
		return fmt.Sprintf("move %s %s", a.cardString(), a.Direction)
	case ActionPlay, ActionDiscard:
		if a.Hand == nil {
			return fmt.Sprintf("%s selected", a.Type)
		}
		return fmt.Sprintf("%s %s", a.Type, handString(a.Hand))
	case ActionCashOut:
		return fmt.Sprintf("cash out $%d", a.Reward)
	case ActionBuyJoker:
		return fmt.Sprintf("buy %s ($%d)", a.Joker, a.Joker.Cost())
	case ActionSelectBlind:
		return fmt.Sprintf("select %s blind", a.Blind)
	case ActionNextRound:
		return "next round"
	default:
		return string(a.Type)
	}
}

func (a Action) cardString() string {
	if a.Card == nil {
		return "?"
	}
	return a.Card.String()
}

func handString(cards []card.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
