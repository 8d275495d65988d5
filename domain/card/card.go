package card

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a playing card (0-3: clubs, diamonds, hearts, spades).
type Suit uint8

const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Suits lists every suit in deck order.
var Suits = []Suit{Club, Diamond, Heart, Spade}

func (s Suit) String() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	default:
		return "?"
	}
}

// Value is the rank of a card. Ace is stored as 1 but plays high everywhere
// except in the wheel straight (A-2-3-4-5).
type Value uint8

const (
	Ace   Value = 1
	Two   Value = 2
	Three Value = 3
	Four  Value = 4
	Five  Value = 5
	Six   Value = 6
	Seven Value = 7
	Eight Value = 8
	Nine  Value = 9
	Ten   Value = 10
	Jack  Value = 11
	Queen Value = 12
	King  Value = 13
)

// Values lists every value in deck order.
var Values = []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// Order returns the value used for comparisons, with the ace ranked above the king.
func (v Value) Order() int {
	if v == Ace {
		return 14
	}
	return int(v)
}

func (v Value) String() string {
	switch v {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(v))
	}
}

// Card is a playing card. ID distinguishes physical copies of the same value
// and suit; cards built with NewCard carry ID 0.
type Card struct {
	Value Value `json:"value"`
	Suit  Suit  `json:"suit"`
	ID    int   `json:"id"`
}

var ErrInvalidCard = errors.New("invalid card")

// NewCard creates a card with the zero ID.
func NewCard(v Value, s Suit) Card {
	return Card{Value: v, Suit: s}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with values ace through king within each suit.
// The raw number becomes the card ID.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("%w: raw value %d", ErrInvalidCard, rawCard)
	}
	return Card{
		Suit:  Suit((rawCard - 1) / 13),
		Value: Value(((rawCard - 1) % 13) + 1),
		ID:    rawCard,
	}, nil
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(c Card) int {
	return int(c.Suit)*13 + int(c.Value)
}

// Chips returns the chips a card contributes when it scores:
// face value for 2-10, 10 for court cards and 11 for the ace.
func (c Card) Chips() int {
	switch c.Value {
	case Ace:
		return 11
	case Jack, Queen, King:
		return 10
	default:
		return int(c.Value)
	}
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and value abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Diamond, Heart:
		suit = pterm.LightRed(c.Suit.String())
	default:
		suit = pterm.Black(c.Suit.String())
	}
	return c.Value.String() + suit
}
