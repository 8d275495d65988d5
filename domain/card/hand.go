package card

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandRank is the poker category of a played hand, from HighCard up to FlushFive.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// NumHandRanks is the number of hand ranks.
const NumHandRanks = int(FlushFive) + 1

// HandRanks lists every rank in ascending order.
var HandRanks = []HandRank{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse,
	FourOfAKind, StraightFlush, RoyalFlush, FiveOfAKind, FlushHouse, FlushFive,
}

var handRankNames = map[HandRank]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
	FiveOfAKind:   "Five of a Kind",
	FlushHouse:    "Flush House",
	FlushFive:     "Flush Five",
}

func (r HandRank) String() string {
	if name, ok := handRankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("HandRank(%d)", int(r))
}

// MaxHandSize is the largest number of cards a played hand may contain.
const MaxHandSize = 5

var (
	ErrTooManyCards = errors.New("played hand contains more than 5 cards")
	ErrNoCards      = errors.New("played hand contains no cards")
	ErrUnknownHand  = errors.New("played hand could not determine best hand")
)

// SelectHand is an ordered selection of cards submitted for play or discard.
type SelectHand struct {
	cards []Card
}

// NewSelectHand copies cards into a new selection, preserving their order.
func NewSelectHand(cards []Card) SelectHand {
	return SelectHand{cards: slices.Clone(cards)}
}

// Cards returns a copy of the selected cards.
func (h SelectHand) Cards() []Card {
	return slices.Clone(h.cards)
}

func (h SelectHand) Len() int {
	return len(h.cards)
}

func (h SelectHand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MadeHand is the result of evaluating a selection: its rank and the
// cards that actually score for that rank.
type MadeHand struct {
	Rank HandRank `json:"rank"`
	Hand []Card   `json:"hand"`
	All  []Card   `json:"all"`
}

// BestHand reduces the selection to its strongest hand rank.
// Only the cards forming the rank are kept in Hand, in selection order.
func (h SelectHand) BestHand() (MadeHand, error) {
	n := len(h.cards)
	if n == 0 {
		return MadeHand{}, ErrNoCards
	}
	if n > MaxHandSize {
		return MadeHand{}, ErrTooManyCards
	}

	groups := groupByValue(h.cards)
	flush := n == MaxHandSize && sameSuit(h.cards)
	straight, royal := isStraight(h.cards)

	made := func(rank HandRank, scoring []Card) (MadeHand, error) {
		return MadeHand{Rank: rank, Hand: scoring, All: h.Cards()}, nil
	}

	switch {
	case n == MaxHandSize && groups[0].count == 5:
		if flush {
			return made(FlushFive, h.Cards())
		}
		return made(FiveOfAKind, h.Cards())
	case flush && groups[0].count == 3 && len(groups) == 2:
		return made(FlushHouse, h.Cards())
	case straight && flush:
		if royal {
			return made(RoyalFlush, h.Cards())
		}
		return made(StraightFlush, h.Cards())
	case groups[0].count == 4:
		return made(FourOfAKind, h.pick(groups[0].value))
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count == 2:
		return made(FullHouse, h.Cards())
	case flush:
		return made(Flush, h.Cards())
	case straight:
		return made(Straight, h.Cards())
	case groups[0].count == 3:
		return made(ThreeOfAKind, h.pick(groups[0].value))
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		return made(TwoPair, h.pick(groups[0].value, groups[1].value))
	case groups[0].count == 2:
		return made(OnePair, h.pick(groups[0].value))
	case groups[0].count == 1:
		return made(HighCard, h.pick(groups[0].value)[:1])
	}
	return MadeHand{}, ErrUnknownHand
}

// pick returns the selected cards having one of the given values, in selection order.
func (h SelectHand) pick(values ...Value) []Card {
	var out []Card
	for _, c := range h.cards {
		if slices.Contains(values, c.Value) {
			out = append(out, c)
		}
	}
	return out
}

type valueGroup struct {
	value Value
	count int
}

// groupByValue counts cards per value, sorted by count then by value, both descending.
func groupByValue(cards []Card) []valueGroup {
	counts := make(map[Value]int)
	for _, c := range cards {
		counts[c.Value]++
	}
	groups := make([]valueGroup, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, valueGroup{value: v, count: n})
	}
	slices.SortFunc(groups, func(a, b valueGroup) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return b.value.Order() - a.value.Order()
	})
	return groups
}

func sameSuit(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight reports whether five cards have consecutive values, and whether
// the straight runs ten to ace.
func isStraight(cards []Card) (straight bool, royal bool) {
	if len(cards) != MaxHandSize {
		return false, false
	}
	orders := make([]int, len(cards))
	for i, c := range cards {
		orders[i] = c.Value.Order()
	}
	slices.Sort(orders)
	if slices.Equal(orders, []int{2, 3, 4, 5, 14}) {
		return true, false
	}
	for i := 1; i < len(orders); i++ {
		if orders[i] != orders[i-1]+1 {
			return false, false
		}
	}
	return true, orders[0] == 10
}
