package game

import (
	"fmt"
)

// Segment names a sub-range of the action space.
type Segment string

const (
	SegmentSelectCard    Segment = "select_card"
	SegmentMoveCardLeft  Segment = "move_card_left"
	SegmentMoveCardRight Segment = "move_card_right"
	SegmentPlay          Segment = "play"
	SegmentDiscard       Segment = "discard"
	SegmentCashOut       Segment = "cash_out"
	SegmentBuyJoker      Segment = "buy_joker"
	SegmentNextRound     Segment = "next_round"
	SegmentSelectBlind   Segment = "select_blind"
)

// Range is the position of a segment in the flat vector.
type Range struct {
	Segment Segment
	Offset  int
	Width   int
}

// ActionSpace is a fixed-width mask of the discrete actions, split into
// segments in this order: select-card, move-left, move-right, play, discard,
// cash-out, buy-joker, next-round, select-blind. Every slot starts masked (0).
type ActionSpace struct {
	SelectCard    []int `json:"select_card"`
	MoveCardLeft  []int `json:"move_card_left"`
	MoveCardRight []int `json:"move_card_right"`
	Play          []int `json:"play"`
	Discard       []int `json:"discard"`
	CashOut       []int `json:"cash_out"`
	BuyJoker      []int `json:"buy_joker"`
	NextRound     []int `json:"next_round"`
	SelectBlind   []int `json:"select_blind"`
}

// NewActionSpace sizes a fully masked space from cfg. It panics when
// AvailableMax < 1 or StoreConsumableSlotsMax < 0.
func NewActionSpace(cfg Config) ActionSpace {
	if cfg.AvailableMax < 1 {
		panic(fmt.Sprintf("action space: available_max must be positive, got %d", cfg.AvailableMax))
	}
	if cfg.StoreConsumableSlotsMax < 0 {
		panic(fmt.Sprintf("action space: store_consumable_slots_max must not be negative, got %d", cfg.StoreConsumableSlotsMax))
	}
	return ActionSpace{
		SelectCard:    make([]int, cfg.AvailableMax),
		MoveCardLeft:  make([]int, cfg.AvailableMax-1),
		MoveCardRight: make([]int, cfg.AvailableMax-1),
		Play:          make([]int, 1),
		Discard:       make([]int, 1),
		CashOut:       make([]int, 1),
		BuyJoker:      make([]int, cfg.StoreConsumableSlotsMax),
		NextRound:     make([]int, 1),
		SelectBlind:   make([]int, 1),
	}
}

func (s ActionSpace) segments() []struct {
	name  Segment
	slots []int
} {
	return []struct {
		name  Segment
		slots []int
	}{
		{SegmentSelectCard, s.SelectCard},
		{SegmentMoveCardLeft, s.MoveCardLeft},
		{SegmentMoveCardRight, s.MoveCardRight},
		{SegmentPlay, s.Play},
		{SegmentDiscard, s.Discard},
		{SegmentCashOut, s.CashOut},
		{SegmentBuyJoker, s.BuyJoker},
		{SegmentNextRound, s.NextRound},
		{SegmentSelectBlind, s.SelectBlind},
	}
}

func (s ActionSpace) Size() int {
	n := 0
	for _, seg := range s.segments() {
		n += len(seg.slots)
	}
	return n
}

// Layout returns the segments in vector order.
func (s ActionSpace) Layout() []Range {
	var out []Range
	offset := 0
	for _, seg := range s.segments() {
		out = append(out, Range{Segment: seg.name, Offset: offset, Width: len(seg.slots)})
		offset += len(seg.slots)
	}
	return out
}

// Locate maps a flat index to its segment and the position inside it.
func (s ActionSpace) Locate(index int) (Segment, int, error) {
	if index < 0 {
		return "", 0, ErrInvalidIndex
	}
	for _, r := range s.Layout() {
		if index < r.Offset+r.Width {
			return r.Segment, index - r.Offset, nil
		}
	}
	return "", 0, ErrInvalidIndex
}

// Index maps a segment position back to its flat index.
func (s ActionSpace) Index(seg Segment, i int) (int, error) {
	for _, r := range s.Layout() {
		if r.Segment != seg {
			continue
		}
		if i < 0 || i >= r.Width {
			return 0, ErrInvalidIndex
		}
		return r.Offset + i, nil
	}
	return 0, fmt.Errorf("%w: unknown segment %q", ErrInvalidIndex, seg)
}

// Vector flattens the segments in layout order.
func (s ActionSpace) Vector() []int {
	out := make([]int, 0, s.Size())
	for _, seg := range s.segments() {
		out = append(out, seg.slots...)
	}
	return out
}

func unmask(slots []int, i int) error {
	if i < 0 || i >= len(slots) {
		return ErrInvalidIndex
	}
	slots[i] = 1
	return nil
}

func (s *ActionSpace) UnmaskSelectCard(i int) error    { return unmask(s.SelectCard, i) }
func (s *ActionSpace) UnmaskMoveCardLeft(i int) error  { return unmask(s.MoveCardLeft, i) }
func (s *ActionSpace) UnmaskMoveCardRight(i int) error { return unmask(s.MoveCardRight, i) }
func (s *ActionSpace) UnmaskBuyJoker(i int) error      { return unmask(s.BuyJoker, i) }
func (s *ActionSpace) UnmaskPlay()                     { s.Play[0] = 1 }
func (s *ActionSpace) UnmaskDiscard()                  { s.Discard[0] = 1 }
func (s *ActionSpace) UnmaskCashOut()                  { s.CashOut[0] = 1 }
func (s *ActionSpace) UnmaskNextRound()                { s.NextRound[0] = 1 }
func (s *ActionSpace) UnmaskSelectBlind()              { s.SelectBlind[0] = 1 }
