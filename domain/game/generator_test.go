package game

import (
	"slices"
	"testing"

	"github.com/luca-patrignani/balatro/domain/card"
)

func nCards(n int) []card.Card {
	out := make([]card.Card, n)
	for i := range out {
		out[i] = mk(card.Values[i%len(card.Values)], card.Suits[i/len(card.Values)])
	}
	return out
}

func TestGenMovesPlayCount(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 3},
		{3, 7},
		{5, 31},
		{8, 218},
	}
	for _, tt := range tests {
		g := blindGame(t, nCards(tt.n)...)
		seq, ok := g.GenMovesPlay()
		if !ok {
			t.Fatalf("n=%d: play not offered", tt.n)
		}
		if got := len(slices.Collect(seq)); got != tt.want {
			t.Fatalf("n=%d: %d plays, want %d", tt.n, got, tt.want)
		}
		seq, _ = g.GenMovesDiscard()
		if got := len(slices.Collect(seq)); got != tt.want {
			t.Fatalf("n=%d: %d discards, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGenMovesPlayOrder(t *testing.T) {
	cards := nCards(3)
	g := blindGame(t, cards...)
	seq, _ := g.GenMovesPlay()
	moves := slices.Collect(seq)
	if len(moves[0].Hand) != 3 || len(moves[len(moves)-1].Hand) != 1 {
		t.Fatalf("subsets not largest first: %v", moves)
	}
	if moves[1].Hand[0] != cards[0] || moves[1].Hand[1] != cards[1] {
		t.Fatalf("first pair = %v", moves[1].Hand)
	}
	for _, m := range moves {
		if m.Type != ActionPlay {
			t.Fatalf("unexpected %v", m)
		}
	}
}

func TestGenMovesAreRestartable(t *testing.T) {
	g := blindGame(t, nCards(6)...)
	seq, _ := g.GenMovesPlay()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if len(first) != len(second) {
		t.Fatalf("second pass yielded %d, first %d", len(second), len(first))
	}
	taken := 0
	for range seq {
		taken++
		if taken == 2 {
			break
		}
	}
	if taken != 2 {
		t.Fatal("early stop failed")
	}
}

func TestGenMovesMoveCard(t *testing.T) {
	cards := nCards(4)
	g := blindGame(t, cards...)
	seq, ok := g.GenMovesMoveCard()
	if !ok {
		t.Fatal("move not offered")
	}
	moves := slices.Collect(seq)
	if len(moves) != 2*len(cards)-2 {
		t.Fatalf("%d moves, want %d", len(moves), 2*len(cards)-2)
	}
	for _, m := range moves {
		if *m.Card == cards[0] && m.Direction == Left {
			t.Fatal("first card offered left")
		}
		if *m.Card == cards[3] && m.Direction == Right {
			t.Fatal("last card offered right")
		}
	}
	for _, m := range moves {
		if err := blindGame(t, cards...).HandleAction(m); err != nil {
			t.Fatalf("%v: %v", m, err)
		}
	}
}

func TestGenMovesMoveCardNeedsTwoCards(t *testing.T) {
	for n := range 2 {
		g := blindGame(t, nCards(n)...)
		if seq, ok := g.GenMovesMoveCard(); ok {
			t.Fatalf("%d cards: move offered with %d moves", n, len(slices.Collect(seq)))
		}
	}
	if _, ok := blindGame(t, nCards(2)...).GenMovesMoveCard(); !ok {
		t.Fatal("2 cards: move not offered")
	}
}

func TestGenMovesOutsideBlind(t *testing.T) {
	g := newTestGame(t)
	if _, ok := g.GenMovesPlay(); ok {
		t.Fatal("play offered outside a blind")
	}
	if _, ok := g.GenMovesDiscard(); ok {
		t.Fatal("discard offered outside a blind")
	}
	if _, ok := g.GenMovesMoveCard(); ok {
		t.Fatal("move offered outside a blind")
	}
	if _, ok := g.GenActionsSelectCard(); ok {
		t.Fatal("select offered outside a blind")
	}
}

func TestGenActionsSelection(t *testing.T) {
	cards := nCards(6)
	g := blindGame(t, cards...)

	if _, ok := g.GenActionsPlay(); ok {
		t.Fatal("play offered without selection")
	}
	if _, ok := g.GenActionsDiscard(); ok {
		t.Fatal("discard offered without selection")
	}
	if _, ok := g.GenActionsMoveCard(); ok {
		t.Fatal("move offered without selection")
	}

	seq, ok := g.GenActionsSelectCard()
	if !ok || len(slices.Collect(seq)) != 6 {
		t.Fatal("expected one select per available card")
	}

	if err := g.SelectCard(cards[0]); err != nil {
		t.Fatal(err)
	}
	if seq, ok := g.GenActionsMoveCard(); !ok || len(slices.Collect(seq)) != 2 {
		t.Fatal("expected left and right for a single selection")
	}
	if seq, ok := g.GenActionsPlay(); !ok || len(slices.Collect(seq)) != 1 {
		t.Fatal("expected one play")
	}

	if err := g.SelectCard(cards[1]); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.GenActionsMoveCard(); ok {
		t.Fatal("move offered with two selected cards")
	}

	g.Discards = 0
	if _, ok := g.GenActionsDiscard(); ok {
		t.Fatal("discard offered without discards")
	}

	for _, cc := range cards[2:5] {
		if err := g.SelectCard(cc); err != nil {
			t.Fatal(err)
		}
	}
	if _, ok := g.GenActionsSelectCard(); ok {
		t.Fatal("select offered with a full selection")
	}
}

func TestActionsAggregateOrder(t *testing.T) {
	cards := nCards(3)
	g := blindGame(t, cards...)
	if err := g.SelectCard(cards[1]); err != nil {
		t.Fatal(err)
	}
	var types []ActionType
	for a := range g.Actions() {
		types = append(types, a.Type)
	}
	want := []ActionType{
		ActionSelectCard, ActionSelectCard, ActionSelectCard,
		ActionPlay, ActionDiscard, ActionMoveCard, ActionMoveCard,
	}
	if !slices.Equal(types, want) {
		t.Fatalf("actions = %v, want %v", types, want)
	}
}

func TestActionsPerStage(t *testing.T) {
	g := newTestGame(t)
	actions := slices.Collect(g.Actions())
	if len(actions) != 1 || actions[0].Type != ActionSelectBlind || actions[0].Blind != Small {
		t.Fatalf("pre blind actions = %v", actions)
	}

	g.Stage = PostBlindStage()
	g.Reward = 9
	actions = slices.Collect(g.Actions())
	if len(actions) != 1 || actions[0].Type != ActionCashOut || actions[0].Reward != 9 {
		t.Fatalf("post blind actions = %v", actions)
	}

	g.Stage = ShopStage()
	g.Shop.Jokers = []Jokers{TheJoker, Banner}
	g.Money = 3
	actions = slices.Collect(g.Actions())
	if len(actions) != 2 || actions[0].Type != ActionNextRound || actions[1].Joker != TheJoker {
		t.Fatalf("shop actions = %v", actions)
	}

	g.Stage = EndStage(Win)
	if n := len(slices.Collect(g.Actions())); n != 0 {
		t.Fatalf("%d actions after the end", n)
	}
	if n := len(slices.Collect(g.Moves())); n != 0 {
		t.Fatalf("%d moves after the end", n)
	}
}

func TestCombinations(t *testing.T) {
	cards := nCards(5)
	var got [][]card.Card
	for combo := range Combinations(cards, 2) {
		got = append(got, slices.Clone(combo))
	}
	if len(got) != 10 {
		t.Fatalf("%d pairs, want 10", len(got))
	}
	if got[0][0] != cards[0] || got[0][1] != cards[1] || got[9][0] != cards[3] || got[9][1] != cards[4] {
		t.Fatalf("unexpected order: first %v last %v", got[0], got[9])
	}
	if n := len(slices.Collect(Combinations(cards, 6))); n != 0 {
		t.Fatalf("k > n yielded %d", n)
	}
	if n := len(slices.Collect(Combinations(cards, 0))); n != 0 {
		t.Fatalf("k = 0 yielded %d", n)
	}
}
