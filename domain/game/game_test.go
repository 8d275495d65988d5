package game

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/balatro/domain/card"
	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/planet"
)

func TestStartDeals(t *testing.T) {
	g := newTestGame(t)
	if g.Stage != PreBlindStage() {
		t.Fatalf("stage = %v, want pre_blind", g.Stage)
	}
	if g.Available.Len() != g.Config.HandSize {
		t.Fatalf("available = %d, want %d", g.Available.Len(), g.Config.HandSize)
	}
	if g.Deck.Len()+g.Available.Len() != deck.DeckSize {
		t.Fatalf("cards lost: deck %d + available %d", g.Deck.Len(), g.Available.Len())
	}
	if g.Ante != AnteOne || g.Plays != 4 || g.Discards != 4 || g.Money != 0 {
		t.Fatalf("unexpected initial counters: %v", g)
	}
}

func TestSameSeedSameDeal(t *testing.T) {
	a := New(DefaultConfig(), deck.NewSeededShuffler(3))
	b := New(DefaultConfig(), deck.NewSeededShuffler(3))
	a.Start()
	b.Start()
	ac, bc := a.Available.Cards(), b.Available.Cards()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("deal differs at %d: %v vs %v", i, ac[i], bc[i])
		}
	}
}

func TestSelectBlindSequence(t *testing.T) {
	g := newTestGame(t)
	if err := g.SelectBlind(Big); !errors.Is(err, ErrInvalidBlind) {
		t.Fatalf("first blind Big: got %v, want ErrInvalidBlind", err)
	}
	if g.Stage != PreBlindStage() || g.Blind != nil {
		t.Fatal("failed select blind mutated the game")
	}
	if err := g.SelectBlind(Small); err != nil {
		t.Fatal(err)
	}
	if g.Stage != BlindStage(Small) {
		t.Fatalf("stage = %v", g.Stage)
	}
	if err := g.SelectBlind(Big); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("select blind during a blind: got %v, want ErrInvalidStage", err)
	}

	g.Stage = PreBlindStage()
	if err := g.SelectBlind(Boss); !errors.Is(err, ErrInvalidBlind) {
		t.Fatalf("Boss after Small: got %v, want ErrInvalidBlind", err)
	}
	if err := g.SelectBlind(Big); err != nil {
		t.Fatal(err)
	}
}

func TestBlindNextAndReward(t *testing.T) {
	tests := []struct {
		blind  Blind
		next   Blind
		reward int
	}{
		{Small, Big, 3},
		{Big, Boss, 4},
		{Boss, Small, 5},
	}
	for _, tt := range tests {
		if tt.blind.Next() != tt.next || tt.blind.Reward() != tt.reward {
			t.Fatalf("%v: next=%v reward=%d", tt.blind, tt.blind.Next(), tt.blind.Reward())
		}
	}
}

func TestRequiredScore(t *testing.T) {
	tests := []struct {
		ante  Ante
		blind Blind
		want  int
	}{
		{AnteOne, Small, 300},
		{AnteOne, Big, 450},
		{AnteOne, Boss, 600},
		{AnteZero, Big, 150},
		{AnteEight, Boss, 100000},
	}
	for _, tt := range tests {
		g := newTestGame(t)
		g.Ante = tt.ante
		g.Stage = BlindStage(tt.blind)
		got, err := g.RequiredScore()
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Fatalf("ante %d %v: got %d, want %d", tt.ante, tt.blind, got, tt.want)
		}
	}
	g := newTestGame(t)
	if _, err := g.RequiredScore(); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("outside blind: got %v, want ErrInvalidStage", err)
	}
}

func TestCalcReward(t *testing.T) {
	tests := []struct {
		name  string
		blind Blind
		money int
		plays int
		want  int
	}{
		{"no savings", Small, 0, 0, 3},
		{"interest floors", Big, 14, 0, 4 + 2},
		{"interest caps", Boss, 100, 0, 5 + 5},
		{"unused plays", Small, 5, 3, 3 + 1 + 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Stage = BlindStage(tt.blind)
			g.Money = tt.money
			g.Plays = tt.plays
			got, err := g.CalcReward()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("reward = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleScore(t *testing.T) {
	t.Run("short keeps blind", func(t *testing.T) {
		g := blindGame(t)
		passed, err := g.HandleScore(100)
		if err != nil || passed {
			t.Fatalf("passed=%v err=%v", passed, err)
		}
		if g.Stage != BlindStage(Small) || g.Score != 100 {
			t.Fatalf("stage=%v score=%d", g.Stage, g.Score)
		}
	})
	t.Run("short without plays loses", func(t *testing.T) {
		g := blindGame(t)
		g.Plays = 0
		if passed, _ := g.HandleScore(10); passed {
			t.Fatal("should not pass")
		}
		if r, ok := g.Result(); !ok || r != Lose {
			t.Fatalf("result = %v %v, want lose", r, ok)
		}
	})
	t.Run("pass moves to post blind", func(t *testing.T) {
		g := blindGame(t)
		g.Plays = 2
		passed, err := g.HandleScore(300)
		if err != nil || !passed {
			t.Fatalf("passed=%v err=%v", passed, err)
		}
		if g.Stage != PostBlindStage() || g.Reward != 3+2 {
			t.Fatalf("stage=%v reward=%d", g.Stage, g.Reward)
		}
	})
	t.Run("boss advances ante", func(t *testing.T) {
		g := blindGame(t)
		g.Stage = BlindStage(Boss)
		if _, err := g.HandleScore(600); err != nil {
			t.Fatal(err)
		}
		if g.Ante != AnteTwo || g.Stage != PostBlindStage() {
			t.Fatalf("ante=%d stage=%v", g.Ante, g.Stage)
		}
	})
	t.Run("boss at last ante wins", func(t *testing.T) {
		g := blindGame(t)
		g.Ante = g.Config.AnteEnd
		g.Stage = BlindStage(Boss)
		if _, err := g.HandleScore(1_000_000); err != nil {
			t.Fatal(err)
		}
		if r, ok := g.Result(); !ok || r != Win {
			t.Fatalf("result = %v %v, want win", r, ok)
		}
	})
	t.Run("outside blind", func(t *testing.T) {
		g := newTestGame(t)
		if _, err := g.HandleScore(1); !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("got %v, want ErrInvalidStage", err)
		}
	})
}

func TestCashoutAndNextRound(t *testing.T) {
	g := newTestGame(t)
	if _, err := g.Cashout(); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("cashout in pre blind: got %v", err)
	}
	if err := g.NextRound(); !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("next round in pre blind: got %v", err)
	}
	g.Stage = PostBlindStage()
	g.Reward = 7
	got, err := g.Cashout()
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 || g.Money != 7 || g.Reward != 0 || g.Stage != ShopStage() {
		t.Fatalf("cashout: got=%d money=%d reward=%d stage=%v", got, g.Money, g.Reward, g.Stage)
	}
	if len(g.Shop.Jokers) != g.Config.StoreConsumableSlotsMax {
		t.Fatalf("shop stocked %d jokers", len(g.Shop.Jokers))
	}
	if err := g.NextRound(); err != nil {
		t.Fatal(err)
	}
	if g.Round != 1 || g.Stage != PreBlindStage() {
		t.Fatalf("round=%d stage=%v", g.Round, g.Stage)
	}
}

func TestBlindActionsOutsideBlind(t *testing.T) {
	g := newTestGame(t)
	before := g.Available.Cards()
	first := before[0]
	checks := []struct {
		name string
		run  func() error
	}{
		{"select", func() error { return g.SelectCard(first) }},
		{"move", func() error { return g.MoveCard(Right, first) }},
		{"play", func() error { return g.Play(card.NewSelectHand([]card.Card{first})) }},
		{"discard", func() error { return g.Discard(card.NewSelectHand([]card.Card{first})) }},
	}
	for _, ch := range checks {
		if err := ch.run(); !errors.Is(err, ErrInvalidStage) {
			t.Fatalf("%s: got %v, want ErrInvalidStage", ch.name, err)
		}
	}
	for _, a := range []Action{SelectCardAction(first), MoveCardAction(Right, first), PlayAction(), DiscardAction()} {
		if err := g.HandleAction(a); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("%v: got %v, want ErrInvalidAction", a, err)
		}
	}
	after := g.Available.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("available changed")
		}
	}
	if len(g.ActionHistory) != 0 || g.Plays != 4 || g.Discards != 4 {
		t.Fatal("rejected actions mutated the game")
	}
}

func TestSelectCardToggles(t *testing.T) {
	cards := []card.Card{
		mk(card.Two, card.Club), mk(card.Three, card.Club), mk(card.Four, card.Club),
		mk(card.Five, card.Club), mk(card.Six, card.Club), mk(card.Seven, card.Club),
	}
	g := blindGame(t, cards...)
	for _, cc := range cards[:5] {
		if err := g.SelectCard(cc); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.SelectCard(cards[5]); !errors.Is(err, ErrSelectionFull) {
		t.Fatalf("sixth select: got %v, want ErrSelectionFull", err)
	}
	if err := g.SelectCard(cards[0]); err != nil {
		t.Fatal(err)
	}
	if g.Available.SelectedCount() != 4 {
		t.Fatalf("selected = %d after deselect", g.Available.SelectedCount())
	}
	if err := g.SelectCard(mk(card.King, card.Heart)); !errors.Is(err, ErrNoCardMatch) {
		t.Fatalf("unknown card: got %v, want ErrNoCardMatch", err)
	}
}

func TestMoveCard(t *testing.T) {
	a, b, cc := mk(card.Two, card.Club), mk(card.Three, card.Club), mk(card.Four, card.Club)
	g := blindGame(t, a, b, cc)
	if err := g.MoveCard(Left, a); !errors.Is(err, ErrInvalidMoveDirection) {
		t.Fatalf("first left: got %v", err)
	}
	if err := g.MoveCard(Right, cc); !errors.Is(err, ErrInvalidMoveDirection) {
		t.Fatalf("last right: got %v", err)
	}
	if err := g.SelectCard(a); err != nil {
		t.Fatal(err)
	}
	if err := g.MoveCard(Right, a); err != nil {
		t.Fatal(err)
	}
	got := g.Available.Cards()
	if got[0] != b || got[1] != a || got[2] != cc {
		t.Fatalf("order = %v", got)
	}
	if !g.Available.IsSelected(1) || g.Available.IsSelected(0) {
		t.Fatal("selection did not follow the card")
	}
	if err := g.MoveSelected(Left); err != nil {
		t.Fatal(err)
	}
	if g.Available.Cards()[0] != a {
		t.Fatal("move selected left did not swap")
	}
}

func TestPlayScoresAndDraws(t *testing.T) {
	kd1, kd2, ah := mk(card.King, card.Diamond), mk(card.King, card.Diamond), mk(card.Ace, card.Heart)
	g := blindGame(t, kd1, kd2, ah, mk(card.Two, card.Club))
	deckBefore := g.Deck.Len()
	if err := g.Play(card.NewSelectHand([]card.Card{kd1, kd2, ah})); err != nil {
		t.Fatal(err)
	}
	if g.Score != 60 || g.Plays != 3 {
		t.Fatalf("score=%d plays=%d", g.Score, g.Plays)
	}
	if g.Available.Len() != 4 || g.Deck.Len() != deckBefore-3 || len(g.Discarded) != 3 {
		t.Fatalf("available=%d deck=%d discarded=%d", g.Available.Len(), g.Deck.Len(), len(g.Discarded))
	}
	if g.LastHand == nil || g.LastHand.Rank != card.OnePair {
		t.Fatalf("last hand = %+v", g.LastHand)
	}
}

func TestPlayIsAtomic(t *testing.T) {
	cards := []card.Card{
		mk(card.Two, card.Club), mk(card.Three, card.Club), mk(card.Four, card.Club),
		mk(card.Five, card.Club), mk(card.Six, card.Club), mk(card.Seven, card.Club),
	}
	g := blindGame(t, cards...)
	tests := []struct {
		name string
		hand []card.Card
		want error
	}{
		{"empty", nil, card.ErrNoCards},
		{"too many", cards, card.ErrTooManyCards},
		{"not available", []card.Card{mk(card.Ace, card.Spade)}, ErrNoCardMatch},
	}
	for _, tt := range tests {
		err := g.Play(card.NewSelectHand(tt.hand))
		if !errors.Is(err, tt.want) {
			t.Fatalf("%s: got %v, want %v", tt.name, err, tt.want)
		}
		if tt.want != ErrNoCardMatch && !errors.Is(err, ErrInvalidHand) {
			t.Fatalf("%s: %v does not wrap ErrInvalidHand", tt.name, err)
		}
		if g.Plays != 4 || g.Score != 0 || g.Available.Len() != 6 {
			t.Fatalf("%s: state changed: plays=%d score=%d", tt.name, g.Plays, g.Score)
		}
	}
	g.Plays = 0
	if err := g.Play(card.NewSelectHand(cards[:1])); !errors.Is(err, ErrNoRemainingPlays) {
		t.Fatalf("no plays: got %v", err)
	}
}

func TestDiscard(t *testing.T) {
	a, b := mk(card.Two, card.Club), mk(card.Three, card.Club)
	g := blindGame(t, a, b)
	if err := g.SelectCard(a); err != nil {
		t.Fatal(err)
	}
	if err := g.DiscardSelected(); err != nil {
		t.Fatal(err)
	}
	if g.Discards != 3 || len(g.Discarded) != 1 || g.Discarded[0] != a {
		t.Fatalf("discards=%d discarded=%v", g.Discards, g.Discarded)
	}
	if g.Available.Len() != 2 || g.Available.SelectedCount() != 0 {
		t.Fatalf("available=%d selected=%d", g.Available.Len(), g.Available.SelectedCount())
	}
	if err := g.DiscardSelected(); !errors.Is(err, ErrInvalidHand) {
		t.Fatalf("empty discard: got %v", err)
	}
	g.Discards = 0
	if err := g.Discard(card.NewSelectHand([]card.Card{b})); !errors.Is(err, ErrNoRemainingDiscards) {
		t.Fatalf("no discards: got %v", err)
	}
}

func TestPassingBlindClearsIt(t *testing.T) {
	aces := []card.Card{
		mk(card.Ace, card.Club), mk(card.Ace, card.Club), mk(card.Ace, card.Club),
		mk(card.Ace, card.Club), mk(card.Ace, card.Club),
	}
	g := blindGame(t, aces...)
	g.Discards = 1
	// flush five of aces scores (160+55)*16
	if err := g.Play(card.NewSelectHand(aces)); err != nil {
		t.Fatal(err)
	}
	if g.Stage != PostBlindStage() {
		t.Fatalf("stage = %v", g.Stage)
	}
	if g.Score != 0 || g.Plays != 4 || g.Discards != 4 {
		t.Fatalf("blind not cleared: score=%d plays=%d discards=%d", g.Score, g.Plays, g.Discards)
	}
	if g.Available.Len() != g.Config.HandSize || len(g.Discarded) != 0 {
		t.Fatalf("not redealt: available=%d discarded=%d", g.Available.Len(), len(g.Discarded))
	}
	if g.Reward != 3+3 {
		t.Fatalf("reward = %d", g.Reward)
	}
}

func TestBuyJoker(t *testing.T) {
	g := newTestGame(t)
	g.Stage = ShopStage()
	g.Shop.Jokers = []Jokers{TheJoker, Banner}
	g.Money = 4

	if err := g.BuyJoker(Banner); !errors.Is(err, ErrInsufficientMoney) {
		t.Fatalf("got %v, want ErrInsufficientMoney", err)
	}
	if err := g.BuyJoker(SlyJoker); !errors.Is(err, ErrNoShopMatch) {
		t.Fatalf("got %v, want ErrNoShopMatch", err)
	}
	if err := g.BuyJoker(TheJoker); err != nil {
		t.Fatal(err)
	}
	if g.Money != 2 || len(g.Jokers) != 1 || g.Registry.Len() != 1 || g.Shop.HasJoker(TheJoker) {
		t.Fatalf("money=%d jokers=%v shop=%v", g.Money, g.Jokers, g.Shop.Jokers)
	}
}

func TestBuyJokerSlotsFull(t *testing.T) {
	g := newTestGame(t)
	g.Stage = ShopStage()
	g.Money = 100
	g.Jokers = []Jokers{TheJoker, TheJoker, TheJoker, TheJoker, TheJoker}
	g.Registry.Register(g.Jokers, g)
	g.Shop.Jokers = []Jokers{SlyJoker}

	if _, ok := g.GenActionsBuyJoker(); ok {
		t.Fatal("buy joker offered with full slots")
	}
	space := g.GenActionSpace()
	for _, v := range space.BuyJoker {
		if v != 0 {
			t.Fatal("buy joker unmasked with full slots")
		}
	}
	if err := g.HandleAction(BuyJokerAction(SlyJoker)); !errors.Is(err, ErrJokerSlotsFull) {
		t.Fatalf("got %v, want ErrJokerSlotsFull", err)
	}
	if g.Registry.Len() != 5 || g.Money != 100 {
		t.Fatal("rejected purchase changed the game")
	}
}

func TestBuyPlanet(t *testing.T) {
	g := newTestGame(t)
	g.Stage = ShopStage()
	g.Shop.Planets = []planet.Planets{planet.Jupiter}
	g.Money = 3
	if err := g.BuyPlanet(planet.Mars); !errors.Is(err, ErrNoShopMatch) {
		t.Fatalf("got %v, want ErrNoShopMatch", err)
	}
	if err := g.BuyPlanet(planet.Jupiter); err != nil {
		t.Fatal(err)
	}
	if g.Planetarium.Level(card.Flush).Level != 2 || g.Money != 0 || len(g.Shop.Planets) != 0 {
		t.Fatalf("planet not applied: %+v money=%d", g.Planetarium.Level(card.Flush), g.Money)
	}
	g.Shop.Planets = []planet.Planets{planet.Pluto}
	if err := g.BuyPlanet(planet.Pluto); !errors.Is(err, ErrInsufficientMoney) {
		t.Fatalf("got %v, want ErrInsufficientMoney", err)
	}
}

func TestHistoryRecordsAppliedActions(t *testing.T) {
	g := newTestGame(t)
	if err := g.HandleAction(SelectBlindAction(Big)); err == nil {
		t.Fatal("expected error")
	}
	if err := g.HandleAction(SelectBlindAction(Small)); err != nil {
		t.Fatal(err)
	}
	if len(g.ActionHistory) != 1 || g.ActionHistory[0].Blind != Small {
		t.Fatalf("history = %v", g.ActionHistory)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"selected max", func(c *Config) { c.SelectedMax = 6 }},
		{"available max", func(c *Config) { c.AvailableMax = 0 }},
		{"hand size above available", func(c *Config) { c.HandSize = 30 }},
		{"plays", func(c *Config) { c.Plays = 0 }},
		{"ante order", func(c *Config) { c.AnteStart, c.AnteEnd = AnteFive, AnteTwo }},
		{"ante range", func(c *Config) { c.AnteEnd = 9 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
