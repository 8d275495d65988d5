package game

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"

	"github.com/luca-patrignani/balatro/domain/card"
	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/planet"
)

// Game is the state of one episode.
type Game struct {
	Config        Config              `json:"config"`
	Shop          *Shop               `json:"shop"`
	Deck          *deck.Deck          `json:"deck"`
	Available     *Available          `json:"available"`
	Discarded     []card.Card         `json:"discarded"`
	Blind         *Blind              `json:"blind,omitempty"`
	Stage         Stage               `json:"stage"`
	Ante          Ante                `json:"ante"`
	ActionHistory []Action            `json:"action_history"`
	Round         int                 `json:"round"`
	Jokers        []Jokers            `json:"jokers"`
	Registry      EffectRegistry      `json:"registry"`
	Planetarium   *planet.Planetarium `json:"planetarium"`
	Plays         int                 `json:"plays"`
	Discards      int                 `json:"discards"`
	Reward        int                 `json:"reward"`
	Money         int                 `json:"money"`
	Chips         int                 `json:"chips"`
	Mult          int                 `json:"mult"`
	Score         int                 `json:"score"`
	LastHand      *card.MadeHand      `json:"last_hand,omitempty"`

	rng    deck.Shuffler
	logger *slog.Logger
}

// New creates a game in PreBlind with a fresh deck. Nothing is dealt until
// Start. The shuffler drives both the deck and the shop.
func New(cfg Config, s deck.Shuffler) *Game {
	return &Game{
		Config:      cfg,
		Shop:        NewShop(),
		Deck:        deck.NewDeck(s),
		Available:   NewAvailable(),
		Stage:       PreBlindStage(),
		Ante:        cfg.AnteStart,
		Round:       0,
		Planetarium: planet.NewPlanetarium(),
		Plays:       cfg.Plays,
		Discards:    cfg.Discards,
		Money:       cfg.Money,
		rng:         s,
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (g *Game) log() *slog.Logger {
	if g.logger == nil {
		return discardLogger
	}
	return g.logger
}

func (g *Game) SetLogger(l *slog.Logger) {
	if l != nil {
		g.logger = l
	}
}

// SetShuffler re-attaches a randomness source, e.g. after decoding a snapshot.
func (g *Game) SetShuffler(s deck.Shuffler) {
	g.rng = s
	g.Deck.SetShuffler(s)
}

// Start moves the game to PreBlind and deals the first hand.
func (g *Game) Start() {
	g.setStage(PreBlindStage())
	g.Deal()
}

// Deal returns every available and discarded card to the deck, shuffles it
// and draws a fresh hand.
func (g *Game) Deal() {
	g.Deck.Append(g.Available.Take()...)
	g.Deck.Append(g.Discarded...)
	g.Discarded = nil
	g.Deck.Shuffle()
	g.Draw(g.Config.HandSize)
}

// Draw moves up to n cards from the deck to the available pool.
func (g *Game) Draw(n int) {
	g.Available.Extend(g.Deck.Draw(n)...)
}

// ClearBlind resets the per-blind counters and redeals.
func (g *Game) ClearBlind() {
	g.Score = 0
	g.Plays = g.Config.Plays
	g.Discards = g.Config.Discards
	g.Deal()
}

func (g *Game) IsOver() bool {
	return g.Stage.IsEnd()
}

// Result returns the outcome once the game is over.
func (g *Game) Result() (End, bool) {
	if !g.Stage.IsEnd() {
		return "", false
	}
	return g.Stage.End, true
}

func (g *Game) setStage(s Stage) {
	if g.Stage != s {
		g.log().Debug("stage transition", "from", g.Stage.String(), "to", s.String())
	}
	g.Stage = s
}

// SelectCard toggles the selection of c. Selecting fails once SelectedMax
// cards are selected; deselecting always succeeds.
func (g *Game) SelectCard(c card.Card) error {
	if !g.Stage.IsBlind() {
		return ErrInvalidStage
	}
	i := g.Available.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNoCardMatch, c)
	}
	if !g.Available.IsSelected(i) && g.Available.SelectedCount() >= g.Config.SelectedMax {
		return ErrSelectionFull
	}
	g.Available.Toggle(i)
	return nil
}

// MoveCard swaps c with its neighbour in direction d.
func (g *Game) MoveCard(d MoveDirection, c card.Card) error {
	if !g.Stage.IsBlind() {
		return ErrInvalidStage
	}
	i := g.Available.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrNoCardMatch, c)
	}
	return g.move(d, i)
}

// MoveSelected moves the single selected card.
func (g *Game) MoveSelected(d MoveDirection) error {
	if !g.Stage.IsBlind() {
		return ErrInvalidStage
	}
	i, err := g.Available.SelectedIndex()
	if err != nil {
		return err
	}
	return g.move(d, i)
}

func (g *Game) move(d MoveDirection, i int) error {
	switch d {
	case Left:
		if i == 0 {
			return ErrInvalidMoveDirection
		}
		g.Available.Swap(i, i-1)
	case Right:
		if i >= g.Available.Len()-1 {
			return ErrInvalidMoveDirection
		}
		g.Available.Swap(i, i+1)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMoveDirection, d)
	}
	return nil
}

// PlaySelected plays the currently selected cards.
func (g *Game) PlaySelected() error {
	return g.Play(card.NewSelectHand(g.Available.Selected()))
}

// Play scores hand against the current blind. The hand is evaluated and
// matched against the available cards before any counter changes.
func (g *Game) Play(hand card.SelectHand) error {
	if !g.Stage.IsBlind() {
		return ErrInvalidStage
	}
	if g.Plays <= 0 {
		return ErrNoRemainingPlays
	}
	made, err := hand.BestHand()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHand, err)
	}
	if !g.Available.Contains(hand.Cards()) {
		return ErrNoCardMatch
	}

	g.Plays--
	score := g.CalcScore(made)
	g.LastHand = &made
	passed, err := g.HandleScore(score)
	if err != nil {
		return err
	}
	g.spend(hand.Cards())
	if passed {
		g.ClearBlind()
	}
	return nil
}

// DiscardSelected discards the currently selected cards.
func (g *Game) DiscardSelected() error {
	return g.Discard(card.NewSelectHand(g.Available.Selected()))
}

// Discard throws away 1 to 5 cards and draws replacements.
func (g *Game) Discard(hand card.SelectHand) error {
	if !g.Stage.IsBlind() {
		return ErrInvalidStage
	}
	if g.Discards <= 0 {
		return ErrNoRemainingDiscards
	}
	switch {
	case hand.Len() == 0:
		return fmt.Errorf("%w: %w", ErrInvalidHand, card.ErrNoCards)
	case hand.Len() > card.MaxHandSize:
		return fmt.Errorf("%w: %w", ErrInvalidHand, card.ErrTooManyCards)
	}
	if !g.Available.Contains(hand.Cards()) {
		return ErrNoCardMatch
	}

	g.Discards--
	g.spend(hand.Cards())
	return nil
}

// spend moves cards from the pool to the discard pile, refills the pool and
// clears the selection. cards must be known to match.
func (g *Game) spend(cards []card.Card) {
	removed, err := g.Available.Remove(cards)
	if err != nil {
		panic(err)
	}
	g.Discarded = append(g.Discarded, removed...)
	g.Available.ClearSelection()
	g.Draw(len(removed))
}

// RequiredScore is the target of the current blind.
func (g *Game) RequiredScore() (int, error) {
	if !g.Stage.IsBlind() {
		return 0, ErrInvalidStage
	}
	base := g.Ante.Base()
	switch g.Stage.Blind {
	case Small:
		return base, nil
	case Big:
		return base * 3 / 2, nil
	case Boss:
		return base * 2, nil
	default:
		return 0, ErrInvalidBlind
	}
}

// CalcReward is the money earned for beating the current blind: its base
// reward, interest on savings and a bonus for every unused play.
func (g *Game) CalcReward() (int, error) {
	if !g.Stage.IsBlind() {
		return 0, ErrInvalidStage
	}
	interest := int(math.Floor(float64(g.Money) * g.Config.InterestRate))
	interest = min(interest, g.Config.InterestMax)
	return g.Stage.Blind.Reward() + interest + g.Plays*g.Config.MoneyPerHand, nil
}

// HandleScore adds score to the blind and resolves it. It reports whether
// the blind was beaten.
func (g *Game) HandleScore(score int) (bool, error) {
	required, err := g.RequiredScore()
	if err != nil {
		return false, err
	}
	g.Score += score

	if g.Score >= required {
		reward, err := g.CalcReward()
		if err != nil {
			return false, err
		}
		g.Reward = reward
		blind := g.Stage.Blind
		g.log().Info("blind beaten",
			"ante", int(g.Ante),
			"blind", string(blind),
			"score", g.Score,
			"required", required,
			"reward", reward,
		)
		if blind == Boss {
			next, ok := g.Ante.Next()
			if g.Ante >= g.Config.AnteEnd || !ok {
				g.setStage(EndStage(Win))
				return true, nil
			}
			g.Ante = next
		}
		g.setStage(PostBlindStage())
		return true, nil
	}

	if g.Plays == 0 {
		g.log().Info("blind lost", "score", g.Score, "required", required)
		g.setStage(EndStage(Lose))
	}
	return false, nil
}

// Cashout collects the reward and opens the shop.
func (g *Game) Cashout() (int, error) {
	if g.Stage != PostBlindStage() {
		return 0, ErrInvalidStage
	}
	reward := g.Reward
	g.Money += reward
	g.Reward = 0
	g.setStage(ShopStage())
	g.Shop.Restock(g.rng, g.Config.StoreConsumableSlotsMax)
	return reward, nil
}

// BuyJoker buys the first copy of j in the shop.
func (g *Game) BuyJoker(j Jokers) error {
	return g.BuyJokerAt(slices.Index(g.Shop.Jokers, j), j)
}

// BuyJokerAt buys the joker in shop slot i, which must hold j.
func (g *Game) BuyJokerAt(i int, j Jokers) error {
	if g.Stage != ShopStage() {
		return ErrInvalidStage
	}
	if len(g.Jokers) >= g.Config.JokerSlots {
		return ErrJokerSlotsFull
	}
	if !g.Shop.jokerAt(i, j) {
		return fmt.Errorf("%w: %v in slot %d", ErrNoShopMatch, j, i)
	}
	if j.Cost() > g.Money {
		return ErrInsufficientMoney
	}
	g.Money -= j.Cost()
	g.Shop.removeJokerAt(i)
	g.Jokers = append(g.Jokers, j)
	g.Registry.Register(g.Jokers, g)
	g.log().Info("joker bought", "joker", j.Name(), "slot", i, "money", g.Money)
	return nil
}

// BuyPlanet buys p from the shop and applies it at once.
func (g *Game) BuyPlanet(p planet.Planets) error {
	if g.Stage != ShopStage() {
		return ErrInvalidStage
	}
	if !g.Shop.HasPlanet(p) {
		return fmt.Errorf("%w: %v", ErrNoShopMatch, p)
	}
	if planet.Cost > g.Money {
		return ErrInsufficientMoney
	}
	g.Money -= planet.Cost
	g.Shop.removePlanet(p)
	p.Effect(g.Planetarium)
	g.log().Info("planet bought", "planet", p.Name(), "money", g.Money)
	return nil
}

// NextRound leaves the shop.
func (g *Game) NextRound() error {
	if g.Stage != ShopStage() {
		return ErrInvalidStage
	}
	g.Round++
	g.setStage(PreBlindStage())
	return nil
}

// SelectBlind enters blind b. The first blind is Small; afterwards b must
// follow the previous blind.
func (g *Game) SelectBlind(b Blind) error {
	if g.Stage != PreBlindStage() {
		return ErrInvalidStage
	}
	if b != g.expectedBlind() {
		return fmt.Errorf("%w: expected %s, got %s", ErrInvalidBlind, g.expectedBlind(), b)
	}
	g.Blind = &b
	g.setStage(BlindStage(b))
	return nil
}

func (g *Game) expectedBlind() Blind {
	if g.Blind == nil {
		return Small
	}
	return g.Blind.Next()
}

func (g *Game) String() string {
	return fmt.Sprintf("Game(stage=%s ante=%d round=%d score=%d money=%d plays=%d discards=%d)",
		g.Stage, g.Ante, g.Round, g.Score, g.Money, g.Plays, g.Discards)
}
