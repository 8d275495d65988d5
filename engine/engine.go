package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/luca-patrignani/balatro/domain/deck"
	"github.com/luca-patrignani/balatro/domain/game"
	"github.com/luca-patrignani/balatro/domain/planet"
	"github.com/luca-patrignani/balatro/ledger"
)

// Engine drives one episode.
type Engine struct {
	mu       sync.Mutex
	id       uuid.UUID
	shuffler deck.Shuffler
	game     *game.Game
	ledger   *ledger.Ledger
	base     *slog.Logger
	logger   *slog.Logger
	steps    int
}

type Option func(*Engine)

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.base = l
		}
	}
}

// WithEpisodeID fixes the episode id instead of drawing a random one.
func WithEpisodeID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}

// New validates cfg, starts a game and opens its ledger.
func New(cfg game.Config, s deck.Shuffler, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	e := &Engine{
		id:       uuid.New(),
		shuffler: s,
		base:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.base.With("episode", e.id.String())

	e.game = game.New(cfg, s)
	e.game.SetLogger(e.logger)
	e.game.Start()
	e.ledger = ledger.New(e.id.String())
	e.logger.Debug("episode started", "ante", int(e.game.Ante))
	return e, nil
}

func (e *Engine) ID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.id
}

// Actions lists the legal selection-relative actions.
func (e *Engine) Actions() []game.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Collect(e.game.Actions())
}

// Moves lists the legal concrete moves, with every playable subset spelled out.
func (e *Engine) Moves() []game.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Collect(e.game.Moves())
}

// ActionSpace returns the current legality mask.
func (e *Engine) ActionSpace() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.game.GenActionSpace()
	return s.Vector()
}

// Layout describes the segments of ActionSpace.
func (e *Engine) Layout() []game.Range {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := game.NewActionSpace(e.game.Config)
	return s.Layout()
}

// Handle applies a. Rejected actions are logged and returned unchanged.
func (e *Engine) Handle(a game.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.game.HandleAction(a); err != nil {
		e.logger.Warn("action rejected", "action", a.String(), "stage", e.game.Stage.String(), "error", err)
		return err
	}
	return e.record(a, nil)
}

// HandleIndex applies the action at an unmasked index of the action space and
// returns the decoded action.
func (e *Engine) HandleIndex(index int) (game.Action, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.game.HandleActionIndex(index)
	if err != nil {
		e.logger.Warn("index rejected", "index", index, "stage", e.game.Stage.String(), "error", err)
		return a, err
	}
	return a, e.record(a, nil)
}

// BuyPlanet buys a planet from the shop.
func (e *Engine) BuyPlanet(p planet.Planets) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.game.BuyPlanet(p); err != nil {
		e.logger.Warn("planet rejected", "planet", p.Name(), "error", err)
		return err
	}
	return e.record(game.Action{Type: ledger.PlanetPurchase}, map[string]string{"planet": p.Name()})
}

func (e *Engine) record(a game.Action, extra map[string]string) error {
	e.steps++
	if err := e.ledger.Append(a, ledger.Summarize(e.game), extra); err != nil {
		return fmt.Errorf("record action: %w", err)
	}
	if end, ok := e.game.Result(); ok {
		e.logger.Info("episode over", "result", string(end), "ante", int(e.game.Ante), "round", e.game.Round, "steps", e.steps)
	}
	return nil
}

func (e *Engine) IsOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.IsOver()
}

func (e *Engine) IsWin() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	end, ok := e.game.Result()
	return ok && end == game.Win
}

func (e *Engine) Result() (game.End, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Result()
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return stateOf(e.id.String(), e.game, e.steps)
}

// History returns the accepted actions in order.
func (e *Engine) History() []game.Action {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.game.ActionHistory)
}

// Ledger exposes the record of the episode. The ledger has its own lock.
func (e *Engine) Ledger() *ledger.Ledger {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger
}

func (e *Engine) VerifyLedger() error {
	return e.Ledger().Verify()
}

type snapshot struct {
	EpisodeID uuid.UUID      `json:"episode_id"`
	Steps     int            `json:"steps"`
	Game      *game.Game     `json:"game"`
	Ledger    *ledger.Ledger `json:"ledger"`
}

// Snapshot encodes the episode, ledger included.
func (e *Engine) Snapshot() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return json.Marshal(snapshot{EpisodeID: e.id, Steps: e.steps, Game: e.game, Ledger: e.ledger})
}

// Restore replaces the episode with a snapshot. The engine's shuffler and
// logger are attached to the restored game. Nothing changes if the snapshot
// is malformed or its ledger does not verify.
func (e *Engine) Restore(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Game == nil || snap.Game.Deck == nil || snap.Game.Available == nil ||
		snap.Game.Shop == nil || snap.Game.Planetarium == nil {
		return fmt.Errorf("decode snapshot: incomplete game")
	}
	if err := snap.Game.Config.Validate(); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Ledger == nil {
		snap.Ledger = ledger.New(snap.EpisodeID.String())
	}
	if err := snap.Ledger.Verify(); err != nil {
		return fmt.Errorf("snapshot ledger: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.id = snap.EpisodeID
	e.steps = snap.Steps
	e.ledger = snap.Ledger
	e.logger = e.base.With("episode", e.id.String())
	e.game = snap.Game
	e.game.SetShuffler(e.shuffler)
	e.game.SetLogger(e.logger)
	e.logger.Debug("episode restored", "stage", e.game.Stage.String(), "steps", e.steps)
	return nil
}
