// Package mathcatch implements Math Catcher: digits and operators fall down
// the field and the player moves a catcher to grab the one symbol that
// completes a partially hidden equation, avoiding the rest.
package mathcatch

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
	"github.com/vovakirdan/math-catcher/internal/registry"
)

// GameID is the registry id of Math Catcher.
const GameID = "mathcatch"

// Game adapts a Playfield to the arcade's registry.Game interface.
type Game struct {
	cfg       config.MathCatchConfig
	clock     core.Clock
	logger    *log.Logger
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	generator *EquationGenerator
	field     *Playfield
	gameOver  bool
	paused    bool
	tickCount int
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.MathCatchConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithClock sets the time source used for spawn throttling.
// A clock with an Advance method is advanced once per simulated tick.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger for gameplay events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a new Math Catcher game instance.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultMathCatchConfig(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Math Catcher"
}

// LoadConfig replaces the configuration with the one found by config.LoadMathCatch.
// Takes effect on the next Reset.
func (g *Game) LoadConfig(path string) error {
	cfg, err := config.LoadMathCatch(path)
	if err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// SetLogger replaces the gameplay logger.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Config returns the active configuration.
func (g *Game) Config() config.MathCatchConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.clock == nil {
		g.clock = core.NewWallClock()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.generator = NewEquationGenerator(g.rng)
	g.field = NewPlayfield(g.cfg, g.rng, g.clock.Millis())
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	if adv, ok := g.clock.(interface{ Advance() }); ok {
		adv.Advance()
	}

	if g.field.Lives() <= 0 {
		g.gameOver = true
		g.logger.Info("game over", "score", g.field.Score(), "ticks", g.tickCount)
		return core.StepResult{State: g.State()}
	}

	if g.field.NeedsEquation() {
		eq := g.generator.Generate()
		g.field.SetEquation(eq)
		g.logger.Debug("new equation", "equation", eq.Text(), "answer", eq.Answer())
	}

	for _, ev := range g.field.Update(in, g.clock.Millis()) {
		g.logger.Debug(ev.Kind.String(), "value", ev.Symbol.Value, "column", ev.Symbol.Column,
			"score", g.field.Score(), "lives", g.field.Lives())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.field == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.field.Score(),
		Lives:    g.field.Lives(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Playfield exposes the simulation for frontends that draw it themselves.
func (g *Game) Playfield() *Playfield {
	return g.field
}

// FinalMessage is the line printed when a game ends.
func FinalMessage(score int) string {
	return fmt.Sprintf("Game Over! Final score: %d", score)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
