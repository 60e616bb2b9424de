package mathcatch

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
)

// FeedbackKind says how a feedback message should be presented.
type FeedbackKind int

const (
	FeedbackNone FeedbackKind = iota
	FeedbackCorrect
	FeedbackWrong
)

// Feedback is a transient message shown after a catch.
type Feedback struct {
	Text   string
	Kind   FeedbackKind
	Frames int // remaining frames to display
}

// Visible reports whether the message is still on screen.
func (f Feedback) Visible() bool {
	return f.Frames > 0 && f.Text != ""
}

// EventKind classifies what happened to a symbol during an update.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventFellOff
	EventCaughtCorrect
	EventCaughtWrong
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventFellOff:
		return "fell off"
	case EventCaughtCorrect:
		return "caught correct"
	case EventCaughtWrong:
		return "caught wrong"
	default:
		return "unknown"
	}
}

// Event records one symbol lifecycle change.
type Event struct {
	Kind   EventKind
	Symbol FallingSymbol
}

// Playfield owns everything that changes during play: the catcher, the
// falling symbols, column flags, score, lives and feedback.
type Playfield struct {
	cfg       config.MathCatchConfig
	spawner   *SpawnScheduler
	catcher   Catcher
	symbols   []FallingSymbol
	occupied  []bool
	equation  Equation
	score     int
	lives     int
	lastSpawn int64
	feedback  Feedback

	needEquation bool
}

// NewPlayfield creates a fresh field at time nowMs. The first spawn happens
// once the spawn delay has elapsed from nowMs. An equation must be set
// with SetEquation before the first Update.
func NewPlayfield(cfg config.MathCatchConfig, rng *rand.Rand, nowMs int64) *Playfield {
	return &Playfield{
		cfg:          cfg,
		spawner:      NewSpawnScheduler(rng, cfg),
		catcher:      NewCatcher(cfg),
		symbols:      make([]FallingSymbol, 0, cfg.Spawn.MaxSymbols),
		occupied:     make([]bool, cfg.Field.Columns),
		lives:        cfg.Gameplay.Lives,
		lastSpawn:    nowMs,
		needEquation: true,
	}
}

// SetEquation installs the equation for the next round.
func (p *Playfield) SetEquation(eq Equation) {
	p.equation = eq
	p.needEquation = false
}

// Update advances the field by one frame: catcher, symbols, collisions,
// spawning and the feedback countdown, in that order.
func (p *Playfield) Update(in core.InputFrame, nowMs int64) []Event {
	var events []Event

	p.moveCatcher(in)
	events = p.advanceSymbols(events)
	events = p.resolveCollisions(events)

	if sym, ok := p.spawner.Tick(nowMs, p); ok {
		events = append(events, Event{Kind: EventSpawned, Symbol: sym})
	}

	if p.feedback.Frames > 0 {
		p.feedback.Frames--
	}

	return events
}

func (p *Playfield) moveCatcher(in core.InputFrame) {
	speed := p.cfg.Catcher.Speed
	if in.Has(core.ActionLeft) {
		p.catcher = p.catcher.Move(-speed, p.cfg.Field.Width)
	}
	if in.Has(core.ActionRight) {
		p.catcher = p.catcher.Move(speed, p.cfg.Field.Width)
	}
}

// advanceSymbols moves every symbol down and drops those below the field.
func (p *Playfield) advanceSymbols(events []Event) []Event {
	kept := p.symbols[:0]
	for _, sym := range p.symbols {
		sym.fall(p.cfg.Symbols.Speed)
		if sym.offField(p.cfg.Field.Height) {
			p.occupied[sym.Column] = false
			events = append(events, Event{Kind: EventFellOff, Symbol: sym})
			continue
		}
		kept = append(kept, sym)
	}
	p.symbols = kept
	return events
}

// resolveCollisions handles symbols overlapping the catcher. Catching the
// answer ends the round at once and discards everything still falling.
func (p *Playfield) resolveCollisions(events []Event) []Event {
	catcher := p.catcher.Bounds()
	answer := p.equation.Answer()

	kept := p.symbols[:0]
	for _, sym := range p.symbols {
		if !sym.Bounds().Intersects(catcher) {
			kept = append(kept, sym)
			continue
		}

		if sym.Value == answer {
			p.score += p.cfg.Gameplay.Reward
			p.feedback = Feedback{
				Text:   fmt.Sprintf("+%d Points!", p.cfg.Gameplay.Reward),
				Kind:   FeedbackCorrect,
				Frames: p.cfg.Gameplay.FeedbackFrames,
			}
			p.needEquation = true
			p.symbols = p.symbols[:0]
			clear(p.occupied)
			return append(events, Event{Kind: EventCaughtCorrect, Symbol: sym})
		}

		p.lives--
		p.feedback = Feedback{
			Text:   "Wrong! -" + sym.Value,
			Kind:   FeedbackWrong,
			Frames: p.cfg.Gameplay.FeedbackFrames,
		}
		p.occupied[sym.Column] = false
		events = append(events, Event{Kind: EventCaughtWrong, Symbol: sym})
	}
	p.symbols = kept
	return events
}

func (p *Playfield) hasSymbol(value string) bool {
	return slices.ContainsFunc(p.symbols, func(s FallingSymbol) bool {
		return s.Value == value
	})
}

// columnClear reports whether no symbol in col is still above clearance.
func (p *Playfield) columnClear(col int, clearance float64) bool {
	for _, sym := range p.symbols {
		if sym.Column == col && sym.Y < clearance {
			return false
		}
	}
	return true
}

// Score returns the accumulated score.
func (p *Playfield) Score() int { return p.score }

// Lives returns the remaining lives.
func (p *Playfield) Lives() int { return p.lives }

// Equation returns the current equation.
func (p *Playfield) Equation() Equation { return p.equation }

// NeedsEquation reports whether the round ended and a new equation is due.
func (p *Playfield) NeedsEquation() bool { return p.needEquation }

// Catcher returns the catcher state.
func (p *Playfield) Catcher() Catcher { return p.catcher }

// Feedback returns the current feedback message.
func (p *Playfield) Feedback() Feedback { return p.feedback }

// Symbols returns a copy of the falling symbols.
func (p *Playfield) Symbols() []FallingSymbol {
	return slices.Clone(p.symbols)
}

// ColumnOccupied reports the occupancy flag of col.
func (p *Playfield) ColumnOccupied(col int) bool {
	return p.occupied[col]
}

// Config returns the configuration the field was built with.
func (p *Playfield) Config() config.MathCatchConfig { return p.cfg }
