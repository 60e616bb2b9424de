// Package window runs Math Catcher in a desktop window using Ebitengine.
// It draws the playfield in field units, so one unit is one pixel before
// window scaling.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/math-catcher/internal/core"
	"github.com/vovakirdan/math-catcher/internal/games/mathcatch"
)

// Title is the window caption.
const Title = "Math Equation Catcher"

// basicfont.Face7x13 metrics.
const (
	glyphWidth  = 7
	glyphAscent = 11
	glyphHeight = 13
)

const (
	hudTextScale    = 2
	symbolTextScale = 3
)

var (
	backgroundColor = color.RGBA{0xad, 0xd8, 0xe6, 0xff} // light blue
	textColor       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	catcherColor    = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	livesColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	correctColor    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	wrongColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	overlayColor    = color.RGBA{0x00, 0x00, 0x00, 0x80}
)

// Options tunes a window session.
type Options struct {
	// Scale multiplies the window size. The playfield is scaled to fit.
	Scale float64

	// GameOverDelay is how long the final score stays on screen.
	GameOverDelay time.Duration

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// DefaultOptions returns the default window options.
func DefaultOptions() Options {
	return Options{
		Scale:         1,
		GameOverDelay: 2 * time.Second,
	}
}

// Window implements ebiten.Game for a Math Catcher session.
type Window struct {
	game      *mathcatch.Game
	keys      KeyState
	input     core.InputFrame
	state     core.GameState
	logger    *log.Logger
	width     int
	height    int
	overTicks int
	lingerFor int
}

// New resets game and wraps it for Ebitengine.
func New(game *mathcatch.Game, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	field := game.Config().Field
	cfg.ScreenW = int(field.Width)
	cfg.ScreenH = int(field.Height)
	game.Reset(cfg)

	return &Window{
		game:      game,
		keys:      ebitenKeys{},
		input:     core.NewInputFrame(),
		state:     game.State(),
		logger:    logger,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		lingerFor: int(opts.GameOverDelay * time.Duration(cfg.TickRate) / time.Second),
	}
}

// Update advances the game one frame. Returns ebiten.Termination once the
// player quits or the game over screen has been shown long enough.
func (w *Window) Update() error {
	if w.state.GameOver {
		w.overTicks++
		if w.overTicks >= w.lingerFor {
			return ebiten.Termination
		}
		return nil
	}

	w.input.Clear()
	readInput(w.keys, &w.input)
	if w.input.Has(core.ActionQuit) {
		w.logger.Debug("window closed by player", "score", w.state.Score)
		return ebiten.Termination
	}

	w.state = w.game.Step(w.input).State
	if w.state.GameOver {
		w.logger.Debug("game finished", "game", w.game.ID(), "score", w.state.Score)
	}
	return nil
}

// Draw renders the playfield.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	pf := w.game.Playfield()
	if pf == nil {
		return
	}

	if !pf.NeedsEquation() {
		drawText(screen, "Equation: "+pf.Equation().Text(), w.width-350, 10, hudTextScale, textColor)
	}
	drawText(screen, fmt.Sprintf("Score: %d", pf.Score()), 10, 10, hudTextScale, textColor)
	drawText(screen, fmt.Sprintf("Lives: %d", pf.Lives()), 10, 50, hudTextScale, livesColor)

	if fb := pf.Feedback(); fb.Visible() {
		clr := wrongColor
		if fb.Kind == mathcatch.FeedbackCorrect {
			clr = correctColor
		}
		drawText(screen, fb.Text, w.width/2-50, 50, hudTextScale, clr)
	}

	for _, sym := range pf.Symbols() {
		b := sym.Bounds()
		tw := textWidth(sym.Value, symbolTextScale)
		x := b.X + (b.W-float64(tw))/2
		y := b.Y + (b.H-glyphHeight*symbolTextScale)/2
		drawText(screen, sym.Value, int(x), int(y), symbolTextScale, textColor)
	}

	c := pf.Catcher()
	vector.FillRect(screen, float32(c.X), float32(c.Y), float32(c.Width), float32(c.Height), catcherColor, false)

	switch {
	case w.state.GameOver:
		w.drawBanner(screen, "GAME OVER", mathcatch.FinalMessage(w.state.Score))
	case w.state.Paused:
		w.drawBanner(screen, "PAUSED", "Press P to resume")
	}
}

// drawBanner dims the field and centres two lines of text on it.
func (w *Window) drawBanner(screen *ebiten.Image, title, subtitle string) {
	vector.FillRect(screen, 0, 0, float32(w.width), float32(w.height), overlayColor, false)

	cy := w.height / 2
	drawText(screen, title, (w.width-textWidth(title, symbolTextScale))/2, cy-glyphHeight*symbolTextScale, symbolTextScale, color.White)
	drawText(screen, subtitle, (w.width-textWidth(subtitle, hudTextScale))/2, cy+glyphHeight, hudTextScale, color.White)
}

// Layout keeps the logical screen at field size; Ebitengine scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

// State returns the last observed game state.
func (w *Window) State() core.GameState {
	return w.state
}

// textWidth returns the width of s in pixels at the given scale.
func textWidth(s string, scale int) int {
	return len([]rune(s)) * glyphWidth * scale
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y, scale int, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y+glyphAscent*scale))
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

// Run plays game in a window until the player quits, closes the window or
// the game ends. Returns the final game state.
func Run(game *mathcatch.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	w := New(game, cfg, opts)

	ebiten.SetWindowSize(int(float64(w.width)*opts.Scale), int(float64(w.height)*opts.Scale))
	ebiten.SetWindowTitle(Title)
	tps := cfg.TickRate
	if tps <= 0 {
		tps = 60
	}
	ebiten.SetTPS(tps)

	if err := ebiten.RunGame(w); err != nil {
		return w.State(), fmt.Errorf("run window: %w", err)
	}
	return w.State(), nil
}
