package mathcatch

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// Visual characters for rendering
const (
	CatcherChar   = '█'
	SeparatorChar = '─'
)

// viewport maps playfield units onto screen cells.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int
}

func newViewport(cfg config.MathCatchConfig, screenW, screenH int) viewport {
	return viewport{
		fieldW: cfg.Field.Width,
		fieldH: cfg.Field.Height,
		cols:   max(screenW, 1),
		rows:   max(screenH-hudRows, 1),
	}
}

// cellX converts a horizontal field position to a screen column.
func (v viewport) cellX(x float64) int {
	return int(x * float64(v.cols) / v.fieldW)
}

// cellY converts a vertical field position to a screen row.
// Positions above the field map to rows above the HUD boundary.
func (v viewport) cellY(y float64) int {
	row := y * float64(v.rows) / v.fieldH
	if row < 0 {
		return hudRows - 1
	}
	return hudRows + int(row)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.field == nil {
		return
	}

	v := newViewport(g.cfg, dst.Width(), dst.Height())

	for _, sym := range g.field.symbols {
		y := v.cellY(sym.Y + sym.Size/2)
		if y < hudRows {
			continue
		}
		x := v.cellX(sym.X + sym.Size/2)
		dst.DrawTextColor(x, y, sym.Value, symbolColor(sym.Value))
	}

	c := g.field.catcher
	x0 := v.cellX(c.X)
	width := max(v.cellX(c.X+c.Width)-x0, 1)
	dst.DrawRect(core.NewRect(x0, v.cellY(c.Y), width, 1), CatcherChar, core.ColorOrange)

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d", g.field.score))
	}
}

// drawHUD renders score, lives, the equation and feedback above the field.
func (g *Game) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", g.field.score)
	dst.DrawText(0, 0, score)
	dst.DrawTextColor(len(score)+1, 0, fmt.Sprintf("Lives: %d", g.field.lives), core.ColorBrightRed)

	if !g.field.needEquation {
		eq := fmt.Sprintf("Equation: %s ", g.field.equation.Text())
		dst.DrawTextColor(dst.Width()-len(eq), 0, eq, core.ColorBrightCyan)
	}

	dst.DrawHLine(0, hudRows-1, dst.Width(), SeparatorChar, core.ColorGray)

	if fb := g.field.feedback; fb.Visible() {
		color := core.ColorBrightRed
		if fb.Kind == FeedbackCorrect {
			color = core.ColorBrightGreen
		}
		dst.DrawTextCentered(hudRows-1, " "+fb.Text+" ", color)
	}
}

func symbolColor(value string) core.Color {
	if strings.ContainsAny(value, "+-*/") {
		return core.ColorYellow
	}
	return core.ColorWhite
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
