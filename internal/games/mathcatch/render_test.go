package mathcatch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/math-catcher/internal/core"
)

func TestRenderHUD(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	top := screen.Row(0)
	if !strings.Contains(top, "Score: 0") {
		t.Errorf("HUD missing score: %q", top)
	}
	if !strings.Contains(top, "Lives: 3") {
		t.Errorf("HUD missing lives: %q", top)
	}
	if !strings.Contains(top, "Equation: "+g.Playfield().Equation().Text()) {
		t.Errorf("HUD missing equation: %q", top)
	}
}

func TestRenderCatcherAndSymbols(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pf := g.Playfield()
	put(pf, "7", 0, 300)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	catcherRow := -1
	for y := 0; y < screen.Height(); y++ {
		if strings.ContainsRune(screen.Row(y), CatcherChar) {
			catcherRow = y
			break
		}
	}
	if catcherRow < screen.Height()-3 {
		t.Errorf("catcher should be drawn near the bottom, found at row %d", catcherRow)
	}

	// Catcher spans 100/800 of 80 columns
	if n := strings.Count(screen.Row(catcherRow), string(CatcherChar)); n != 10 {
		t.Errorf("catcher should be 10 cells wide, got %d", n)
	}
	if c := screen.GetCell(40, catcherRow); c.Color != core.ColorOrange {
		t.Errorf("catcher should be orange, got %v", c.Color)
	}

	found := false
	for y := hudRows; y < screen.Height(); y++ {
		if strings.Contains(screen.Row(y)[:10], "7") {
			found = true
		}
	}
	if !found {
		t.Errorf("symbol 7 in column 0 not rendered:\n%s", screen.String())
	}
}

func TestRenderFeedbackColor(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pf := g.Playfield()
	wrong := "+"
	if pf.Equation().Answer() == wrong {
		wrong = "-"
	}
	put(pf, wrong, catcherColumn(pf), aboveCatcher(pf))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	row := screen.Row(hudRows - 1)
	idx := strings.Index(row, "Wrong! -"+wrong)
	if idx < 0 {
		t.Fatalf("feedback not rendered: %q", row)
	}
	if c := screen.GetCell(len([]rune(row[:idx])), hudRows-1); c.Color != core.ColorBrightRed {
		t.Errorf("wrong feedback should be red, got %v", c.Color)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())
	g.Playfield().lives = 0
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderBeforeReset(t *testing.T) {
	g := New()
	screen := core.NewScreen(20, 5)
	g.Render(screen) // must not panic
	if strings.TrimSpace(screen.String()) != "" {
		t.Error("unstarted game should render blank")
	}
}
