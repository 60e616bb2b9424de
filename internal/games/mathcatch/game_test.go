package mathcatch

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-catcher/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed, same inputs and a tick-driven clock must replay identically
	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch (i / 90) % 3 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 1:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() (core.GameState, []FallingSymbol, Equation) {
		g := New(WithClock(core.NewTickClock(60)))
		g.Reset(testRuntime(12345))
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
			if st.GameOver {
				break
			}
		}
		return st, g.Playfield().Symbols(), g.Playfield().Equation()
	}

	s1, syms1, eq1 := run()
	s2, syms2, eq2 := run()

	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if eq1 != eq2 {
		t.Errorf("equations differ: %s vs %s", eq1.Text(), eq2.Text())
	}
	if len(syms1) != len(syms2) {
		t.Fatalf("symbol counts differ: %d vs %d", len(syms1), len(syms2))
	}
	for i := range syms1 {
		if syms1[i] != syms2[i] {
			t.Errorf("symbol %d differs: %+v vs %+v", i, syms1[i], syms2[i])
		}
	}
}

func TestGameGeneratesEquationOnFirstStep(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))

	if !g.Playfield().NeedsEquation() {
		t.Fatal("a fresh game starts without an equation")
	}
	g.Step(core.NewInputFrame())
	if g.Playfield().NeedsEquation() {
		t.Error("first step should install an equation")
	}
	if !strings.Contains(g.Playfield().Equation().Text(), Placeholder) {
		t.Errorf("equation text %q lacks a placeholder", g.Playfield().Equation().Text())
	}
}

func TestGameNewEquationAfterCorrectCatch(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pf := g.Playfield()
	put(pf, pf.Equation().Answer(), catcherColumn(pf), aboveCatcher(pf))
	g.Step(core.NewInputFrame())

	if g.State().Score != 10 {
		t.Fatalf("score = %d, expected 10", g.State().Score)
	}
	if !pf.NeedsEquation() {
		t.Fatal("round should be over")
	}

	g.Step(core.NewInputFrame())
	if pf.NeedsEquation() {
		t.Error("next step should generate a new equation")
	}
}

func TestGameOverWhenLivesExhausted(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	g := New(WithClock(core.NewTickClock(60)), WithLogger(logger))
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	pf := g.Playfield()
	for pf.Lives() > 0 {
		wrong := "+"
		if pf.Equation().Answer() == wrong {
			wrong = "-"
		}
		put(pf, wrong, catcherColumn(pf), aboveCatcher(pf))
		g.Step(core.NewInputFrame())
	}

	if g.State().Lives != 0 {
		t.Fatalf("lives = %d, expected 0", g.State().Lives)
	}

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver {
		t.Fatal("game should end on the frame after lives reach 0")
	}

	ticks := g.tickCount
	symbols := len(pf.Symbols())
	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	if g.tickCount != ticks || len(pf.Symbols()) != symbols {
		t.Error("no updates may happen after game over")
	}

	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("final score should be logged, log was %q", buf.String())
	}
}

func TestGamePause(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}
	x := g.Playfield().Catcher().X
	move := core.NewInputFrame()
	move.Set(core.ActionLeft)
	g.Step(move)
	if g.Playfield().Catcher().X != x || g.tickCount != 0 {
		t.Error("paused game must not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameReset(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(42))
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testRuntime(42))

	st := g.State()
	if st.Score != 0 || st.Lives != 3 || st.GameOver || st.Paused {
		t.Errorf("Reset should restore a fresh state, got %+v", st)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if len(g.Playfield().Symbols()) != 0 {
		t.Error("Reset should clear the field")
	}
}

func TestGameSpawnsOverTime(t *testing.T) {
	g := New(WithClock(core.NewTickClock(60)))
	g.Reset(testRuntime(9))

	// 47 frames is just under 800ms at 60Hz
	for i := 0; i < 47; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.Playfield().Symbols()); n != 0 {
		t.Fatalf("nothing should spawn before the delay, have %d", n)
	}
	g.Step(core.NewInputFrame())
	syms := g.Playfield().Symbols()
	if len(syms) != 1 {
		t.Fatalf("expected the first spawn at 800ms, have %d symbols", len(syms))
	}
	if syms[0].Value != g.Playfield().Equation().Answer() {
		t.Errorf("first spawn should be the answer")
	}
}

func TestFinalMessage(t *testing.T) {
	if got := FinalMessage(40); got != "Game Over! Final score: 40" {
		t.Errorf("FinalMessage() = %q", got)
	}
}

func TestGameSpawnFollowsClock(t *testing.T) {
	clock := &core.ManualClock{}
	g := New(WithClock(clock))
	g.Reset(testRuntime(3))

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	if n := len(g.Playfield().Symbols()); n != 0 {
		t.Fatalf("a stopped clock must not spawn, have %d", n)
	}

	clock.Add(800 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if n := len(g.Playfield().Symbols()); n != 1 {
		t.Errorf("expected one spawn once the delay elapsed, have %d", n)
	}
}
