package mathcatch

import (
	"slices"
	"testing"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
)

func TestCatchCorrectAnswer(t *testing.T) {
	pf := newTestField(config.DefaultMathCatchConfig(), threePlusQ, 1)
	col := catcherColumn(pf)

	put(pf, "2", col, aboveCatcher(pf))
	put(pf, "9", 0, 100)
	put(pf, "+", 9, 200)

	events := pf.Update(noInput(), 0)

	if pf.Score() != 10 {
		t.Errorf("score = %d, expected 10", pf.Score())
	}
	if pf.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", pf.Lives())
	}
	if len(pf.Symbols()) != 0 {
		t.Errorf("all symbols should be cleared, got %v", values(pf.Symbols()))
	}
	for c := 0; c < pf.cfg.Field.Columns; c++ {
		if pf.ColumnOccupied(c) {
			t.Errorf("column %d still flagged after correct catch", c)
		}
	}
	if !pf.NeedsEquation() {
		t.Error("a new equation should be pending")
	}
	if fb := pf.Feedback(); fb.Text != "+10 Points!" || fb.Kind != FeedbackCorrect {
		t.Errorf("feedback = %+v", fb)
	}
	if !slices.ContainsFunc(events, func(e Event) bool { return e.Kind == EventCaughtCorrect }) {
		t.Errorf("expected a correct-catch event, got %+v", events)
	}
}

func TestCatchWrongSymbol(t *testing.T) {
	pf := newTestField(config.DefaultMathCatchConfig(), threePlusQ, 1)
	col := catcherColumn(pf)

	put(pf, "7", col, aboveCatcher(pf))
	put(pf, "9", 0, 100)

	pf.Update(noInput(), 0)

	if pf.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", pf.Lives())
	}
	if pf.Score() != 0 {
		t.Errorf("score = %d, expected 0", pf.Score())
	}
	fb := pf.Feedback()
	if fb.Text != "Wrong! -7" || fb.Kind != FeedbackWrong {
		t.Errorf("feedback = %+v, expected Wrong! -7", fb)
	}
	// 60 frames set, then one countdown in the same update
	if fb.Frames != 59 {
		t.Errorf("feedback frames = %d, expected 59", fb.Frames)
	}

	syms := pf.Symbols()
	if len(syms) != 1 || syms[0].Value != "9" {
		t.Fatalf("only the caught symbol should be removed, got %v", values(syms))
	}
	if syms[0].Y != 103 {
		t.Errorf("remaining symbol should keep falling, y = %v", syms[0].Y)
	}
	if pf.ColumnOccupied(col) {
		t.Error("caught symbol's column should be freed")
	}
	if !pf.ColumnOccupied(0) {
		t.Error("other columns should stay flagged")
	}
	if pf.NeedsEquation() {
		t.Error("a wrong catch must not end the round")
	}

	pf.Update(noInput(), 0)
	if y := pf.Symbols()[0].Y; y != 106 {
		t.Errorf("remaining symbol should continue falling, y = %v", y)
	}
}

func TestSymbolFallsOffField(t *testing.T) {
	pf := newTestField(config.DefaultMathCatchConfig(), threePlusQ, 1)
	// Column 0 never meets the centred catcher
	put(pf, "4", 0, pf.cfg.Field.Height-1)

	events := pf.Update(noInput(), 0)

	if len(pf.Symbols()) != 0 {
		t.Errorf("symbol past the bottom edge should be removed")
	}
	if pf.ColumnOccupied(0) {
		t.Error("column should be freed when its symbol leaves the field")
	}
	if pf.Lives() != 3 {
		t.Error("missing a symbol costs nothing")
	}
	if len(events) != 1 || events[0].Kind != EventFellOff {
		t.Errorf("expected one fell-off event, got %+v", events)
	}
}

func TestSymbolAtBottomEdgeStays(t *testing.T) {
	pf := newTestField(config.DefaultMathCatchConfig(), threePlusQ, 1)
	put(pf, "4", 0, pf.cfg.Field.Height-3)

	pf.Update(noInput(), 0)

	// Removal needs the top strictly past the bottom edge
	if len(pf.Symbols()) != 1 {
		t.Errorf("symbol exactly at the edge should remain")
	}
}

func TestCatcherMovementClamped(t *testing.T) {
	cfg := config.DefaultMathCatchConfig()
	pf := newTestField(cfg, threePlusQ, 1)
	start := pf.Catcher().X

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	pf.Update(left, 0)
	if got := pf.Catcher().X; got != start-cfg.Catcher.Speed {
		t.Errorf("left move: x = %v, expected %v", got, start-cfg.Catcher.Speed)
	}

	for i := 0; i < 200; i++ {
		pf.Update(left, 0)
	}
	if pf.Catcher().X != 0 {
		t.Errorf("catcher should clamp at 0, got %v", pf.Catcher().X)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 200; i++ {
		pf.Update(right, 0)
	}
	if want := cfg.Field.Width - cfg.Catcher.Width; pf.Catcher().X != want {
		t.Errorf("catcher should clamp at %v, got %v", want, pf.Catcher().X)
	}

	both := core.NewInputFrame()
	both.Set(core.ActionLeft)
	both.Set(core.ActionRight)
	x := pf.Catcher().X
	pf.Update(both, 0)
	if pf.Catcher().X != x {
		t.Errorf("opposite directions should cancel out, moved from %v to %v", x, pf.Catcher().X)
	}
}

func TestCollisionNeedsHorizontalOverlap(t *testing.T) {
	pf := newTestField(config.DefaultMathCatchConfig(), threePlusQ, 1)
	// Column 0 is far left of the centred catcher
	put(pf, "2", 0, aboveCatcher(pf))

	pf.Update(noInput(), 0)

	if pf.Score() != 0 || len(pf.Symbols()) != 1 {
		t.Errorf("symbol outside the catcher's span must not be caught")
	}
}

func TestCollisionTouchingEdgeDoesNotCount(t *testing.T) {
	cfg := config.DefaultMathCatchConfig()
	pf := newTestField(cfg, threePlusQ, 1)
	col := catcherColumn(pf)
	// After falling, the symbol's bottom equals the catcher's top exactly
	put(pf, "7", col, pf.catcher.Y-cfg.Symbols.Size-cfg.Symbols.Speed)

	pf.Update(noInput(), 0)

	if pf.Lives() != 3 {
		t.Errorf("touching edges are not an overlap, lives = %d", pf.Lives())
	}
}

func TestFeedbackCountdown(t *testing.T) {
	cfg := config.DefaultMathCatchConfig()
	cfg.Gameplay.FeedbackFrames = 3
	pf := newTestField(cfg, threePlusQ, 1)
	put(pf, "7", catcherColumn(pf), aboveCatcher(pf))

	pf.Update(noInput(), 0)
	if !pf.Feedback().Visible() {
		t.Fatal("feedback should be visible right after a catch")
	}
	pf.Update(noInput(), 0)
	pf.Update(noInput(), 0)
	if pf.Feedback().Visible() {
		t.Errorf("feedback should expire, frames = %d", pf.Feedback().Frames)
	}
	pf.Update(noInput(), 0)
	if pf.Feedback().Frames != 0 {
		t.Error("countdown must not go negative")
	}
}

func TestScoreMonotonic(t *testing.T) {
	cfg := config.DefaultMathCatchConfig()
	pf := newTestField(cfg, threePlusQ, 3)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)

	gen := NewEquationGenerator(pf.spawner.rng)
	prev := 0
	now := int64(0)
	for frame := 0; frame < 5000 && pf.Lives() > 0; frame++ {
		if pf.NeedsEquation() {
			pf.SetEquation(gen.Generate())
		}
		// Sweep the catcher back and forth to hit things
		if frame%120 == 0 {
			in.Clear()
			if (frame/120)%2 == 0 {
				in.Set(core.ActionRight)
			} else {
				in.Set(core.ActionLeft)
			}
		}
		now += 16
		pf.Update(in, now)
		if pf.Score() < prev {
			t.Fatalf("score decreased from %d to %d", prev, pf.Score())
		}
		prev = pf.Score()
	}
}
