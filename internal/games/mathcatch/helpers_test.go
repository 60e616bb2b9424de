package mathcatch

import (
	"math/rand"

	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
)

// threePlusQ is "3 + ? = 5" with answer "2".
var threePlusQ = Equation{Left: 3, Op: OpAdd, Right: 2, Result: 5, Masked: SlotRight}

func newTestField(cfg config.MathCatchConfig, eq Equation, seed int64) *Playfield {
	pf := NewPlayfield(cfg, rand.New(rand.NewSource(seed)), 0)
	pf.SetEquation(eq)
	return pf
}

// put places a symbol directly on the field, flagging its column.
func put(pf *Playfield, value string, col int, y float64) {
	cfg := pf.cfg
	pf.symbols = append(pf.symbols, newSymbol(value, col, y, cfg.ColumnWidth(), cfg.Symbols.Size))
	pf.occupied[col] = true
}

// catcherColumn returns the column whose symbols line up with the default catcher.
func catcherColumn(pf *Playfield) int {
	c := pf.catcher
	return int((c.X + c.Width/2) / pf.cfg.ColumnWidth())
}

// aboveCatcher returns a y that will overlap the catcher after one fall step.
func aboveCatcher(pf *Playfield) float64 {
	return pf.catcher.Y - pf.cfg.Symbols.Size + pf.cfg.Symbols.Speed + 1
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func values(syms []FallingSymbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.Value
	}
	return out
}
