package mathcatch

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/math-catcher/internal/config"
)

// SpawnScheduler decides when and where new symbols enter the field.
// It keeps no state of its own: the last spawn time and column flags
// live on the Playfield it is ticked against.
type SpawnScheduler struct {
	rng         *rand.Rand
	cfg         config.MathCatchSpawn
	columnWidth float64
	symbolSize  float64
}

// NewSpawnScheduler creates a scheduler for the given game configuration.
func NewSpawnScheduler(rng *rand.Rand, cfg config.MathCatchConfig) *SpawnScheduler {
	return &SpawnScheduler{
		rng:         rng,
		cfg:         cfg.Spawn,
		columnWidth: cfg.ColumnWidth(),
		symbolSize:  cfg.Symbols.Size,
	}
}

// Tick spawns at most one symbol onto pf. The answer symbol is preferred
// whenever it is not already falling; otherwise a distractor is spawned.
// Returns the spawned symbol, if any.
func (s *SpawnScheduler) Tick(nowMs int64, pf *Playfield) (FallingSymbol, bool) {
	if nowMs-pf.lastSpawn < s.cfg.DelayMs {
		return FallingSymbol{}, false
	}

	// Every lane flagged would lock spawning out for good.
	if allOccupied(pf.occupied) {
		clear(pf.occupied)
	}

	if len(pf.symbols) >= s.cfg.MaxSymbols {
		return FallingSymbol{}, false
	}

	answer := pf.equation.Answer()

	if !pf.hasSymbol(answer) {
		col := s.pickColumn(pf.occupied)
		if pf.columnClear(col, s.cfg.Clearance) {
			return s.place(pf, answer, col, nowMs), true
		}
	}

	col := s.pickColumn(pf.occupied)
	if !pf.columnClear(col, s.cfg.Clearance) {
		return FallingSymbol{}, false
	}
	return s.place(pf, s.distractor(answer), col, nowMs), true
}

func (s *SpawnScheduler) place(pf *Playfield, value string, col int, nowMs int64) FallingSymbol {
	sym := newSymbol(value, col, -s.symbolSize, s.columnWidth, s.symbolSize)
	pf.symbols = append(pf.symbols, sym)
	pf.occupied[col] = true
	pf.lastSpawn = nowMs
	return sym
}

// pickColumn returns a uniformly random unflagged column, or any column
// when all are flagged.
func (s *SpawnScheduler) pickColumn(occupied []bool) int {
	free := make([]int, 0, len(occupied))
	for col, taken := range occupied {
		if !taken {
			free = append(free, col)
		}
	}
	if len(free) == 0 {
		return s.rng.Intn(len(occupied))
	}
	return free[s.rng.Intn(len(free))]
}

// distractor returns a digit (with probability DigitChance) or an operator
// that differs from answer. Resampling stays within the chosen class.
func (s *SpawnScheduler) distractor(answer string) string {
	digit := s.rng.Float64() < s.cfg.DigitChance
	for {
		var v string
		if digit {
			v = strconv.Itoa(s.rng.Intn(9) + 1)
		} else {
			v = Operators[s.rng.Intn(len(Operators))].Symbol()
		}
		if v != answer {
			return v
		}
	}
}

func allOccupied(occupied []bool) bool {
	for _, taken := range occupied {
		if !taken {
			return false
		}
	}
	return true
}
