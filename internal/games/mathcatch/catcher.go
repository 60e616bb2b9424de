package mathcatch

import (
	"github.com/vovakirdan/math-catcher/internal/config"
	"github.com/vovakirdan/math-catcher/internal/core"
)

// Catcher is the player's horizontal bar near the bottom of the field.
type Catcher struct {
	X, Y          float64
	Width, Height float64
}

// NewCatcher centres a catcher above the bottom margin of the field.
func NewCatcher(cfg config.MathCatchConfig) Catcher {
	return Catcher{
		X:      cfg.Field.Width/2 - cfg.Catcher.Width/2,
		Y:      cfg.Field.Height - cfg.Catcher.Height - cfg.Catcher.BottomMargin,
		Width:  cfg.Catcher.Width,
		Height: cfg.Catcher.Height,
	}
}

// Move returns the catcher shifted by dx, clamped to [0, fieldWidth-Width].
func (c Catcher) Move(dx, fieldWidth float64) Catcher {
	c.X = core.ClampF(c.X+dx, 0, fieldWidth-c.Width)
	return c
}

// Bounds returns the catcher's bounding box.
func (c Catcher) Bounds() core.RectF {
	return core.NewRectF(c.X, c.Y, c.Width, c.Height)
}
