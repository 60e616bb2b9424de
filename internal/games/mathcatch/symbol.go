package mathcatch

import "github.com/vovakirdan/math-catcher/internal/core"

// FallingSymbol is a digit or operator drifting down one column.
type FallingSymbol struct {
	Value  string
	Column int
	X      float64 // left edge, fixed by the column
	Y      float64 // top edge
	Size   float64
}

// newSymbol places a symbol centred horizontally in its column.
func newSymbol(value string, column int, y, columnWidth, size float64) FallingSymbol {
	return FallingSymbol{
		Value:  value,
		Column: column,
		X:      columnWidth*float64(column) + (columnWidth-size)/2,
		Y:      y,
		Size:   size,
	}
}

// Bounds returns the symbol's bounding box.
func (s FallingSymbol) Bounds() core.RectF {
	return core.NewRectF(s.X, s.Y, s.Size, s.Size)
}

// fall advances the symbol by speed units.
func (s *FallingSymbol) fall(speed float64) {
	s.Y += speed
}

// offField reports whether the symbol's top has passed the bottom edge.
func (s FallingSymbol) offField(fieldHeight float64) bool {
	return s.Y > fieldHeight
}
