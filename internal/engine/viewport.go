package engine

import "github.com/lowfold/stroll/internal/world"

// Viewport is the fixed-size window into the grid that the player sees.
// OffsetRow/OffsetCol locate its top-left corner in grid coordinates.
type Viewport struct {
	OffsetRow int
	OffsetCol int
	Rows      int
	Cols      int
}

func NewViewport(cfg Config) *Viewport {
	return &Viewport{Rows: cfg.ViewRows, Cols: cfg.ViewCols}
}

// Clamp pulls the offset back inside the grid so Slice never reads out of
// bounds. On a grid smaller than the viewport the offset pins to zero and
// Slice pads with blanks.
func (v *Viewport) Clamp(grid *world.Grid) {
	maxRow := grid.Height() - v.Rows
	maxCol := grid.Width() - v.Cols
	if maxRow < 0 {
		maxRow = 0
	}
	if maxCol < 0 {
		maxCol = 0
	}
	if v.OffsetRow > maxRow {
		v.OffsetRow = maxRow
	}
	if v.OffsetCol > maxCol {
		v.OffsetCol = maxCol
	}
	if v.OffsetRow < 0 {
		v.OffsetRow = 0
	}
	if v.OffsetCol < 0 {
		v.OffsetCol = 0
	}
}

// Shift moves the window one cell toward d.
func (v *Viewport) Shift(d world.Direction) {
	dRow, dCol := d.Delta()
	v.OffsetRow += dRow
	v.OffsetCol += dCol
}

// Slice copies the visible window out of the grid. Cells past the grid edge
// come back as the blank glyph; the offset is assumed already clamped.
func (v *Viewport) Slice(grid *world.Grid) [][]rune {
	out := make([][]rune, v.Rows)
	for y := 0; y < v.Rows; y++ {
		out[y] = make([]rune, v.Cols)
		for x := 0; x < v.Cols; x++ {
			glyph, err := grid.Cell(v.OffsetRow+y, v.OffsetCol+x)
			if err != nil {
				glyph = world.BlankGlyph
			}
			out[y][x] = glyph
		}
	}
	return out
}
