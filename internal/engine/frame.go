package engine

import "github.com/lowfold/stroll/internal/world"

// FrameCell is one rendered cell: its glyph plus the two-valued style tag.
type FrameCell struct {
	Glyph    rune
	Obstacle bool
}

// Frame is a composed snapshot handed to the renderer: the visible window
// with the walker overlaid at its screen position.
type Frame struct {
	Cells     [][]FrameCell
	EntityRow int
	EntityCol int
	Facing    world.Direction
	Avatar    rune

	// World coordinates, for the status panel and debug dumps.
	OffsetRow int
	OffsetCol int
	WorldRow  int
	WorldCol  int
	Tick      int
}

func composeFrame(grid *world.Grid, viewport *Viewport, entity *Entity, tick int) Frame {
	window := viewport.Slice(grid)
	cells := make([][]FrameCell, len(window))
	for y, row := range window {
		cells[y] = make([]FrameCell, len(row))
		for x, glyph := range row {
			cells[y][x] = FrameCell{
				Glyph:    glyph,
				Obstacle: !grid.Traversable(glyph),
			}
		}
	}

	return Frame{
		Cells:     cells,
		EntityRow: entity.ScreenRow,
		EntityCol: entity.ScreenCol,
		Facing:    entity.Facing,
		Avatar:    entity.Avatar,
		OffsetRow: viewport.OffsetRow,
		OffsetCol: viewport.OffsetCol,
		WorldRow:  viewport.OffsetRow + entity.ScreenRow,
		WorldCol:  viewport.OffsetCol + entity.ScreenCol,
		Tick:      tick,
	}
}
