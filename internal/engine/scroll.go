package engine

import (
	"github.com/charmbracelet/log"

	"github.com/lowfold/stroll/internal/world"
)

// Outcome reports which half of the world state a move touched.
type Outcome int

const (
	// Blocked: the candidate cell was an obstacle or off the map. Only the
	// walker's facing changed.
	Blocked Outcome = iota
	// EntityMoved: the on-screen position changed, the viewport stayed put.
	EntityMoved
	// ViewportMoved: the world scrolled under a walker fixed at the midpoint.
	ViewportMoved
)

func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case EntityMoved:
		return "entity"
	case ViewportMoved:
		return "viewport"
	default:
		return "unknown"
	}
}

// Scroller decides, per movement input, whether the walker or the window
// moves. It owns no state of its own; every decision is recomputed from the
// entity and viewport it was built around.
type Scroller struct {
	grid     *world.Grid
	viewport *Viewport
	entity   *Entity
	logger   *log.Logger
}

func NewScroller(grid *world.Grid, viewport *Viewport, entity *Entity, logger *log.Logger) *Scroller {
	return &Scroller{
		grid:     grid,
		viewport: viewport,
		entity:   entity,
		logger:   logger,
	}
}

// WorldPosition is the walker's derived position in grid coordinates.
func (s *Scroller) WorldPosition() (row, col int) {
	return s.viewport.OffsetRow + s.entity.ScreenRow, s.viewport.OffsetCol + s.entity.ScreenCol
}

// AttemptMove applies one movement input. Facing always follows the input,
// even when the move is rejected. For an accepted move exactly one of the
// entity and the viewport mutates:
//
//  1. viewport already at the map edge in that direction - the walker steps
//     toward the visual edge;
//  2. walker off the fixed midpoint for that axis - the walker steps;
//  3. otherwise - the viewport scrolls and the walker stays pinned.
func (s *Scroller) AttemptMove(d world.Direction) Outcome {
	s.entity.Facing = d

	dRow, dCol := d.Delta()
	worldRow, worldCol := s.WorldPosition()
	candRow, candCol := worldRow+dRow, worldCol+dCol

	if !s.grid.Contains(candRow, candCol) {
		s.logger.Debug("move rejected", "dir", d, "row", candRow, "col", candCol, "reason", "off map")
		return Blocked
	}
	glyph, _ := s.grid.Cell(candRow, candCol)
	if !s.grid.Traversable(glyph) {
		s.logger.Debug("move rejected", "dir", d, "row", candRow, "col", candCol, "glyph", string(glyph))
		return Blocked
	}

	switch {
	case s.atEdge(d):
		s.entity.Step(d)
		s.logger.Debug("edge rule", "dir", d,
			"screen_row", s.entity.ScreenRow, "screen_col", s.entity.ScreenCol)
		return EntityMoved
	case !s.entity.CenteredFor(d):
		s.entity.Step(d)
		s.logger.Debug("off-center rule", "dir", d,
			"screen_row", s.entity.ScreenRow, "screen_col", s.entity.ScreenCol)
		return EntityMoved
	default:
		s.viewport.Shift(d)
		s.logger.Debug("scroll rule", "dir", d,
			"offset_row", s.viewport.OffsetRow, "offset_col", s.viewport.OffsetCol)
		return ViewportMoved
	}
}

// atEdge tests the viewport's leading boundary against the grid bound on the
// same axis as d. Each axis is compared against its own bound only.
func (s *Scroller) atEdge(d world.Direction) bool {
	switch d {
	case world.North:
		return s.viewport.OffsetRow <= 0
	case world.South:
		return s.viewport.OffsetRow+s.viewport.Rows >= s.grid.Height()
	case world.East:
		return s.viewport.OffsetCol+s.viewport.Cols >= s.grid.Width()
	case world.West:
		return s.viewport.OffsetCol <= 0
	}
	return false
}
