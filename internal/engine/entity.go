package engine

import "github.com/lowfold/stroll/internal/world"

// Entity is the controllable walker. ScreenRow/ScreenCol are its position
// inside the viewport, not in the world; the world position is always
// viewport offset + screen position and is derived, never stored.
type Entity struct {
	Name      string
	ScreenRow int
	ScreenCol int
	Facing    world.Direction
	Avatar    rune

	cfg Config
}

// NewEntity spawns the walker at the fixed midpoint of the view.
func NewEntity(name string, cfg Config) *Entity {
	return &Entity{
		Name:      name,
		ScreenRow: cfg.MidRow(),
		ScreenCol: cfg.MidCol(),
		Facing:    world.North,
		Avatar:    cfg.Avatar,
		cfg:       cfg,
	}
}

// ClampToWorld pulls the screen position back onto the map. On grids
// smaller than the viewport the fixed spawn midpoint can land past the
// grid's edge, on blank padding, where every move would be rejected.
func (e *Entity) ClampToWorld(grid *world.Grid, v *Viewport) {
	if v.OffsetRow+e.ScreenRow >= grid.Height() {
		e.ScreenRow = grid.Height() - 1 - v.OffsetRow
	}
	if v.OffsetCol+e.ScreenCol >= grid.Width() {
		e.ScreenCol = grid.Width() - 1 - v.OffsetCol
	}
}

// CenteredFor reports whether the walker sits on the fixed midpoint of the
// axis d moves along: the mid row for North/South, the mid column for
// East/West.
func (e *Entity) CenteredFor(d world.Direction) bool {
	switch d {
	case world.North, world.South:
		return e.ScreenRow == e.cfg.MidRow()
	case world.East, world.West:
		return e.ScreenCol == e.cfg.MidCol()
	}
	return false
}

// Centered reports whether the walker sits on the midpoint of both axes.
func (e *Entity) Centered() bool {
	return e.ScreenRow == e.cfg.MidRow() && e.ScreenCol == e.cfg.MidCol()
}

// Step moves the on-screen position one cell toward d.
func (e *Entity) Step(d world.Direction) {
	dRow, dCol := d.Delta()
	e.ScreenRow += dRow
	e.ScreenCol += dCol
}
