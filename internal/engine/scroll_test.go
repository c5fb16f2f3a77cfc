package engine

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lowfold/stroll/internal/world"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// openGrid builds a fully traversable grid of '.' cells.
func openGrid(t *testing.T, rows, cols int) *world.Grid {
	t.Helper()
	line := strings.Repeat(".", cols)
	text := strings.Repeat(line+"\n", rows)
	grid, err := world.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return grid
}

type fixture struct {
	grid     *world.Grid
	viewport *Viewport
	entity   *Entity
	scroller *Scroller
}

func newFixture(t *testing.T, grid *world.Grid, offsetRow, offsetCol, screenRow, screenCol int) fixture {
	t.Helper()
	cfg := DefaultConfig()
	viewport := NewViewport(cfg)
	viewport.OffsetRow = offsetRow
	viewport.OffsetCol = offsetCol
	entity := NewEntity("walker", cfg)
	entity.ScreenRow = screenRow
	entity.ScreenCol = screenCol
	return fixture{
		grid:     grid,
		viewport: viewport,
		entity:   entity,
		scroller: NewScroller(grid, viewport, entity, testLogger()),
	}
}

func (f fixture) state() [4]int {
	return [4]int{f.viewport.OffsetRow, f.viewport.OffsetCol, f.entity.ScreenRow, f.entity.ScreenCol}
}

func TestExactlyOneMutationPerAcceptedMove(t *testing.T) {
	grid := openGrid(t, 100, 200)

	for _, dir := range []world.Direction{world.North, world.East, world.South, world.West} {
		for _, screen := range [][2]int{{11, 39}, {10, 39}, {11, 40}, {5, 5}, {20, 70}} {
			f := newFixture(t, grid, 30, 50, screen[0], screen[1])
			before := f.state()

			outcome := f.scroller.AttemptMove(dir)
			after := f.state()

			viewportChanged := before[0] != after[0] || before[1] != after[1]
			entityChanged := before[2] != after[2] || before[3] != after[3]

			if outcome == Blocked {
				t.Fatalf("move %s from screen %v blocked on open grid", dir, screen)
			}
			if viewportChanged == entityChanged {
				t.Errorf("move %s from screen %v: viewportChanged=%v entityChanged=%v, want exactly one",
					dir, screen, viewportChanged, entityChanged)
			}
			if (outcome == ViewportMoved) != viewportChanged {
				t.Errorf("move %s from screen %v: outcome %s disagrees with state change", dir, screen, outcome)
			}
		}
	}
}

func TestBlockedMoveOnlyUpdatesFacing(t *testing.T) {
	// Wall of '#' one cell east of the walker.
	rows := make([]string, 100)
	for i := range rows {
		rows[i] = strings.Repeat(".", 90) + "#" + strings.Repeat(".", 109)
	}
	grid, err := world.Parse(strings.Join(rows, "\n") + "\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	f := newFixture(t, grid, 30, 50, 11, 39)
	f.entity.Facing = world.North
	before := f.state()

	// World col of the walker is 50+39=89; the cell east of it is the wall.
	if outcome := f.scroller.AttemptMove(world.East); outcome != Blocked {
		t.Fatalf("outcome = %s, want blocked", outcome)
	}
	if f.state() != before {
		t.Errorf("state changed on blocked move: %v -> %v", before, f.state())
	}
	if f.entity.Facing != world.East {
		t.Errorf("facing = %s, want East even on blocked move", f.entity.Facing)
	}

	// Repeating the blocked move changes nothing further.
	f.scroller.AttemptMove(world.East)
	if f.state() != before {
		t.Errorf("state changed on repeated blocked move: %v", f.state())
	}
}

func TestEdgeRuleBeatsOffCenterRule(t *testing.T) {
	grid := openGrid(t, 100, 200)

	// At the west edge and off-center horizontally: both rules apply, the
	// edge rule must decide (entity steps, viewport pinned).
	f := newFixture(t, grid, 30, 0, 11, 20)

	if outcome := f.scroller.AttemptMove(world.West); outcome != EntityMoved {
		t.Fatalf("outcome = %s, want entity move", outcome)
	}
	if f.viewport.OffsetCol != 0 {
		t.Errorf("offset_col = %d, want 0", f.viewport.OffsetCol)
	}
	if f.entity.ScreenCol != 19 {
		t.Errorf("screen_col = %d, want 19", f.entity.ScreenCol)
	}
}

func TestNorthSouthRoundTrip(t *testing.T) {
	grid := openGrid(t, 100, 200)

	// Non-edge, non-centered: both moves go to the entity and cancel out.
	f := newFixture(t, grid, 30, 50, 10, 39)
	before := f.state()

	if outcome := f.scroller.AttemptMove(world.North); outcome != EntityMoved {
		t.Fatalf("north outcome = %s, want entity move", outcome)
	}
	if outcome := f.scroller.AttemptMove(world.South); outcome != EntityMoved {
		t.Fatalf("south outcome = %s, want entity move", outcome)
	}
	if f.state() != before {
		t.Errorf("round trip state = %v, want %v", f.state(), before)
	}
}

func TestCenteringBoundary(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		screenRow int
		want      bool
	}{
		{10, false},
		{11, true},
		{12, false},
	}

	for _, c := range cases {
		entity := NewEntity("walker", cfg)
		entity.ScreenRow = c.screenRow
		for _, dir := range []world.Direction{world.North, world.South} {
			if got := entity.CenteredFor(dir); got != c.want {
				t.Errorf("row %d CenteredFor(%s) = %v, want %v", c.screenRow, dir, got, c.want)
			}
		}
	}
}

func TestCenteredNeedsBothAxes(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		screenRow int
		screenCol int
		want      bool
	}{
		{11, 39, true},
		{11, 38, false},
		{10, 39, false},
		{12, 40, false},
	}

	for _, c := range cases {
		entity := NewEntity("walker", cfg)
		entity.ScreenRow = c.screenRow
		entity.ScreenCol = c.screenCol
		if got := entity.Centered(); got != c.want {
			t.Errorf("(%d,%d) Centered() = %v, want %v", c.screenRow, c.screenCol, got, c.want)
		}
	}
}

func TestNorthEdgeWinsOverCentering(t *testing.T) {
	// 24-row grid: the viewport spans the whole map vertically, so the
	// viewport is already at the north edge. Moving north from the centered
	// position must step the entity, never push the offset to -1.
	grid := openGrid(t, 24, 200)
	f := newFixture(t, grid, 0, 0, 11, 39)

	if outcome := f.scroller.AttemptMove(world.North); outcome != EntityMoved {
		t.Fatalf("outcome = %s, want entity move at the north edge", outcome)
	}
	if f.viewport.OffsetRow != 0 || f.viewport.OffsetCol != 0 {
		t.Errorf("offset = (%d,%d), want (0,0)", f.viewport.OffsetRow, f.viewport.OffsetCol)
	}
	if f.entity.ScreenRow != 10 {
		t.Errorf("screen_row = %d, want 10 (edge rule steps the walker)", f.entity.ScreenRow)
	}
}

func TestRepeatedNorthScrollsThenSteps(t *testing.T) {
	grid := openGrid(t, 100, 200)
	f := newFixture(t, grid, 40, 50, 11, 39)

	// While centered and clear of the edge, every north move scrolls the
	// viewport by exactly one row.
	for i := 1; i <= 40; i++ {
		if outcome := f.scroller.AttemptMove(world.North); outcome != ViewportMoved {
			t.Fatalf("move %d: outcome = %s, want viewport move", i, outcome)
		}
		if f.viewport.OffsetRow != 40-i {
			t.Fatalf("move %d: offset_row = %d, want %d", i, f.viewport.OffsetRow, 40-i)
		}
		if f.entity.ScreenRow != 11 {
			t.Fatalf("move %d: screen_row = %d, want 11", i, f.entity.ScreenRow)
		}
	}

	// Offset has hit the top; further north moves step the walker instead.
	for i := 1; i <= 5; i++ {
		if outcome := f.scroller.AttemptMove(world.North); outcome != EntityMoved {
			t.Fatalf("edge move %d: outcome = %s, want entity move", i, outcome)
		}
		if f.viewport.OffsetRow != 0 {
			t.Fatalf("edge move %d: offset_row = %d, want 0", i, f.viewport.OffsetRow)
		}
		if f.entity.ScreenRow != 11-i {
			t.Fatalf("edge move %d: screen_row = %d, want %d", i, f.entity.ScreenRow, 11-i)
		}
	}
}

func TestWalkerCannotLeaveTheMap(t *testing.T) {
	grid := openGrid(t, 24, 200)
	f := newFixture(t, grid, 0, 0, 0, 39)

	// Screen row 0 at the north edge: the candidate cell is off the map.
	if outcome := f.scroller.AttemptMove(world.North); outcome != Blocked {
		t.Fatalf("outcome = %s, want blocked", outcome)
	}
	if f.entity.ScreenRow != 0 || f.viewport.OffsetRow != 0 {
		t.Errorf("state changed walking off the map: screen_row=%d offset_row=%d",
			f.entity.ScreenRow, f.viewport.OffsetRow)
	}
	if f.entity.Facing != world.North {
		t.Errorf("facing = %s, want North", f.entity.Facing)
	}
}

func TestOffCenterRuleMovesEntityToward(t *testing.T) {
	grid := openGrid(t, 100, 200)

	// East of center moving east: off-center rule, walker steps east.
	f := newFixture(t, grid, 30, 50, 11, 45)
	if outcome := f.scroller.AttemptMove(world.East); outcome != EntityMoved {
		t.Fatalf("outcome = %s, want entity move", outcome)
	}
	if f.entity.ScreenCol != 46 {
		t.Errorf("screen_col = %d, want 46", f.entity.ScreenCol)
	}

	// West of center moving east is also off-center for that axis; the
	// walker steps back toward the midpoint.
	f = newFixture(t, grid, 30, 50, 11, 30)
	if outcome := f.scroller.AttemptMove(world.East); outcome != EntityMoved {
		t.Fatalf("outcome = %s, want entity move", outcome)
	}
	if f.entity.ScreenCol != 31 {
		t.Errorf("screen_col = %d, want 31", f.entity.ScreenCol)
	}
}
