package engine

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lowfold/stroll/internal/world"
)

// FrameMsg is published to the UI after every tick.
type FrameMsg struct {
	Frame Frame
}

// MoveCmd asks for one step toward Dir. DumpCmd requests a diagnostic dump.
type MoveCmd struct {
	Dir world.Direction
}

type DumpKind int

const (
	DumpVisible DumpKind = iota
	DumpCoords
	DumpMap
)

type DumpCmd struct {
	Kind DumpKind
}

// Engine owns all world state and runs the tick loop on a single goroutine.
// Raw input is accepted into a single-slot pending buffer every cycle
// (latest key wins), but a pending move is only dispatched to the scroll
// controller when the tick period elapses. Capture is never throttled,
// processing is.
type Engine struct {
	Input   chan any
	Updates chan tea.Msg

	cfg      Config
	grid     *world.Grid
	viewport *Viewport
	entity   *Entity
	scroller *Scroller
	logger   *log.Logger

	tick     int
	stop     chan struct{}
	stopOnce sync.Once
}

func New(grid *world.Grid, entity *Entity, cfg Config, logger *log.Logger) *Engine {
	viewport := NewViewport(cfg)
	viewport.Clamp(grid)
	entity.ClampToWorld(grid, viewport)

	return &Engine{
		Input:    make(chan any, 10),
		Updates:  make(chan tea.Msg, 1),
		cfg:      cfg,
		grid:     grid,
		viewport: viewport,
		entity:   entity,
		scroller: NewScroller(grid, viewport, entity, logger),
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

// Run drives the loop until Stop. One frame is published immediately so the
// UI has something to draw before the first tick. The loop goroutine owns
// the grid, so any Lua rule state is released here once the loop exits.
func (e *Engine) Run() {
	e.logger.Info("engine loop started", "tick_period", e.cfg.TickPeriod)

	ticker := time.NewTicker(e.cfg.TickPeriod)
	defer ticker.Stop()
	defer e.grid.CloseRules()

	e.publishFrame()

	var pending *world.Direction

	for {
		select {
		case <-e.stop:
			e.logger.Info("engine loop stopped", "ticks", e.tick)
			return

		case cmd := <-e.Input:
			switch cmd := cmd.(type) {
			case MoveCmd:
				dir := cmd.Dir
				pending = &dir
			case DumpCmd:
				e.dump(cmd.Kind)
			}

		case <-ticker.C:
			e.tick++
			if pending != nil {
				outcome := e.scroller.AttemptMove(*pending)
				e.logger.Debug("tick", "n", e.tick, "dir", *pending, "outcome", outcome)
				pending = nil
			}
			e.publishFrame()
		}
	}
}

// Stop shuts the loop down. Safe to call more than once; the quit key and
// ctrl+c can both land in the same session.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}

func (e *Engine) publishFrame() {
	frame := composeFrame(e.grid, e.viewport, e.entity, e.tick)
	select {
	case e.Updates <- FrameMsg{Frame: frame}:
	default:
		// Renderer still busy with the previous frame; drop this one.
	}
}

func (e *Engine) dump(kind DumpKind) {
	switch kind {
	case DumpCoords:
		worldRow, worldCol := e.scroller.WorldPosition()
		e.logger.Info("coords",
			"world_row", worldRow, "world_col", worldCol,
			"screen_row", e.entity.ScreenRow, "screen_col", e.entity.ScreenCol,
			"offset_row", e.viewport.OffsetRow, "offset_col", e.viewport.OffsetCol,
			"facing", e.entity.Facing)
	case DumpVisible:
		for _, row := range e.viewport.Slice(e.grid) {
			e.logger.Info("visible", "row", string(row))
		}
	case DumpMap:
		for row := 0; row < e.grid.Height(); row++ {
			line := make([]rune, e.grid.Width())
			for col := 0; col < e.grid.Width(); col++ {
				line[col], _ = e.grid.Cell(row, col)
			}
			e.logger.Info("map", "row", string(line))
		}
	}
}
