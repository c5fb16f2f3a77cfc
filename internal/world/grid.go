package world

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

const BlankGlyph = ' '

var (
	ErrMapEmpty    = errors.New("map resource is empty")
	ErrOutOfBounds = errors.New("cell outside grid bounds")
)

// DefaultObstacles is the fixed set of glyphs a walker cannot enter.
var DefaultObstacles = []rune{'#', '@', '=', '-', '_', '|', '/', '\\'}

// Grid is the world character matrix, immutable after load. Rows shorter
// than the widest line are padded with BlankGlyph so every row has the
// same width.
type Grid struct {
	rows      [][]rune
	width     int
	height    int
	obstacles map[rune]bool
	rules     *RuleSet
}

// Load reads a line-oriented map file: lines are rows, characters are cells.
func Load(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	return Parse(string(raw))
}

// Parse builds a Grid from the raw text of a map resource.
func Parse(text string) (*Grid, error) {
	var rows [][]rune
	width := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		rows = append(rows, []rune(line))
		if len(rows[len(rows)-1]) > width {
			width = len(rows[len(rows)-1])
		}
	}
	// A trailing newline produces one empty final row; drop it.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrMapEmpty
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, BlankGlyph)
		}
		rows[i] = row
	}

	grid := &Grid{
		rows:      rows,
		width:     width,
		height:    len(rows),
		obstacles: make(map[rune]bool, len(DefaultObstacles)),
	}
	for _, glyph := range DefaultObstacles {
		grid.obstacles[glyph] = true
	}
	return grid, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Cell returns the glyph at (row, col) in grid coordinates.
func (g *Grid) Cell(row, col int) (rune, error) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return g.rows[row][col], nil
}

// Contains reports whether (row, col) is inside the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// SetObstacles replaces the obstacle glyph set.
func (g *Grid) SetObstacles(glyphs []rune) {
	g.obstacles = make(map[rune]bool, len(glyphs))
	for _, glyph := range glyphs {
		g.obstacles[glyph] = true
	}
}

// SetRules installs a scripted traversability predicate that overrides the
// obstacle set (see rules.go). Passing nil restores the default set.
func (g *Grid) SetRules(rules *RuleSet) {
	g.rules = rules
}

// CloseRules releases the scripted predicate, if any, and falls back to the
// obstacle set. Must be called from whatever goroutine owns the grid.
func (g *Grid) CloseRules() {
	if g.rules != nil {
		g.rules.Close()
		g.rules = nil
	}
}

// Traversable reports whether a walker may stand on the given glyph.
func (g *Grid) Traversable(glyph rune) bool {
	if g.rules != nil {
		return g.rules.Traversable(glyph)
	}
	return !g.obstacles[glyph]
}
