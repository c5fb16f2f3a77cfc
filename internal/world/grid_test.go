package world

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEmptyMap(t *testing.T) {
	for _, text := range []string{"", "\n", "\n\n\n"} {
		if _, err := Parse(text); !errors.Is(err, ErrMapEmpty) {
			t.Errorf("Parse(%q) error = %v, want ErrMapEmpty", text, err)
		}
	}
}

func TestParseRaggedRowsPadded(t *testing.T) {
	grid, err := Parse("abc\nz\nabcde\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if grid.Width() != 5 || grid.Height() != 3 {
		t.Fatalf("got %dx%d, want 3x5", grid.Height(), grid.Width())
	}

	glyph, err := grid.Cell(1, 4)
	if err != nil {
		t.Fatalf("Cell(1,4): %v", err)
	}
	if glyph != BlankGlyph {
		t.Errorf("short row padding = %q, want blank", glyph)
	}
}

func TestCellOutOfBounds(t *testing.T) {
	grid, err := Parse("ab\ncd\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := grid.Cell(pos[0], pos[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell(%d,%d) error = %v, want ErrOutOfBounds", pos[0], pos[1], err)
		}
	}
}

func TestTraversableDefaults(t *testing.T) {
	grid, err := Parse(strings.Repeat(".", 10) + "\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for _, glyph := range DefaultObstacles {
		if grid.Traversable(glyph) {
			t.Errorf("Traversable(%q) = true, want false", glyph)
		}
	}
	for _, glyph := range []rune{'.', ' ', 'x', '~'} {
		if !grid.Traversable(glyph) {
			t.Errorf("Traversable(%q) = false, want true", glyph)
		}
	}
}

func TestSetObstacles(t *testing.T) {
	grid, err := Parse("...\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	grid.SetObstacles([]rune{'~'})
	if grid.Traversable('~') {
		t.Error("Traversable('~') = true after SetObstacles")
	}
	if !grid.Traversable('#') {
		t.Error("Traversable('#') = false, old set should be gone")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/no-such.map"); err == nil {
		t.Fatal("Load of missing file returned nil error")
	}
}
