package world

import (
	"errors"
	"testing"
)

func TestDirectionDelta(t *testing.T) {
	cases := []struct {
		dir  Direction
		dRow int
		dCol int
	}{
		{North, -1, 0},
		{East, 0, 1},
		{South, 1, 0},
		{West, 0, -1},
	}

	for _, c := range cases {
		dRow, dCol := c.dir.Delta()
		if dRow != c.dRow || dCol != c.dCol {
			t.Errorf("%s.Delta() = (%d,%d), want (%d,%d)", c.dir, dRow, dCol, c.dRow, c.dCol)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"North", "north", "East", "east", "South", "south", "West", "west"} {
		if _, err := ParseDirection(name); err != nil {
			t.Errorf("ParseDirection(%q): %v", name, err)
		}
	}

	if _, err := ParseDirection("up"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(\"up\") error = %v, want ErrUnknownDirection", err)
	}
}

func TestParseDirectionRoundTrip(t *testing.T) {
	for _, dir := range []Direction{North, East, South, West} {
		parsed, err := ParseDirection(dir.String())
		if err != nil {
			t.Fatalf("ParseDirection(%s): %v", dir, err)
		}
		if parsed != dir {
			t.Errorf("round trip %s -> %s", dir, parsed)
		}
	}
}
