package world

import "fmt"

// Direction is a cardinal movement/facing direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var ErrUnknownDirection = fmt.Errorf("unknown direction")

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Delta returns the row/col step one cell toward d. Rows grow southward,
// columns grow eastward.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	}
	return 0, 0
}

func ParseDirection(name string) (Direction, error) {
	switch name {
	case "North", "north":
		return North, nil
	case "East", "east":
		return East, nil
	case "South", "south":
		return South, nil
	case "West", "west":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}
