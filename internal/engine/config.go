package engine

import "time"

const (
	DefaultViewRows = 24
	DefaultViewCols = 80

	// DefaultTickPeriod gates how often a pending key is dispatched to the
	// scroll controller. Input capture itself is never throttled.
	DefaultTickPeriod = 50 * time.Millisecond

	DefaultAvatar = '@'
)

// Config carries the knobs that used to be hardwired terminal constants.
// One Config is shared by the viewport, entity, and scroll controller so
// centering math and edge tests always agree on dimensions.
type Config struct {
	ViewRows   int
	ViewCols   int
	TickPeriod time.Duration
	Avatar     rune
	MapsDir    string
}

func DefaultConfig() Config {
	return Config{
		ViewRows:   DefaultViewRows,
		ViewCols:   DefaultViewCols,
		TickPeriod: DefaultTickPeriod,
		Avatar:     DefaultAvatar,
		MapsDir:    "./maps",
	}
}

// MidRow is the fixed vertical centering reference, row 11 of a 24-row view.
func (c Config) MidRow() int { return c.ViewRows/2 - 1 }

// MidCol is the fixed horizontal centering reference, col 39 of an 80-col view.
func (c Config) MidCol() int { return c.ViewCols/2 - 1 }
