package tetris

// Config holds the parameters for a board.
type Config struct {
	Rows int
	Cols int
	// TicksPerDrop is the countdown reloaded into the drop timer whenever the
	// active piece advances a row or a new piece spawns.
	TicksPerDrop int
	Seed         int64
}

// DefaultConfig returns the classic 22x10 well tuned for a 60 TPS loop.
func DefaultConfig() Config {
	return Config{Rows: 22, Cols: 10, TicksPerDrop: 48, Seed: 42}
}
