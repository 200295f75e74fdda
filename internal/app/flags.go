package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Rows  int
	Cols  int
	Scale int
	TPS   int
	Seed  int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rows: 22, Cols: 10, Scale: 24, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "well height in cells")
	fs.IntVar(&c.Cols, "cols", c.Cols, "well width in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the piece sequence")
}
