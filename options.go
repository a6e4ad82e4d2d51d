package gocube

import "math/rand/v2"

// Option configures a Cube or Tracker.
type Option func(*config)

type config struct {
	source      Source
	moveHistory bool
}

func defaultConfig() *config {
	return &config{
		source:      globalSource{},
		moveHistory: true,
	}
}

// WithSource sets the random source used by Scramble.
// Tests inject a seeded or scripted source to get reproducible sequences.
func WithSource(src Source) Option {
	return func(c *config) {
		if src != nil {
			c.source = src
		}
	}
}

// WithSeed seeds a private PCG generator for Scramble.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.source = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithMoveHistory enables or disables move history tracking on a Tracker.
// When enabled (default), all moves are stored and accessible via Moves().
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
