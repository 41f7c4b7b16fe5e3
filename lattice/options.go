// SPDX-License-Identifier: MIT

package lattice

import "math/rand"

// Option customizes generation by mutating a genConfig before any work starts.
type Option func(*genConfig)

// genConfig aggregates generation knobs. rng == nil means no randomness was
// supplied; stochastic entry points reject that with ErrNeedRandSource.
type genConfig struct {
	rng *rand.Rand
}

// WithRand supplies the random source for origin sampling and tie-breaks.
// Panics on nil; use WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed. Same seed, same lattice.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newGenConfig applies opts in order; later options win.
func newGenConfig(opts ...Option) genConfig {
	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
