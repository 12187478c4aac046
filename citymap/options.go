package citymap

import "math/rand"

// Option customizes random map generation.
type Option func(*genConfig)

// genConfig collects the knobs applied by Option values.
type genConfig struct {
	rng    *rand.Rand
	width  float64
	height float64
}

func defaultGenConfig() genConfig {
	return genConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// WithSeed creates a fresh seeded generator for this call only.
// Identical seeds and sizes produce identical maps.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws coordinates from r. The generator advances, so two maps
// built from the same r differ. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("citymap: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithBounds sets the plane to [0,width)×[0,height).
// Panics on non-positive extents.
func WithBounds(width, height float64) Option {
	if !(width > 0) || !(height > 0) {
		panic("citymap: WithBounds requires positive extents")
	}
	return func(c *genConfig) {
		c.width = width
		c.height = height
	}
}
