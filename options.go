package layerlens

import "layerlens/config"

// Option configures a Converter.
type Option func(*Converter)

// WithConfig applies a full tuning configuration, replacing every
// heuristic threshold at once.
func WithConfig(cfg config.Config) Option {
	return func(c *Converter) {
		c.tuning = cfg
	}
}

// WithIDGenerator replaces the identifier generator. Conversions
// using the same generator sequence produce identical trees for
// identical input.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Converter) {
		c.ids = g
	}
}

// WithMaxDepth bounds the cluster expansion depth. Conversion fails
// with ErrMaxDepthExceeded rather than expanding further.
func WithMaxDepth(depth int) Option {
	return func(c *Converter) {
		c.tuning.MaxDepth = depth
	}
}
