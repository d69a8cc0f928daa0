// SPDX-License-Identifier: MIT

package piece

// Option customizes piece construction.
type Option func(*config)

type config struct {
	strict bool
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithStrictCells rejects edge codes containing values other than 0 and 1.
// Without it New stores whatever values it is given.
func WithStrictCells() Option {
	return func(c *config) {
		c.strict = true
	}
}
