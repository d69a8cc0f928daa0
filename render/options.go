// SPDX-License-Identifier: MIT

package render

const (
	DefaultFilled    = "@"
	DefaultEmpty     = " "
	DefaultSeparator = "\n"
)

// Option customizes rendering.
// Option constructors panic on meaningless inputs.
type Option func(*config)

type config struct {
	filled    string
	empty     string
	separator string
}

func newConfig(opts []Option) config {
	c := config{
		filled:    DefaultFilled,
		empty:     DefaultEmpty,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFilled sets the glyph drawn for filled cells. Panics on "".
func WithFilled(glyph string) Option {
	if glyph == "" {
		panic("render: WithFilled(\"\")")
	}
	return func(c *config) {
		c.filled = glyph
	}
}

// WithEmpty sets the glyph drawn for gaps. Panics on "".
func WithEmpty(glyph string) Option {
	if glyph == "" {
		panic("render: WithEmpty(\"\")")
	}
	return func(c *config) {
		c.empty = glyph
	}
}

// WithSeparator sets the string placed between rows. Empty is allowed and
// renders the grid on one line.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}
