package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/happycube/render"
)

var errInvalidConfig = errors.New("invalid config")

// Config holds the user-tunable rendering settings.
//
//	filled = "█"
//	empty  = "·"
//	box    = true
type Config struct {
	Filled string `toml:"filled"`
	Empty  string `toml:"empty"`
	Box    bool   `toml:"box"`
}

// DefaultConfig returns the glyphs used by render.Text.
func DefaultConfig() Config {
	return Config{
		Filled: render.DefaultFilled,
		Empty:  render.DefaultEmpty,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q: %w", path, undecoded[0].String(), errInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Filled == "" {
		return fmt.Errorf("filled glyph is empty: %w", errInvalidConfig)
	}
	if c.Empty == "" {
		return fmt.Errorf("empty glyph is empty: %w", errInvalidConfig)
	}
	return nil
}

func (c Config) renderOptions() []render.Option {
	return []render.Option{
		render.WithFilled(c.Filled),
		render.WithEmpty(c.Empty),
	}
}
