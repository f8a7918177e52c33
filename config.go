package splitter

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	ErrUnknownAxis           = errors.New("unknown axis")
	ErrNegativeMinSize       = errors.New("negative minimum pane size")
	ErrNegativeSashThickness = errors.New("negative sash thickness")
)

// Config holds the settings of a Splitter.
type Config struct {
	Axis          Axis       `toml:"axis"`
	MinSize       float64    `toml:"min_size"`       // Floor for every pane along the axis.
	SashThickness Vec        `toml:"sash_thickness"` // Per axis, only the component for Axis is used.
	Sash          Appearance `toml:"sash"`
}

// DefaultConfig returns a horizontal splitter with 50 unit panes and 10 unit sashes.
func DefaultConfig() Config {
	return Config{
		Axis:          Horizontal,
		MinSize:       50,
		SashThickness: Vec{10, 10},
		Sash:          Appearance{Color: 0xffffffff},
	}
}

// Thickness returns the sash thickness along the configured axis.
func (c Config) Thickness() float64 {
	return c.Axis.frame().primary(c.SashThickness)
}

// Validate checks the config for values layout cannot work with.
func (c Config) Validate() error {
	if c.Axis != Horizontal && c.Axis != Vertical {
		return fmt.Errorf("%w: %d", ErrUnknownAxis, int(c.Axis))
	}
	if c.MinSize < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeMinSize, c.MinSize)
	}
	if c.SashThickness[0] < 0 || c.SashThickness[1] < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeSashThickness, c.SashThickness)
	}
	return nil
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, fmt.Errorf("config path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file not found: %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
