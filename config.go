package dhash

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCapacity is the base capacity used when a table is created with a
// capacity hint of 0.
const DefaultCapacity = 50

const (
	defaultGrowLoad   = 70
	defaultShrinkLoad = 10
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the sizing policy of a table. Loads are integer
// percentages of occupied slots over capacity.
type Config struct {
	// DefaultCapacity replaces a capacity hint of 0.
	DefaultCapacity int `yaml:"default_capacity"`
	// GrowLoad triggers a resize up before an insert when exceeded.
	GrowLoad int `yaml:"grow_load"`
	// ShrinkLoad triggers a resize down before a delete when undercut.
	ShrinkLoad int `yaml:"shrink_load"`
}

// DefaultConfig returns the stock policy: capacity 50, grow above 70%,
// shrink below 10%.
func DefaultConfig() Config {
	return Config{
		DefaultCapacity: DefaultCapacity,
		GrowLoad:        defaultGrowLoad,
		ShrinkLoad:      defaultShrinkLoad,
	}
}

// Validate checks that the thresholds leave a usable load band.
func (c Config) Validate() error {
	if c.DefaultCapacity <= 0 {
		return fmt.Errorf("%w: default_capacity must be positive, got %d", ErrInvalidConfig, c.DefaultCapacity)
	}
	if c.GrowLoad <= 0 || c.GrowLoad >= 100 {
		return fmt.Errorf("%w: grow_load must be in (0, 100), got %d", ErrInvalidConfig, c.GrowLoad)
	}
	// Halving the capacity at most doubles the load, which must not land
	// above the grow threshold.
	if c.ShrinkLoad < 0 || c.ShrinkLoad*2 >= c.GrowLoad {
		return fmt.Errorf("%w: shrink_load must be in [0, grow_load/2), got %d", ErrInvalidConfig, c.ShrinkLoad)
	}
	return nil
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
