package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Rows            int           `json:"rows"`
	Cols            int           `json:"cols"`
	FrameRate       time.Duration `json:"frame_rate"`
	Seed            int64         `json:"seed"`
	UseParallel     bool          `json:"use_parallel"`
	Workers         int           `json:"workers"`
	UseMemoryPool   bool          `json:"use_memory_pool"`
	MaxGenerations  int           `json:"max_generations"`
	StopOnStillLife bool          `json:"stop_on_still_life"`
	Interactive     bool          `json:"interactive"`
	Renderer        string        `json:"renderer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:            20,
		Cols:            50,
		FrameRate:       150 * time.Millisecond,
		Seed:            0, // process-wide random source
		UseParallel:     true,
		Workers:         0, // one per CPU
		UseMemoryPool:   true,
		MaxGenerations:  0,
		StopOnStillLife: false,
		Interactive:     true,
		Renderer:        RendererText,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks that every setting is usable
func (c Config) Validate() error {
	switch {
	case c.Rows < 0 || c.Cols < 0:
		return errors.Wrapf(ErrInvalidConfig, "grid dimensions must not be negative: %dx%d", c.Rows, c.Cols)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must be positive: %v", c.FrameRate)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative: %d", c.Workers)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative: %d", c.MaxGenerations)
	case c.Renderer != RendererText && c.Renderer != RendererScreen:
		return errors.Wrapf(ErrInvalidConfig, "unknown renderer %q", c.Renderer)
	}
	return nil
}
