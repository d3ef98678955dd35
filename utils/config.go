package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads from JSON as either "100ms" or nanoseconds
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "[Duration.UnmarshalJSON] failed to unmarshal")
	}
	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] failed to parse %q", v)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[Duration.UnmarshalJSON] unsupported value %s", data)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config holds the configuration for the simulation and its drivers
type Config struct {
	Rows                int      `json:"rows"`
	Cols                int      `json:"cols"`
	CellSize            int      `json:"cell_size"`
	StepPeriod          Duration `json:"step_period"`
	LiveProbability     float64  `json:"live_probability"`
	InitialPattern      string   `json:"initial_pattern"`
	StartRunning        bool     `json:"start_running"`
	MaxGenerations      int      `json:"max_generations"`
	AutoRestart         bool     `json:"auto_restart"`
	StagnationThreshold int      `json:"stagnation_threshold"`
	Workers             int      `json:"workers"`
	Seed                *int64   `json:"seed,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                50,
		Cols:                100,
		CellSize:            10,
		StepPeriod:          Duration(100 * time.Millisecond),
		LiveProbability:     0.15,
		InitialPattern:      "",
		StartRunning:        false,
		MaxGenerations:      0, // Unlimited
		AutoRestart:         false,
		StagnationThreshold: 5,
		Workers:             0, // One per CPU
	}
}

// Period returns the step period as a time.Duration
func (c Config) Period() time.Duration {
	return time.Duration(c.StepPeriod)
}

// Validate checks the values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive, got %dx%d", c.Cols, c.Rows)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.StepPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] step_period must be positive, got %v", c.Period())
	case c.LiveProbability < 0 || c.LiveProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] live_probability must be within [0, 1], got %v", c.LiveProbability)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.AutoRestart && c.StagnationThreshold <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation_threshold must be positive, got %d", c.StagnationThreshold)
	}
	return nil
}

// LoadConfig loads configuration from JSON file, unset fields keep their defaults
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
