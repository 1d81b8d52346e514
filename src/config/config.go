package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	NumFloors        = 55
	NumElevators     = 7
	DoorOpenDuration = 5 * time.Second
	TravelDuration   = 1 * time.Second
	Boost            = 10
)

var ErrInvalidConfig = errors.New("invalid config")

type CostPolicy string

const (
	// Marginal ranks elevators by the time a request adds to their current queue.
	Marginal CostPolicy = "marginal"
	// Completion ranks elevators by the total time to drain their queue including the request.
	Completion CostPolicy = "completion"
)

// Timing holds the two durations the elevator simulation runs on.
type Timing struct {
	Travel   time.Duration // per floor
	DoorOpen time.Duration // per stop
}

type Config struct {
	NumFloors          int           `yaml:"NumFloors"`
	NumElevators       int           `yaml:"NumElevators"`
	TravelDuration     time.Duration `yaml:"TravelDuration"`
	DoorOpenDuration   time.Duration `yaml:"DoorOpenDuration"`
	Boost              int           `yaml:"Boost"`
	MaxRequestInterval time.Duration `yaml:"MaxRequestInterval"`
	CostPolicy         CostPolicy    `yaml:"CostPolicy"`
	LogLevel           string        `yaml:"LogLevel"`
	LogFile            string        `yaml:"LogFile"`
}

func Default() Config {
	return Config{
		NumFloors:          NumFloors,
		NumElevators:       NumElevators,
		TravelDuration:     TravelDuration,
		DoorOpenDuration:   DoorOpenDuration,
		Boost:              Boost,
		MaxRequestInterval: 5 * DoorOpenDuration,
		CostPolicy:         Marginal,
		LogLevel:           "info",
	}
}

// Load reads a YAML file on top of the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumFloors < 1:
		return fmt.Errorf("%w: NumFloors must be at least 1, got %d", ErrInvalidConfig, cfg.NumFloors)
	case cfg.NumElevators < 0:
		return fmt.Errorf("%w: NumElevators must not be negative, got %d", ErrInvalidConfig, cfg.NumElevators)
	case cfg.TravelDuration < 0 || cfg.DoorOpenDuration < 0 || cfg.MaxRequestInterval < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	case cfg.Boost < 1:
		return fmt.Errorf("%w: Boost must be at least 1, got %d", ErrInvalidConfig, cfg.Boost)
	}
	switch cfg.CostPolicy {
	case Marginal, Completion:
	default:
		return fmt.Errorf("%w: unknown CostPolicy %q", ErrInvalidConfig, cfg.CostPolicy)
	}
	return nil
}

// Timing returns the travel and door durations divided by Boost.
func (cfg Config) Timing() Timing {
	boost := time.Duration(max(cfg.Boost, 1))
	return Timing{
		Travel:   cfg.TravelDuration / boost,
		DoorOpen: cfg.DoorOpenDuration / boost,
	}
}

// RequestInterval is MaxRequestInterval scaled by Boost.
func (cfg Config) RequestInterval() time.Duration {
	return cfg.MaxRequestInterval / time.Duration(max(cfg.Boost, 1))
}
