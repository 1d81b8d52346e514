package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "ELSIM_"

// ApplyEnv overrides cfg with ELSIM_* keys, first from the dotenv file at path (skipped when
// empty) and then from the process environment, which wins.
func ApplyEnv(cfg Config, path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil {
			return cfg, fmt.Errorf("read env file %s: %w", path, err)
		}
		values = fileValues
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			values[envPrefix+key] = v
		}
	}
	return applyValues(cfg, values)
}

var envKeys = []string{
	"NUM_FLOORS",
	"NUM_ELEVATORS",
	"TRAVEL_DURATION",
	"DOOR_OPEN_DURATION",
	"BOOST",
	"MAX_REQUEST_INTERVAL",
	"COST_POLICY",
	"LOG_LEVEL",
	"LOG_FILE",
}

func applyValues(cfg Config, values map[string]string) (Config, error) {
	for _, key := range envKeys {
		raw, ok := values[envPrefix+key]
		if !ok || raw == "" {
			continue
		}
		var err error
		switch key {
		case "NUM_FLOORS":
			cfg.NumFloors, err = strconv.Atoi(raw)
		case "NUM_ELEVATORS":
			cfg.NumElevators, err = strconv.Atoi(raw)
		case "TRAVEL_DURATION":
			cfg.TravelDuration, err = time.ParseDuration(raw)
		case "DOOR_OPEN_DURATION":
			cfg.DoorOpenDuration, err = time.ParseDuration(raw)
		case "BOOST":
			cfg.Boost, err = strconv.Atoi(raw)
		case "MAX_REQUEST_INTERVAL":
			cfg.MaxRequestInterval, err = time.ParseDuration(raw)
		case "COST_POLICY":
			cfg.CostPolicy = CostPolicy(raw)
		case "LOG_LEVEL":
			cfg.LogLevel = raw
		case "LOG_FILE":
			cfg.LogFile = raw
		}
		if err != nil {
			return cfg, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, envPrefix, key, raw, err)
		}
	}
	return cfg, nil
}
