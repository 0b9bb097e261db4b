// Package config reads the application configuration from the environment.
// Variables may be set in an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	Addr        string // listen address of the HTTP server
	Preset      string // default board preset
	Depth       int    // default target search depth
	Tries       int    // default number of seeds per puzzle request
	Workers     int    // parallel searches, 0 means one per CPU
	MaxCells    int    // largest board (height*width) the server generates
	Development bool   // debug logging
}

const (
	defaultAddr   = ":8080"
	defaultPreset = "hyper"
	defaultDepth  = 1000
	defaultTries  = 1

	// DefaultMaxCells is the size of the largest preset (7x9).
	DefaultMaxCells = 63
)

// Load reads .env files (if present) and the environment.
func Load(files ...string) (*Config, error) {
	// missing .env files are fine
	_ = godotenv.Load(files...)

	depth, err := getEnvAsInt("HYPERROBOT_DEPTH", defaultDepth)
	if err != nil {
		return nil, err
	}
	tries, err := getEnvAsInt("HYPERROBOT_TRIES", defaultTries)
	if err != nil {
		return nil, err
	}
	workers, err := getEnvAsInt("HYPERROBOT_WORKERS", 0)
	if err != nil {
		return nil, err
	}
	maxCells, err := getEnvAsInt("HYPERROBOT_MAX_CELLS", DefaultMaxCells)
	if err != nil {
		return nil, err
	}
	if tries < 1 {
		return nil, fmt.Errorf("HYPERROBOT_TRIES must be positive, got %d", tries)
	}
	if maxCells < 1 {
		return nil, fmt.Errorf("HYPERROBOT_MAX_CELLS must be positive, got %d", maxCells)
	}

	return &Config{
		Addr:        getEnvWithDefault("HYPERROBOT_ADDR", defaultAddr),
		Preset:      getEnvWithDefault("HYPERROBOT_PRESET", defaultPreset),
		Depth:       depth,
		Tries:       tries,
		Workers:     workers,
		MaxCells:    maxCells,
		Development: Development(),
	}, nil
}

// Development reports whether DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
