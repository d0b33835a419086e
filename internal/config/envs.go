package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Config holds the solver's configuration values.
type Config struct {
	Workers       int    // Goroutines scoring neighbors per search
	PathGlyph     rune   // Character drawn over solution cells
	MaxExpansions int    // Search expansion cap, 0 uses the per-grid default
	Debug         bool   // Enables debug log lines
	HTTPAddr      string // Listen address for the visualizer
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
}

// Load reads a .env file from the working directory when one exists, then
// builds a Config from the environment.
func Load() (Config, error) {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// LoadFile is Load with an explicit .env path, which must exist.
func LoadFile(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	})
}

// FromLookup builds a Config from any key lookup, such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Workers:  runtime.NumCPU(),
		HTTPAddr: getWithDefault(lookup, "MAZE_HTTP_ADDR", "127.0.0.1:8080"),
		GinMode:  getWithDefault(lookup, "GIN_MODE", "release"),
	}

	var err error
	if cfg.Workers, err = getInt(lookup, "MAZE_WORKERS", cfg.Workers); err != nil {
		return Config{}, err
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("MAZE_WORKERS must be positive, got %d", cfg.Workers)
	}
	if cfg.MaxExpansions, err = getInt(lookup, "MAZE_MAX_EXPANSIONS", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions < 0 {
		return Config{}, fmt.Errorf("MAZE_MAX_EXPANSIONS must not be negative, got %d", cfg.MaxExpansions)
	}
	if cfg.Debug, err = getBool(lookup, "MAZE_DEBUG", false); err != nil {
		return Config{}, err
	}

	glyph := getWithDefault(lookup, "MAZE_PATH_GLYPH", "█")
	if utf8.RuneCountInString(glyph) != 1 {
		return Config{}, fmt.Errorf("MAZE_PATH_GLYPH must be a single character, got %q", glyph)
	}
	cfg.PathGlyph, _ = utf8.DecodeRuneInString(glyph)

	return cfg, nil
}

// getWithDefault retrieves the value of key or returns a default value if not set.
func getWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}

func getInt(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	value, exists := lookup(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getBool(lookup func(string) (string, bool), key string, defaultValue bool) (bool, error) {
	value, exists := lookup(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
