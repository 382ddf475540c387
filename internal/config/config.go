// Package config loads defaults for the ggmap command from a .env file
// and GGMAP_* environment variables. Command-line flags override them.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is read when Load is given no filename.
	ConstantConfigFilename = ".env"

	// Surface defaults
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultZoom       = 10
	DefaultResolution = 10
	DefaultHoneySide  = 10

	// DefaultPower is the decay exponent, 1/d³.
	DefaultPower = 3

	DefaultProjection = "webmercator"
	DefaultResample   = "bilinear"
	DefaultBackend    = "image"
	DefaultOutput     = "surface.png"

	// logger
	DefaultLogLevel = "warn"
)

// Config holds command defaults.
type Config struct {
	Width      int
	Height     int
	Zoom       float64
	Resolution float64
	HoneySide  float64
	Power      float64
	Radius     float64
	Thin       float64
	Gradient   string
	Projection string
	Resample   string
	Backend    string
	Output     string
	LogLevel   string
	Quiet      bool
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid surface size %dx%d", c.Width, c.Height)
	case c.Resolution <= 0:
		return fmt.Errorf("resolution must be positive, got %v", c.Resolution)
	case c.HoneySide <= 0:
		return fmt.Errorf("honeycomb side must be positive, got %v", c.HoneySide)
	case c.Power <= 0:
		return fmt.Errorf("decay power must be positive, got %v", c.Power)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load reads filename (".env" if empty) when present, then builds the
// configuration from the environment. Variables already set in the
// environment win over the file.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		Width:      getEnvInt("GGMAP_WIDTH", DefaultWidth),
		Height:     getEnvInt("GGMAP_HEIGHT", DefaultHeight),
		Zoom:       getEnvFloat("GGMAP_ZOOM", DefaultZoom),
		Resolution: getEnvFloat("GGMAP_RESOLUTION", DefaultResolution),
		HoneySide:  getEnvFloat("GGMAP_HONEY_SIDE", DefaultHoneySide),
		Power:      getEnvFloat("GGMAP_POWER", DefaultPower),
		Radius:     getEnvFloat("GGMAP_RADIUS", 0),
		Thin:       getEnvFloat("GGMAP_THIN", 0),
		Gradient:   getEnv("GGMAP_GRADIENT", ""),
		Projection: getEnv("GGMAP_PROJECTION", DefaultProjection),
		Resample:   getEnv("GGMAP_RESAMPLE", DefaultResample),
		Backend:    getEnv("GGMAP_BACKEND", DefaultBackend),
		Output:     getEnv("GGMAP_OUTPUT", DefaultOutput),
		LogLevel:   getEnv("GGMAP_LOG_LEVEL", DefaultLogLevel),
		Quiet:      getEnvBool("GGMAP_QUIET", false),
	}
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
