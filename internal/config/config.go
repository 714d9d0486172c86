package config

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/olivierh59500/particle-collision-go/internal/physics"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultPalette is physics.DefaultPalette in SIM_PALETTE notation.
const DefaultPalette = "#1EAE427D,#99352E7D,#40199F7D,#295ACC7D,#7120C17D"

type Config struct {
	// Population
	PopulationCount int
	RadiusMin       float64
	RadiusMax       float64
	SpeedMin        float64
	SpeedMax        float64
	MaxSpeed        float64
	Palette         string
	ResolutionMode  string
	Seed            int64

	// Window
	WindowWidth  int
	WindowHeight int
	TPS          int
	Nebula       bool
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Population
		PopulationCount: getEnvInt("SIM_POPULATION", 15),
		RadiusMin:       getEnvFloat("SIM_RADIUS_MIN", 13),
		RadiusMax:       getEnvFloat("SIM_RADIUS_MAX", 20),
		SpeedMin:        getEnvFloat("SIM_SPEED_MIN", 2),
		SpeedMax:        getEnvFloat("SIM_SPEED_MAX", 4),
		MaxSpeed:        getEnvFloat("SIM_MAX_SPEED", 5.6),
		Palette:         getEnv("SIM_PALETTE", DefaultPalette),
		ResolutionMode:  getEnv("SIM_RESOLUTION_MODE", "sequential"),
		Seed:            getEnvInt64("SIM_SEED", 0),

		// Window
		WindowWidth:  getEnvInt("WINDOW_WIDTH", 800),
		WindowHeight: getEnvInt("WINDOW_HEIGHT", 600),
		TPS:          getEnvInt("SIM_TPS", 60),
		Nebula:       getEnvBool("SIM_NEBULA", true),
	}
}

// Physics converts the population settings into simulation options.
func (c *Config) Physics() (physics.Options, error) {
	palette, err := ParsePalette(c.Palette)
	if err != nil {
		return physics.Options{}, err
	}
	mode, err := physics.ParseResolutionMode(c.ResolutionMode)
	if err != nil {
		return physics.Options{}, fmt.Errorf("SIM_RESOLUTION_MODE: %v: %w", err, ErrInvalidConfig)
	}
	return physics.Options{
		PopulationCount: c.PopulationCount,
		RadiusMin:       c.RadiusMin,
		RadiusMax:       c.RadiusMax,
		SpeedMin:        c.SpeedMin,
		SpeedMax:        c.SpeedMax,
		MaxSpeed:        c.MaxSpeed,
		Palette:         palette,
		Mode:            mode,
	}, nil
}

// Validate checks the whole configuration once at startup.
func (c *Config) Validate() error {
	opts, err := c.Physics()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("SIM_TPS %d must be positive: %w", c.TPS, ErrInvalidConfig)
	}
	window := physics.Arena{Width: float64(c.WindowWidth), Height: float64(c.WindowHeight)}
	if !window.Fits(c.RadiusMax) {
		return fmt.Errorf("window %s cannot hold radius %.2f: %w", window, c.RadiusMax, ErrInvalidConfig)
	}
	return nil
}

// ParsePalette reads comma separated #RRGGBB or #RRGGBBAA colors. Colors
// without alpha are opaque.
func ParsePalette(s string) ([]color.NRGBA, error) {
	var palette []color.NRGBA
	for _, field := range strings.Split(s, ",") {
		hex := strings.TrimPrefix(strings.TrimSpace(field), "#")
		if hex == "" {
			continue
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return nil, fmt.Errorf("palette color %q: want #RRGGBB or #RRGGBBAA: %w", field, ErrInvalidConfig)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("palette color %q: %v: %w", field, err, ErrInvalidConfig)
		}
		palette = append(palette, color.NRGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		})
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("palette is empty: %w", ErrInvalidConfig)
	}
	return palette, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.Atoi(value)
		if err == nil {
			return intVal
		}
		warnMalformed(key, value, defaultValue, err)
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intVal
		}
		warnMalformed(key, value, defaultValue, err)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		floatVal, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatVal
		}
		warnMalformed(key, value, defaultValue, err)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolVal, err := strconv.ParseBool(value)
		if err == nil {
			return boolVal
		}
		warnMalformed(key, value, defaultValue, err)
	}
	return defaultValue
}

func warnMalformed(key, value string, defaultValue any, err error) {
	log.Printf("[CONFIG] %s=%q ignored (%v), using default %v", key, value, err, defaultValue)
}
