// Package config handles application configuration from an optional
// dotenv file plus environment variables, and the static line catalog.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Display and feed selections. Backends are chosen here explicitly;
// nothing probes for hardware at runtime.
const (
	DisplayEmulator = "emulator"
	DisplayHardware = "hardware"
	DisplayNone     = "none"

	FeedSIRI   = "siri"
	FeedGTFSRT = "gtfsrt"

	ModeBoard = "board"
	ModeClock = "clock"
	ModeDemo  = "demo"
)

// Config holds all application configuration.
type Config struct {
	Line      string
	LineName  string
	StopID    string
	StopName  string
	Direction string
	Agency    string

	UpdateInterval     time.Duration
	TestMode           bool
	TestUpdateInterval time.Duration
	DebugMode          bool

	APIKey      string
	FeedFormat  string
	FixtureFile string
	LinesFile   string

	Mode       string
	Display    string
	Brightness int
	Timeout    time.Duration
}

// Load reads configuration, merging an optional key=value file into the
// environment first. A missing file is logged once and ignored; the
// documented defaults cover every key.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("config file not loaded, using defaults", "file", envFile, "error", err)
		}
	}

	cfg := &Config{
		Line:      getEnv("LINE", "L"),
		LineName:  getEnv("LINE_NAME", ""),
		StopID:    getEnv("STOP_ID", "13210"),
		StopName:  getEnv("STOP_NAME", "West Portal"),
		Direction: getEnv("DIRECTION", "IB"),
		Agency:    getEnv("AGENCY", "SF"),

		UpdateInterval:     getDurationEnv("UPDATE_INTERVAL", 30) * time.Second,
		TestMode:           getBoolEnv("TEST_MODE", false),
		TestUpdateInterval: getDurationEnv("TEST_UPDATE_INTERVAL", 10) * time.Second,
		DebugMode:          getBoolEnv("DEBUG_MODE", false),

		APIKey:      getEnv("MUNI_API_KEY", ""),
		FeedFormat:  getEnv("FEED_FORMAT", FeedSIRI),
		FixtureFile: getEnv("FIXTURE_FILE", ""),
		LinesFile:   getEnv("LINES_FILE", ""),

		Mode:       getEnv("MODE", ModeBoard),
		Display:    getEnv("DISPLAY_BACKEND", DisplayEmulator),
		Brightness: getIntEnv("BRIGHTNESS", 100),
		Timeout:    getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
	}

	return cfg
}

// Interval returns the effective refresh interval: the test interval in
// test mode, the regular one otherwise.
func (c *Config) Interval() time.Duration {
	if c.TestMode {
		return c.TestUpdateInterval
	}
	return c.UpdateInterval
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	switch c.Direction {
	case "IB", "OB":
	default:
		return fmt.Errorf("DIRECTION must be IB or OB, got %q", c.Direction)
	}
	switch c.Display {
	case DisplayEmulator, DisplayHardware, DisplayNone:
	default:
		return fmt.Errorf("DISPLAY_BACKEND must be emulator, hardware, or none, got %q", c.Display)
	}
	switch c.FeedFormat {
	case FeedSIRI, FeedGTFSRT:
	default:
		return fmt.Errorf("FEED_FORMAT must be siri or gtfsrt, got %q", c.FeedFormat)
	}
	switch c.Mode {
	case ModeBoard, ModeClock, ModeDemo:
	default:
		return fmt.Errorf("MODE must be board, clock, or demo, got %q", c.Mode)
	}
	if c.Brightness < 0 || c.Brightness > 100 {
		return fmt.Errorf("BRIGHTNESS must be 0-100, got %d", c.Brightness)
	}
	if c.Interval() <= 0 {
		return fmt.Errorf("update interval must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds)
		}
	}
	return time.Duration(defaultSeconds)
}
