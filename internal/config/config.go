// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	InputsDir   string
	OutputsDir  string
	K6Dir       string
	Workers     int
	OptionsFile string

	// Render overrides taken from the environment; unset when empty.
	TimeUnit   string
	TrendStats []string
	NoColor    bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() (*Config, error) {
	base := getEnv(BaseDirEnv, ".")

	cfg := &Config{
		InputsDir:   getEnv(EnvPrefix+"INPUTS_DIR", filepath.Join(base, InputsDir)),
		OutputsDir:  getEnv(EnvPrefix+"OUTPUTS_DIR", filepath.Join(base, OutputsDir)),
		K6Dir:       getEnv(EnvPrefix+"K6_DIR", filepath.Join(base, K6Dir)),
		OptionsFile: getEnv(EnvPrefix+"OPTIONS_FILE", ""),
		TimeUnit:    getEnv(EnvPrefix+"TIME_UNIT", ""),
		TrendStats:  parseList(getEnv(EnvPrefix+"TREND_STATS", "")),
	}

	workers, err := strconv.Atoi(getEnv(EnvPrefix+"WORKERS", strconv.Itoa(DefaultWorkers)))
	if err != nil {
		return nil, fmt.Errorf("invalid %sWORKERS: %w", EnvPrefix, err)
	}

	if workers < 1 {
		workers = 1
	}

	cfg.Workers = workers

	if v := getEnv(EnvPrefix+"NO_COLOR", ""); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %sNO_COLOR: %w", EnvPrefix, err)
		}

		cfg.NoColor = noColor
	}

	return cfg, nil
}

// RenderOptions returns the caller-level render options: the options file,
// if configured, overlaid with the environment overrides.
func (c *Config) RenderOptions() (*summary.Options, error) {
	opts := &summary.Options{}

	if c.OptionsFile != "" {
		fileOpts, err := LoadOptionsFile(c.OptionsFile)
		if err != nil {
			return nil, err
		}

		opts = fileOpts
	}

	if c.TimeUnit != "" {
		opts.SummaryTimeUnit = summary.String(c.TimeUnit)
	}

	if len(c.TrendStats) > 0 {
		opts.SummaryTrendStats = c.TrendStats
	}

	if c.NoColor {
		opts.EnableColors = summary.Bool(false)
	}

	return opts, nil
}

func (c *Config) String() string {
	optionsDisplay := c.OptionsFile
	if optionsDisplay == "" {
		optionsDisplay = "(not set)"
	}

	timeUnitDisplay := c.TimeUnit
	if timeUnitDisplay == "" {
		timeUnitDisplay = "(auto)"
	}

	statsDisplay := strings.Join(c.TrendStats, ",")
	if statsDisplay == "" {
		statsDisplay = "(document or default)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Inputs Dir:    %s
Outputs Dir:   %s
K6 Scripts:    %s
Workers:       %d
Options File:  %s
Time Unit:     %s
Trend Stats:   %s
No Color:      %t`,
		c.InputsDir,
		c.OutputsDir,
		c.K6Dir,
		c.Workers,
		optionsDisplay,
		timeUnitDisplay,
		statsDisplay,
		c.NoColor,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseList parses a comma-separated list, dropping empty entries.
func parseList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}
