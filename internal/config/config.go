package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config structure for storing run configuration
type Config struct {
	PackagesFile string `json:"packagesFile"`
	ReportFile   string `json:"reportFile"`
	MetricsFile  string `json:"metricsFile"`
	LogLevel     string `json:"logLevel"`
	LogFormat    string `json:"logFormat"`

	ParsedLogLevel slog.Level `json:"-"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      LogFormatText,
		ParsedLogLevel: slog.LevelInfo,
	}
}

// LoadConfiguration loads the configuration from a JSON file and applies environment overrides.
// An empty path skips the file and starts from the defaults.
func LoadConfiguration(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("error reading configuration file %s: %w", filePath, err)
		}
		if err = json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing JSON config %s: %w", filePath, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values and fills in the parsed fields
func (cfg *Config) Validate() error {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	cfg.ParsedLogLevel = level

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return fmt.Errorf("incorrect log format '%s': expected %s or %s", cfg.LogFormat, LogFormatText, LogFormatJSON)
	}

	if cfg.ReportFile != "" && cfg.ReportFile == cfg.PackagesFile {
		return fmt.Errorf("report file %s would overwrite the packages file", cfg.ReportFile)
	}
	return nil
}

// ParseLogLevel converts a level name into a slog level
func ParseLogLevel(value string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(value) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo, fmt.Errorf("incorrect log level '%s': %w", value, err)
	}
	return level, nil
}

func (cfg *Config) applyEnv() {
	cfg.PackagesFile = getEnv("FITNESS_PACKAGES_FILE", cfg.PackagesFile)
	cfg.ReportFile = getEnv("FITNESS_REPORT_FILE", cfg.ReportFile)
	cfg.MetricsFile = getEnv("FITNESS_METRICS_FILE", cfg.MetricsFile)
	cfg.LogLevel = getEnv("FITNESS_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("FITNESS_LOG_FORMAT", cfg.LogFormat)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
