// Package config loads runtime configuration from the environment.
package config

import "os"

// Config holds CLI runtime configuration.
type Config struct {
	LogLevel   string
	LogFormat  string
	CatalogDir string
	Output     string
	NoColor    bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	logLevel := os.Getenv("RATECARD_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	logFormat := os.Getenv("RATECARD_LOG_FORMAT")
	if logFormat == "" {
		logFormat = "text"
	}

	output := os.Getenv("RATECARD_OUTPUT")
	if output == "" {
		output = "table"
	}

	// NO_COLOR is the conventional cross-tool switch, the RATECARD
	// variant wins when both are set.
	noColor := os.Getenv("NO_COLOR") != ""
	if v := os.Getenv("RATECARD_NO_COLOR"); v != "" {
		noColor = v == "true" || v == "1"
	}

	return &Config{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		CatalogDir: os.Getenv("RATECARD_CATALOG_DIR"),
		Output:     output,
		NoColor:    noColor,
	}
}
