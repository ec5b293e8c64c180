// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. PP_LOG_LEVEL.
const EnvPrefix = "PP"

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	PDF struct {
		// TemplateFile overrides the built-in payment order layout.
		TemplateFile string `mapstructure:"template_file" yaml:"template_file"`
		// LineTolerance is the largest vertical distance, in points, between glyphs of one line.
		LineTolerance float64 `mapstructure:"line_tolerance" yaml:"line_tolerance"`
		// WordGap is the largest horizontal gap, in points, between glyphs of one word.
		WordGap float64 `mapstructure:"word_gap" yaml:"word_gap"`
		// Validate runs a structural PDF check before extraction.
		Validate bool `mapstructure:"validate" yaml:"validate"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Export struct {
		Format    string `mapstructure:"format" yaml:"format"`
		SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	} `mapstructure:"export" yaml:"export"`

	Database struct {
		DSN              string `mapstructure:"dsn" yaml:"-"`
		StoreFileContent bool   `mapstructure:"store_file_content" yaml:"store_file_content"`
	} `mapstructure:"database" yaml:"database"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig loads configuration from defaults, the first config.yaml found
// in the standard locations, and PP_* environment variables.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig is like InitializeConfig but reads configFile when it is not empty.
// An explicit file that cannot be read is an error; a missing default file is not.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.pp-parser")
		v.AddConfigPath(".pp-parser")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. The database DSN is also accepted under its conventional name
	if err := v.BindEnv("database.dsn", EnvPrefix+"_DATABASE_DSN", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database DSN environment variables: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("pdf.template_file", "")
	v.SetDefault("pdf.line_tolerance", 3.0)
	v.SetDefault("pdf.word_gap", 3.0)
	v.SetDefault("pdf.validate", false)

	v.SetDefault("export.format", FormatCSV)
	v.SetDefault("export.sheet_name", "Documents")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.store_file_content", true)

	v.SetDefault("batch.workers", 4)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.PDF.LineTolerance < 0 {
		return fmt.Errorf("pdf.line_tolerance must not be negative, got: %f", config.PDF.LineTolerance)
	}
	if config.PDF.WordGap < 0 {
		return fmt.Errorf("pdf.word_gap must not be negative, got: %f", config.PDF.WordGap)
	}

	switch config.Export.Format {
	case FormatCSV, FormatXLSX:
	default:
		return fmt.Errorf("invalid export format: %s (must be '%s' or '%s')", config.Export.Format, FormatCSV, FormatXLSX)
	}

	if config.Batch.Workers < 1 || config.Batch.Workers > 64 {
		return fmt.Errorf("batch.workers must be between 1 and 64, got: %d", config.Batch.Workers)
	}

	return nil
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r := []rune(c.CSV.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
