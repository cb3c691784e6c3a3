package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/datenorm/internal/normalize"
)

// DefaultSampleSize is how many rows format detection looks at.
const DefaultSampleSize = 1000

// Config holds all runtime configuration for a datenorm run.
type Config struct {
	DSN       string `env:"DATABASE_URL"`
	LogFormat string `env:"DATENORM_LOG_FORMAT" envDefault:"text"` // "text" or "json"
	LogLevel  string `env:"DATENORM_LOG_LEVEL" envDefault:"info"`

	FilePath   string
	OutPath    string
	ConfigPath string
	Output     string // "text" or "json"
	Force      bool

	// Date format. Empty Order or "auto" means detect from the data.
	Order         string
	Separator     string // "none" selects fixed-width digits
	TimeSeparator string
	Ambiguity     string // day-first, month-first or reject
	DateOnly      bool
	SampleSize    int
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Order         string `yaml:"order"`
	Separator     string `yaml:"separator"`
	TimeSeparator string `yaml:"time_separator"`
	Ambiguity     string `yaml:"ambiguity"`
	DateOnly      *bool  `yaml:"date_only"`
	SampleSize    int    `yaml:"sample_size"`
}

// LoadEnv reads an optional .env file and then the process environment.
func (c *Config) LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}

// LoadFromFile reads a YAML config file and fills in any format settings not
// already set, so command-line flags take precedence.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.Order == "" {
		c.Order = yc.Order
	}
	if c.Separator == "" {
		c.Separator = yc.Separator
	}
	if c.TimeSeparator == "" {
		c.TimeSeparator = yc.TimeSeparator
	}
	if c.Ambiguity == "" {
		c.Ambiguity = yc.Ambiguity
	}
	if !c.DateOnly && yc.DateOnly != nil {
		c.DateOnly = *yc.DateOnly
	}
	if c.SampleSize == 0 {
		c.SampleSize = yc.SampleSize
	}
	_, err = c.Normalizer()
	return err
}

// FormatOptions returns the explicit date format, or nil when the format
// should be detected.
func (c *Config) FormatOptions() (*normalize.FormatOptions, error) {
	order := strings.ToLower(strings.TrimSpace(c.Order))
	if order == "" || order == "auto" {
		if c.Separator != "" {
			return nil, fmt.Errorf("separator %q requires an explicit order", c.Separator)
		}
		return nil, nil
	}
	o, err := normalize.ParseFieldOrder(order)
	if err != nil {
		return nil, err
	}
	sep := '-'
	if c.Separator != "" {
		if sep, err = parseSeparator(c.Separator); err != nil {
			return nil, err
		}
	}
	return &normalize.FormatOptions{Order: o, Separator: sep}, nil
}

// Normalizer builds the normalizer described by the format settings.
func (c *Config) Normalizer() (normalize.Normalizer, error) {
	n := normalize.Default()
	opts, err := c.FormatOptions()
	if err != nil {
		return n, err
	}
	n.Options = opts
	if c.TimeSeparator != "" {
		sep, err := parseSeparator(c.TimeSeparator)
		if err != nil {
			return n, fmt.Errorf("time separator: %w", err)
		}
		n.TimeSeparator = sep
	}
	if n.Ambiguity, err = normalize.ParseAmbiguityPolicy(c.Ambiguity); err != nil {
		return n, err
	}
	return n, nil
}

// Samples returns the configured detection sample size or the default.
func (c *Config) Samples() int {
	if c.SampleSize > 0 {
		return c.SampleSize
	}
	return DefaultSampleSize
}

// parseSeparator accepts a single character, or "none" for fixed-width mode.
func parseSeparator(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "none", "fixed":
		return 0, nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if _, err := c.Normalizer(); err != nil {
		return fmt.Errorf("date format: %w", err)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or DATABASE_URL is required")
	}
	return nil
}
