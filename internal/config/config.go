// Package config holds the run request of the census CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/census-go/internal/log"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// Config is one aggregation request.
type Config struct {
	// Input is the path of the monthly census workbook.
	Input string `yaml:"input"`
	// Year is the target year as typed by the user; parsed by census.ParseYear.
	Year string `yaml:"year"`
	// OutputDir receives the summary workbook.
	OutputDir string `yaml:"output_dir"`
	// Format is xlsx or json.
	Format string `yaml:"format"`
	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
	// Patterns overrides the census row labels.
	Patterns []string `yaml:"patterns"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Format:    FormatXLSX,
		LogLevel:  "info",
	}
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid.
// The year is only checked for presence; its range is the caller's concern.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Input) == "" {
		problems = append(problems, "input workbook is required")
	}
	if strings.TrimSpace(c.Year) == "" {
		problems = append(problems, "year is required")
	}

	switch c.Format {
	case FormatXLSX:
		if c.OutputDir == "" {
			problems = append(problems, "output directory is required")
		} else if info, err := os.Stat(c.OutputDir); err != nil {
			problems = append(problems, fmt.Sprintf("output directory '%s': %v", c.OutputDir, err))
		} else if !info.IsDir() {
			problems = append(problems, fmt.Sprintf("output directory '%s' is not a directory", c.OutputDir))
		}
	case FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("invalid format '%s': must be one of [%s %s]", c.Format, FormatXLSX, FormatJSON))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	for i, p := range c.Patterns {
		if strings.TrimSpace(p) == "" {
			problems = append(problems, fmt.Sprintf("pattern %d is empty", i))
		}
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}
