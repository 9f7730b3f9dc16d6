package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid xlsx config",
			config: Config{Input: "census.xlsx", Year: "2024", OutputDir: dir, Format: FormatXLSX, LogLevel: "info"},
		},
		{
			name:   "valid json config ignores output dir",
			config: Config{Input: "census.xlsx", Year: "2024", Format: FormatJSON, LogLevel: "debug"},
		},
		{
			name:        "missing input",
			config:      Config{Year: "2024", OutputDir: dir, Format: FormatXLSX},
			wantErr:     true,
			errorString: "input workbook is required",
		},
		{
			name:        "missing year",
			config:      Config{Input: "census.xlsx", OutputDir: dir, Format: FormatXLSX},
			wantErr:     true,
			errorString: "year is required",
		},
		{
			name:        "output dir is a file",
			config:      Config{Input: "census.xlsx", Year: "2024", OutputDir: file, Format: FormatXLSX},
			wantErr:     true,
			errorString: "is not a directory",
		},
		{
			name:        "output dir missing",
			config:      Config{Input: "census.xlsx", Year: "2024", OutputDir: filepath.Join(dir, "nope"), Format: FormatXLSX},
			wantErr:     true,
			errorString: "output directory",
		},
		{
			name:        "invalid format",
			config:      Config{Input: "census.xlsx", Year: "2024", Format: "csv"},
			wantErr:     true,
			errorString: "invalid format 'csv'",
		},
		{
			name:        "invalid log level",
			config:      Config{Input: "census.xlsx", Year: "2024", Format: FormatJSON, LogLevel: "loud"},
			wantErr:     true,
			errorString: `unknown log level "loud"`,
		},
		{
			name:        "blank pattern",
			config:      Config{Input: "census.xlsx", Year: "2024", Format: FormatJSON, Patterns: []string{"BSLMC", " "}},
			wantErr:     true,
			errorString: "pattern 1 is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	err := (&Config{Format: "csv"}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input workbook is required")
	assert.Contains(t, err.Error(), "year is required")
	assert.Contains(t, err.Error(), "invalid format")
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "census.yaml")
	content := `input: data/census_2024.xlsx
year: "2024"
format: json
patterns:
  - BSLMC Total Census
  - Midnight Census
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data/census_2024.xlsx", cfg.Input)
	assert.Equal(t, "2024", cfg.Year)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ".", cfg.OutputDir, "defaults survive")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"BSLMC Total Census", "Midnight Census"}, cfg.Patterns)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("patterns: [unterminated"), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)
}
