// Package main provides the CLI entry point for census.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukaji3/census-go/internal/config"
	applog "github.com/ukaji3/census-go/internal/log"
	"github.com/ukaji3/census-go/pkg/census"
	"github.com/ukaji3/census-go/pkg/census/output"
	"github.com/ukaji3/census-go/pkg/census/parser"
)

type flags struct {
	configPath string
	year       string
	outputDir  string
	format     string
	pretty     bool
	logLevel   string
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "census [input.xlsx]",
		Short: "Calculate monthly hospital census sums",
		Long: `census reads a workbook with one sheet per month (January first),
finds the total census row on each sheet and writes one reconciled
total per month to Hospital_Monthly_Sums_<year>.xlsx.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringVarP(&f.year, "year", "y", "", "Target year (e.g. 2024)")
	rootCmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", ".", "Directory for the summary workbook")
	rootCmd.Flags().StringVar(&f.format, "format", config.FormatXLSX, "Output format: xlsx, json")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&f.logFile, "log-file", "", "Also write logs to this file (rotated)")

	return rootCmd
}

// loadConfig merges the config file, explicitly set flags and the
// positional input path, in increasing precedence.
func loadConfig(cmd *cobra.Command, args []string, f *flags) (*config.Config, error) {
	cfg, err := config.LoadFile(f.configPath)
	if err != nil {
		return nil, err
	}

	set := cmd.Flags().Changed
	if set("year") {
		cfg.Year = f.year
	}
	if set("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if set("format") {
		cfg.Format = f.format
	}
	if set("pretty") {
		cfg.Pretty = f.pretty
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("log-file") {
		cfg.LogFile = f.logFile
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(cmd, args, f)
	if err != nil {
		return err
	}

	// The year is checked first so a bad year is reported as such, before
	// any other problem and before the workbook is touched.
	year, err := census.ParseYear(cfg.Year)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logCfg := applog.DefaultConfig()
	logCfg.Level = level
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.File = cfg.LogFile
	logger := applog.New(logCfg)
	defer logger.Close()
	applog.SetDefault(logger)

	if _, err := os.Stat(cfg.Input); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", cfg.Input)
	}

	wb, err := parser.Open(cfg.Input)
	if err != nil {
		return err
	}
	defer wb.Close()

	opts := census.DefaultOptions()
	if len(cfg.Patterns) > 0 {
		opts.Patterns = cfg.Patterns
	}
	opts.Logger = logger.WithComponent(applog.ComponentAggregate).Logger

	report, err := census.Aggregate(wb, year, opts)
	if err != nil {
		logger.Error("aggregation failed", applog.FieldYear, year, applog.FieldError, err)
		return err
	}
	logger.Info("aggregation complete",
		applog.FieldInput, cfg.Input,
		applog.FieldYear, year,
		applog.FieldResults, len(report.Results),
		applog.FieldSkipped, len(report.Skipped),
	)

	if cfg.Format == config.FormatJSON {
		data, err := output.ToJSON(report, cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	path := filepath.Join(cfg.OutputDir, output.FileName(year))
	if err := output.SaveXLSX(path, report.Results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.WithComponent(applog.ComponentOutput).Info("summary written", applog.FieldOutput, path)

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "File saved to:\n%s\n", path)
	return nil
}
