// Package config loads the flag and environment configuration of the two
// command line tools. Flags win over environment variables, which use the
// CTDOSE_ prefix.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultSourceFolder      = "ct_reports"
	DefaultJSONFolder        = "ct_reports_json"
	DefaultAggregateFilename = "ct_reports_all.json"
	DefaultWorkbookFilename  = "ct_dose_report.xlsx"
	DefaultMaxFileSize       = 100 * 1024 * 1024 // 100MB

	envPrefix = "CTDOSE"
)

// ExtractConfig configures the PDF-folder-to-JSON-folder batch tool.
type ExtractConfig struct {
	SourceFolder      string
	OutputFolder      string
	AggregateFilename string
	MaxFileSize       int64
	Debug             bool
}

// ExcelConfig configures the JSON-folder-to-spreadsheet tool.
type ExcelConfig struct {
	InputFolder string
	OutputFile  string
}

// LoadExtractConfig parses args (without the program name) into an
// ExtractConfig.
func LoadExtractConfig(args []string) (*ExtractConfig, error) {
	flags := pflag.NewFlagSet("ctdose-extract", pflag.ContinueOnError)
	flags.String("folder", DefaultSourceFolder, "Folder containing the PDF dose reports")
	flags.String("output-folder", DefaultJSONFolder, "Folder to write the JSON reports into")
	flags.String("output", DefaultAggregateFilename, "Filename of the aggregate JSON with all reports")
	flags.Int64("maxfilesize", DefaultMaxFileSize, "Maximum PDF file size in bytes")
	flags.Bool("debug", false, "Enable verbose per-document logging")

	v, err := bindFlags(flags, args)
	if err != nil {
		return nil, err
	}

	cfg := &ExtractConfig{
		SourceFolder:      v.GetString("folder"),
		OutputFolder:      v.GetString("output-folder"),
		AggregateFilename: v.GetString("output"),
		MaxFileSize:       v.GetInt64("maxfilesize"),
		Debug:             v.GetBool("debug"),
	}

	if expanded, err := filepath.Abs(cfg.SourceFolder); err == nil {
		cfg.SourceFolder = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadExcelConfig parses args (without the program name) into an
// ExcelConfig.
func LoadExcelConfig(args []string) (*ExcelConfig, error) {
	flags := pflag.NewFlagSet("ctdose-excel", pflag.ContinueOnError)
	flags.String("input-folder", DefaultJSONFolder, "Folder containing the JSON reports")
	flags.String("output", DefaultWorkbookFilename, "Filename of the XLSX workbook to write")

	v, err := bindFlags(flags, args)
	if err != nil {
		return nil, err
	}

	cfg := &ExcelConfig{
		InputFolder: v.GetString("input-folder"),
		OutputFile:  v.GetString("output"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// bindFlags parses the flag set and binds it into a fresh viper instance
// with environment variable overrides.
func bindFlags(flags *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// Validate checks the extract configuration, creating the source folder
// when it does not exist yet.
func (c *ExtractConfig) Validate() error {
	if c.SourceFolder == "" {
		return errors.New("source folder cannot be empty")
	}
	if c.OutputFolder == "" {
		return errors.New("output folder cannot be empty")
	}
	if c.AggregateFilename == "" {
		return errors.New("aggregate filename cannot be empty")
	}
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if _, err := os.Stat(c.SourceFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(c.SourceFolder, 0o750); err != nil {
			return fmt.Errorf("cannot create source folder %s: %w", c.SourceFolder, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access source folder %s: %w", c.SourceFolder, err)
	}

	return nil
}

// Validate checks the spreadsheet configuration.
func (c *ExcelConfig) Validate() error {
	if c.InputFolder == "" {
		return errors.New("input folder cannot be empty")
	}
	if c.OutputFile == "" {
		return errors.New("output filename cannot be empty")
	}
	return nil
}

// String returns a loggable summary of the extract configuration.
func (c *ExtractConfig) String() string {
	return fmt.Sprintf("ExtractConfig{SourceFolder: %s, OutputFolder: %s, AggregateFilename: %s, Debug: %t}",
		c.SourceFolder, c.OutputFolder, c.AggregateFilename, c.Debug)
}
