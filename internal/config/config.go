// Package config provides configuration management for the table generator.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"govtable/internal/models"
)

// Configuration validation errors.
var (
	ErrMissingCSVPath     = errors.New("csv_path is required")
	ErrNoHeaders          = errors.New("at least one header is required")
	ErrMissingUniqueKey   = errors.New("unique_key is required")
	ErrUniqueKeyNotHeader = errors.New("unique_key must be one of the headers")
	ErrTimeColNotHeader   = errors.New("time_col must be one of the headers")
	ErrFilterColNotHeader = errors.New("filter column must be one of the headers")
	ErrLinkColNotHeader   = errors.New("link_col must be one of the headers")
	ErrCategoryNotHeader  = errors.New("category_col must be one of the headers")
	ErrMissingOutputPath  = errors.New("output.html_path is required")
	ErrMissingHistoryPath = errors.New("history.path is required")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete generator configuration.
type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Output   OutputConfig   `yaml:"output"`
	History  HistoryConfig  `yaml:"history"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatasetsConfig holds the two fixed dataset configurations.
type DatasetsConfig struct {
	Notice    DatasetConfig `yaml:"purchase_notice"`
	Intention DatasetConfig `yaml:"purchase_intention"`
}

// DatasetConfig describes one CSV source and its fixed schema.
type DatasetConfig struct {
	CSVPath     string   `yaml:"csv_path"`
	Headers     []string `yaml:"headers"`
	UniqueKey   string   `yaml:"unique_key"`
	FilterCols  []string `yaml:"filter_cols"`
	TimeCol     string   `yaml:"time_col"`
	LinkCol     string   `yaml:"link_col"`
	CategoryCol string   `yaml:"category_col"`
}

// OutputConfig defines where and under which title the page is written.
type OutputConfig struct {
	HTMLPath string `yaml:"html_path"`
	Title    string `yaml:"title"`
}

// HistoryConfig defines where seen keys are persisted between runs.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in fixed configuration. The generator runs
// without flags; everything is configuration, not arguments.
func Default() *Config {
	return &Config{
		Datasets: DatasetsConfig{
			Notice: DatasetConfig{
				CSVPath:     "data/采购公告.csv",
				Headers:     []string{"标题", "采购级别", "采购品类", "发布时间", "详情链接"},
				UniqueKey:   "标题",
				FilterCols:  []string{"采购级别", "采购品类"},
				TimeCol:     "发布时间",
				LinkCol:     "详情链接",
				CategoryCol: "采购品类",
			},
			Intention: DatasetConfig{
				CSVPath:    "data/采购意向公告.csv",
				Headers:    []string{"意向标题", "级别", "采购单位", "意向发布时间", "详情链接"},
				UniqueKey:  "意向标题",
				FilterCols: []string{"级别", "采购单位"},
				TimeCol:    "意向发布时间",
				LinkCol:    "详情链接",
			},
		},
		Output: OutputConfig{
			HTMLPath: "gov-purchase-table.html",
			Title:    "政府采购信息汇总表",
		},
		History: HistoryConfig{
			Path: "history_data.json",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file and validates it. Fields
// not present in the file keep their default values.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	datasets := map[string]*DatasetConfig{
		"purchase_notice":    &c.Datasets.Notice,
		"purchase_intention": &c.Datasets.Intention,
	}

	for name, ds := range datasets {
		if err := ds.validate(); err != nil {
			return fmt.Errorf("%w: datasets.%s", err, name)
		}
	}

	if c.Output.HTMLPath == "" {
		return ErrMissingOutputPath
	}

	if c.History.Path == "" {
		return ErrMissingHistoryPath
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

func (dc *DatasetConfig) validate() error {
	if dc.CSVPath == "" {
		return ErrMissingCSVPath
	}

	if len(dc.Headers) == 0 {
		return ErrNoHeaders
	}

	if dc.UniqueKey == "" {
		return ErrMissingUniqueKey
	}

	headers := make(map[string]bool, len(dc.Headers))
	for _, h := range dc.Headers {
		headers[h] = true
	}

	if !headers[dc.UniqueKey] {
		return ErrUniqueKeyNotHeader
	}

	if dc.TimeCol != "" && !headers[dc.TimeCol] {
		return ErrTimeColNotHeader
	}

	for _, col := range dc.FilterCols {
		if !headers[col] {
			return fmt.Errorf("%w: %q", ErrFilterColNotHeader, col)
		}
	}

	if dc.LinkCol != "" && !headers[dc.LinkCol] {
		return ErrLinkColNotHeader
	}

	if dc.CategoryCol != "" && !headers[dc.CategoryCol] {
		return ErrCategoryNotHeader
	}

	return nil
}

// Schema builds the runtime schema for this dataset.
func (dc *DatasetConfig) Schema(id, heading string) models.Schema {
	return models.Schema{
		ID:          id,
		Heading:     heading,
		Columns:     dc.Headers,
		UniqueKey:   dc.UniqueKey,
		FilterCols:  dc.FilterCols,
		TimeCol:     dc.TimeCol,
		LinkCol:     dc.LinkCol,
		CategoryCol: dc.CategoryCol,
	}
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Notice: %s, Intention: %s, Output: %s}",
		c.Datasets.Notice.CSVPath,
		c.Datasets.Intention.CSVPath,
		c.Output.HTMLPath,
	)
}
