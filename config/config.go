package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rowanhk/linebalance/core/model"
	"github.com/rowanhk/linebalance/core/planner"
	"github.com/rowanhk/linebalance/pkg/export"
	"github.com/rowanhk/linebalance/pkg/report"
)

// Config is the full configuration of a balancing run.
type Config struct {
	Input   InputConfig    `json:"input"`
	Output  OutputConfig   `json:"output"`
	Planner planner.Config `json:"planner"`
	Report  ReportConfig   `json:"report"`
}

// InputConfig describes the allocations export to read.
type InputConfig struct {
	Path string `json:"path"`
	// CodeColumn is the student identifier column header.
	CodeColumn string `json:"code_column"`
	// LinePrefix identifies line columns by header prefix (AL1..ALn).
	LinePrefix string `json:"line_prefix"`
	// CoursePrefixLen is the class-code prefix length that names a course.
	CoursePrefixLen int `json:"course_prefix_len"`
}

// OutputConfig selects where and how results are written.
type OutputConfig struct {
	Dir    string `json:"dir"`
	Format string `json:"format"` // csv, json or both
}

// ReportConfig holds presentation thresholds.
type ReportConfig struct {
	UnbalancedThreshold int `json:"unbalanced_threshold"`
}

// SetDefaults applies sane defaults.
func (c *InputConfig) SetDefaults() {
	if c.CodeColumn == "" {
		c.CodeColumn = "Code"
	}
	if c.LinePrefix == "" {
		c.LinePrefix = "AL"
	}
	if c.CoursePrefixLen == 0 {
		c.CoursePrefixLen = model.DefaultCoursePrefixLen
	}
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.CoursePrefixLen < 1 {
		return fmt.Errorf("course_prefix_len must be positive")
	}
	return nil
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "./out"
	}
	if c.Format == "" {
		c.Format = string(export.FormatCSV)
	}
}

// Validate checks mandatory fields.
func (c OutputConfig) Validate() error {
	switch export.Format(c.Format) {
	case export.FormatCSV, export.FormatJSON, export.FormatBoth:
		return nil
	}
	return fmt.Errorf("unknown output format %s", c.Format)
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.UnbalancedThreshold == 0 {
		c.UnbalancedThreshold = report.DefaultUnbalancedThreshold
	}
}

// Load reads the configuration from a YAML or JSON file, applies
// environment overrides (LB_ prefix, __ as separator), then defaults
// and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("LB_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "lb_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills every section's defaults.
func (c *Config) ApplyDefaults() {
	c.Input.SetDefaults()
	c.Output.SetDefaults()
	c.Planner.SetDefaults()
	c.Report.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Input.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Planner.Validate()
}
