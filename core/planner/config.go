package planner

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config defines the planning parameters.
type Config struct {
	// MinLines is the minimum number of hosting lines a course needs to
	// enter the ranking. Courses below it are reported with Range 0.
	MinLines int `json:"min_lines" yaml:"min_lines"`
	// IgnoreZeros leaves absent lines out of the range computation.
	IgnoreZeros bool `json:"ignore_zeros" yaml:"ignore_zeros"`
	// TopOnly restricts planning to the N most imbalanced courses.
	// 0 plans every ranked course.
	TopOnly int `json:"top_only" yaml:"top_only"`
	// SinglePass disables the iterative planner. The run is then a pure
	// diagnosis: distributions are reported but no moves are proposed.
	SinglePass bool `json:"single_pass" yaml:"single_pass"`
	// MaxMovesPerStudent caps the total moves per student across all
	// courses in one run.
	MaxMovesPerStudent int `json:"max_moves_per_student" yaml:"max_moves_per_student"`
	// MaxAttemptsPerCourse bounds the move-apply loop of one course.
	MaxAttemptsPerCourse int `json:"max_attempts_per_course" yaml:"max_attempts_per_course"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MinLines == 0 {
		c.MinLines = 2
	}
	if c.MaxMovesPerStudent == 0 {
		c.MaxMovesPerStudent = 3
	}
	if c.MaxAttemptsPerCourse == 0 {
		c.MaxAttemptsPerCourse = 100
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.MinLines < 0 {
		return fmt.Errorf("min_lines must not be negative")
	}
	if c.TopOnly < 0 {
		return fmt.Errorf("top_only must not be negative")
	}
	if c.MaxMovesPerStudent < 1 {
		return fmt.Errorf("max_moves_per_student must be positive")
	}
	if c.MaxAttemptsPerCourse < 1 {
		return fmt.Errorf("max_attempts_per_course must be positive")
	}
	return nil
}

// LoadConfig loads Config from a JSON or YAML file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var cfg Config
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, err
}

// DecodeConfig reads from r to decode a Config.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	var cfg Config
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
			return cfg, err
		}
	case "json":
		if err := json.NewDecoder(r).Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}
