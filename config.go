package logofix

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config mirrors the command-line flags so a project can pin its logo
// locations in a file:
//
//	dir: web
//	patterns:
//	  - "**/static/**/logo*.png"
//	optimize: false
//	preview: true
//	fit: "60,20"
type Config struct {
	Dir      string   `yaml:"dir"`
	Patterns []string `yaml:"patterns"`
	Optimize *bool    `yaml:"optimize"`
	Hidden   bool     `yaml:"hidden"`
	DryRun   bool     `yaml:"dry_run"`
	Preview  bool     `yaml:"preview"`
	Fit      string   `yaml:"fit"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate checks patterns and the fit setting.
func (c *Config) Validate() error {
	if err := ValidatePatterns(c.Patterns); err != nil {
		return err
	}
	if c.Fit != "" {
		if _, _, err := ParseFit(c.Fit); err != nil {
			return err
		}
	}
	return nil
}

// Options translates the config into Fixer options. The preview size comes
// from Fit, or from fallbackCols x fallbackLines when Fit is empty.
func (c *Config) Options(fallbackCols, fallbackLines int) ([]Option, error) {
	var opts []Option
	if c.Dir != "" {
		opts = append(opts, WithDir(c.Dir))
	}
	if len(c.Patterns) > 0 {
		opts = append(opts, WithPatterns(c.Patterns...))
	}
	if c.Optimize != nil && !*c.Optimize {
		opts = append(opts, WithCompression(DefaultCompression))
	}
	if c.Hidden {
		opts = append(opts, WithHidden())
	}
	if c.DryRun {
		opts = append(opts, WithDryRun())
	}
	if c.Preview {
		cols, lines := fallbackCols, fallbackLines
		if c.Fit != "" {
			var err error
			if cols, lines, err = ParseFit(c.Fit); err != nil {
				return nil, err
			}
		}
		opts = append(opts, WithPreview(cols, lines))
	}
	return opts, nil
}

// ParseFit parses "COLS,LINES", e.g. "80,25".
func ParseFit(s string) (cols, lines int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fit %q must be comma separated COLS,LINES", s)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("fit %q: bad column count: %w", s, err)
	}
	if lines, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("fit %q: bad line count: %w", s, err)
	}
	if cols < 1 || lines < 1 {
		return 0, 0, fmt.Errorf("fit %q must be positive", s)
	}
	return cols, lines, nil
}
