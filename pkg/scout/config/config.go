package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scoutdoc/scout/pkg/scout/internalerr"
)

// Config is the on-disk configuration for a Scout run.
type Config struct {
	MinLength        int `yaml:"min_length"`
	MaxLength        int `yaml:"max_length"`
	FrequencyCeiling int `yaml:"frequency_ceiling"`

	// Optional capability toggles.
	EntityGuard        bool `yaml:"entity_guard"`
	SemanticSimilarity bool `yaml:"semantic_similarity"`

	// Path to an extra exclusion term file (YAML, `terms:` list).
	ExclusionTerms string `yaml:"exclusion_terms"`

	Scanner ScannerConfig `yaml:"scanner"`

	// Path to the scan history database. Empty disables history.
	HistoryDB string `yaml:"history_db"`
}

// ScannerConfig controls document discovery.
type ScannerConfig struct {
	Extensions  []string `yaml:"extensions"`
	IgnoreGlobs []string `yaml:"ignore_globs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MinLength:        2,
		MaxLength:        10,
		FrequencyCeiling: 50,
		EntityGuard:      true,
		Scanner: ScannerConfig{
			Extensions: []string{".txt", ".md", ".markdown", ".html", ".htm"},
		},
	}
}

// Load reads a YAML config file, applying defaults for omitted fields.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate fails fast on settings under which no valid extraction can
// occur.
func (c Config) Validate() error {
	if c.MinLength <= 0 || c.MaxLength <= 0 {
		return fmt.Errorf("%w: token length bounds must be positive (min=%d max=%d)",
			internalerr.ErrInvalidConfig, c.MinLength, c.MaxLength)
	}
	if c.MinLength > c.MaxLength {
		return fmt.Errorf("%w: min_length %d exceeds max_length %d",
			internalerr.ErrInvalidConfig, c.MinLength, c.MaxLength)
	}
	if c.FrequencyCeiling < 0 {
		return fmt.Errorf("%w: frequency_ceiling must not be negative",
			internalerr.ErrInvalidConfig)
	}
	return nil
}
