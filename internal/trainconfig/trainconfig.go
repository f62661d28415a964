// Package trainconfig parses the YAML manifest that drives lexsleuth
// train: which sample directories correspond to which class labels, and
// the cross-validation parameters used to pick a ridge penalty.
package trainconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/lexsleuth/lexsleuth/internal/lexerr"
)

// Class names one label and the directory of sample files that teach the
// model to recognize it.
type Class struct {
	Label string `yaml:"label"`
	Dir   string `yaml:"dir"`
}

// Config is the full training manifest.
type Config struct {
	Classes []Class `yaml:"classes"`
	Folds   int     `yaml:"folds"`
	Seed    uint64  `yaml:"seed"`
	Output  string  `yaml:"output"`
}

// defaultFolds and defaultSeed mirror the reference implementation's
// k=4, seed=0x88 defaults so a manifest that omits them still trains
// reproducibly the same way.
const (
	defaultFolds = 4
	defaultSeed  = 0x88
)

// Load reads and validates a training manifest from path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &lexerr.IoError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &lexerr.ConfigurationError{Reason: fmt.Sprintf("parsing %s: %v", path, err)}
	}

	if cfg.Folds == 0 {
		cfg.Folds = defaultFolds
	}
	if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	if len(cfg.Classes) < 2 {
		return Config{}, &lexerr.ConfigurationError{Reason: "training manifest must list at least two classes"}
	}
	seen := make(map[string]bool, len(cfg.Classes))
	for _, c := range cfg.Classes {
		if c.Label == "" || c.Dir == "" {
			return Config{}, &lexerr.ConfigurationError{Reason: "every class needs both a label and a dir"}
		}
		if seen[c.Label] {
			return Config{}, &lexerr.ConfigurationError{Reason: fmt.Sprintf("duplicate class label %q", c.Label)}
		}
		seen[c.Label] = true
	}
	if cfg.Output == "" {
		return Config{}, &lexerr.ConfigurationError{Reason: "training manifest must set output"}
	}

	return cfg, nil
}
