package harness

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config selects what to run and where inputs live.
type Config struct {
	InputDir string `yaml:"input_dir"`
	Days     []int  `yaml:"days"`
	Parts    []int  `yaml:"parts"`
}

// DefaultConfig reads from ./input and runs every registered day and part.
func DefaultConfig() Config {
	return Config{InputDir: "input"}
}

// LoadConfig reads a YAML config file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "harness: reading config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "harness: decoding config %s", path)
	}
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultConfig().InputDir
	}
	for _, p := range cfg.Parts {
		if p < 1 || p > 3 {
			return cfg, errors.Wrapf(ErrBadPart, "config %s: part %d", path, p)
		}
	}

	return cfg, nil
}
