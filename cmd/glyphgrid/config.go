package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML config file schema. Timeout is a Go duration
// string, e.g. "10s".
type fileConfig struct {
	URL     string `yaml:"url"`
	Debug   *bool  `yaml:"debug"`
	Timeout string `yaml:"timeout"`
}

// loadConfig reads and validates a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Timeout != "" {
		if _, err := time.ParseDuration(cfg.Timeout); err != nil {
			return nil, fmt.Errorf("parsing config %s: invalid timeout: %w", path, err)
		}
	}

	return &cfg, nil
}

// apply copies file values into the flag targets. Flags set explicitly on
// the command line win over the file.
func (c *fileConfig) apply(flags *pflag.FlagSet, url *string, debug *bool, timeout *time.Duration) {
	if c.URL != "" && !flags.Changed("url") {
		*url = c.URL
	}
	if c.Debug != nil && !flags.Changed("debug") {
		*debug = *c.Debug
	}
	if c.Timeout != "" && !flags.Changed("timeout") {
		// Validated in loadConfig.
		d, _ := time.ParseDuration(c.Timeout)
		*timeout = d
	}
}
