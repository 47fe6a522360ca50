// Package config loads .hexpand.yaml files controlling header resolution
// and output wrapping.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// FileName is the configuration file looked up next to the sources.
const FileName = ".hexpand.yaml"

// Config controls one expansion run.
type Config struct {
	IncludeDirs  []string `yaml:"includeDirs,omitempty"`  // system include search list, in order
	LinkageBegin string   `yaml:"linkageBegin,omitempty"` // opening linkage marker
	LinkageEnd   string   `yaml:"linkageEnd,omitempty"`   // closing linkage marker
	IgnoreNames  []string `yaml:"ignoreNames,omitempty"`  // extra deny-list spellings
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		IncludeDirs:  []string{"/usr/include"},
		LinkageBegin: `extern "C" {`,
		LinkageEnd:   `}`,
	}
}

// Load reads and parses one configuration file. Keys absent from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from dir looking for the nearest FileName. It returns ""
// when no configuration file exists on the path to the filesystem root.
func Find(dir string) string {
	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
