// Package config loads and validates the CLI's optional config file. It is a CLI-layer
// convenience only: nothing in the core conversion packages depends on it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a zhconv config file (YAML or JSON), letting a user pin
// defaults instead of repeating flags on every invocation.
type Config struct {
	// DefaultVariant is used when VARIANT is omitted from the command line, e.g. "zh-cn".
	DefaultVariant string `yaml:"default_variant" json:"default_variant"`

	// Wikitext enables extended wikitext-mode scanning by default.
	Wikitext bool `yaml:"wikitext" json:"wikitext"`

	// Rules are additional inline-syntax rule lines (the Conv grammar of spec §4.C), applied on
	// top of the target's built-in table.
	Rules []string `yaml:"rules" json:"rules"`

	// RuleFiles are paths to files of newline-separated rule lines, read in order after Rules.
	RuleFiles []string `yaml:"rule_files" json:"rule_files"`

	// Color controls diagnostic coloring: "auto" (default), "always", or "never".
	Color string `yaml:"color" json:"color"`
}

// Load reads and parses a config file, dispatching on its extension (.yaml/.yml or .json).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{Color: "auto"}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config: unsupported file format %q (supported: .yaml, .yml, .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// GenerateExample renders a sample config in the given format ("yaml" or "json").
func GenerateExample(format string) ([]byte, error) {
	example := Config{
		DefaultVariant: "zh-cn",
		Wikitext:       false,
		Rules:          []string{"zh-hans:计算机; zh-hant:電腦"},
		Color:          "auto",
	}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(&example)
	case "json":
		return json.MarshalIndent(&example, "", "  ")
	default:
		return nil, fmt.Errorf("config: unsupported format %q (supported: yaml, json)", format)
	}
}
