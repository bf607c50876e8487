// Package config holds the settings of the gocalc command and loads them
// from an optional HCL file.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the merged result of the config file and command-line flags.
// Fields without an hcl tag can only be set from the command line.
type Config struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
	Prompt    string `hcl:"prompt,optional"`
	ShowTree  bool   `hcl:"show_tree,optional"`

	ConfigPath string
	Examples   bool
	Args       []string
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Prompt:    "> ",
	}
}

// LoadFile decodes the HCL file at path on top of cfg. Attributes missing
// from the file keep their current values.
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return nil
}

// Validate normalizes the level and format and rejects unknown values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}
