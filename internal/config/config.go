// Package config loads dispatcher configuration. Configuration is entirely
// optional: with no config file and no environment overrides the defaults
// reproduce the documented branch-to-version behavior exactly.
package config

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/docsdispatch/internal/versioning"
	"gopkg.in/yaml.v3"
)

// Config holds the dispatcher settings.
type Config struct {
	// SourceDir is the documentation source directory passed to the generator.
	SourceDir string `yaml:"source_dir"`

	// OutputPrefix is joined with the resolved version label to form the
	// generator's output directory. Plain string concatenation, so a
	// trailing separator belongs in the prefix.
	OutputPrefix string `yaml:"output_prefix"`

	// EnvVar names the environment variable that carries the resolved
	// version label into the generator process.
	EnvVar string `yaml:"env_var"`

	// Command is the documentation generator executable.
	Command string `yaml:"command"`

	// Args are extra arguments placed before the source and output
	// directory arguments.
	Args []string `yaml:"args"`

	// Mappings overrides the built-in branch-to-version table when non-empty.
	Mappings []versioning.Mapping `yaml:"mappings"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SourceDir:    "docs/",
		OutputPrefix: "docs/public/en/",
		EnvVar:       "DOCS_VERSION",
		Command:      "sphinx-build",
		Args:         []string{"-a"},
		Mappings:     versioning.DefaultMappings(),
	}
}

// Load reads configuration from path, layered as defaults < file < env.
// A missing file is not an error; the tool runs config-free by default.
func Load(path string) (*Config, error) {
	cfg := Default()

	loadEnvFiles()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				applyEnvOverrides(cfg)
				return cfg, nil
			}
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// OutputDir returns the generator output directory for a version label.
func (c *Config) OutputDir(version string) string {
	return c.OutputPrefix + version
}

// Resolver builds the branch resolver from the configured mapping table.
func (c *Config) Resolver() *versioning.TableResolver {
	return versioning.NewResolver(c.Mappings)
}
