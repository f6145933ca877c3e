// Package config loads the optional cordovagen configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

const (
	// YAMLFile is the YAML configuration file name.
	YAMLFile = ".cordovagen.yaml"

	// TOMLFile is the TOML configuration file name, read when no YAML file exists.
	TOMLFile = ".cordovagen.toml"

	// EnvProject overrides the project root.
	EnvProject = "CORDOVAGEN_PROJECT"

	// DefaultProject is the project root used when nothing else is configured.
	DefaultProject = "."
)

// Config holds the settings that can be set in a configuration file.
// The project layout itself (search roots, marker, output file) is fixed.
type Config struct {
	// Project is the project root containing src/ and lib/.
	Project string `yaml:"project" toml:"project"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" toml:"verbose"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no-color" toml:"no-color"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Project: DefaultProject}
}

// LoadConfigFn loads the configuration from the working directory.
// It is a variable so tests can replace it.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads the configuration found in dir.
// Priority: CORDOVAGEN_PROJECT for the project root, then the YAML file,
// then the TOML file, then defaults. A missing file is not an error.
func LoadFrom(dir string) (*Config, error) {
	cfg, err := loadFile(dir)
	if err != nil {
		return nil, err
	}

	if envPath := os.Getenv(EnvProject); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvProject)
		}
		cfg.Project = cleanPath
	}

	if cfg.Project == "" {
		cfg.Project = DefaultProject
	}

	return cfg, nil
}

func loadFile(dir string) (*Config, error) {
	yamlPath := filepath.Join(dir, YAMLFile)
	data, err := os.ReadFile(yamlPath)
	if err == nil {
		return decodeYAML(yamlPath, data)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %q: %w", yamlPath, err)
	}

	tomlPath := filepath.Join(dir, TOMLFile)
	data, err = os.ReadFile(tomlPath)
	if err == nil {
		return decodeTOML(tomlPath, data)
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %q: %w", tomlPath, err)
	}

	return Default(), nil
}

func decodeYAML(path string, data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		// An empty file decodes to EOF; treat it as "all defaults".
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(path string, data []byte) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}
