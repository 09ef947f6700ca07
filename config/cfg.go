package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// AppName is used for the logger name and derived file names.
const AppName = "gilt"

//go:embed config.yaml
var configDefaults []byte

type (
	// StylesheetsConfig lists stylesheet files loaded before any command
	// line additions. Default sheets are compiled at default origin, user
	// sheets at user origin.
	StylesheetsConfig struct {
		DefaultPaths []string `yaml:"default_paths"`
		UserPaths    []string `yaml:"user_paths"`
	}

	Config struct {
		Version     int               `yaml:"version"`
		Stylesheets StylesheetsConfig `yaml:"stylesheets"`
		Logging     LoggingConfig     `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposing its values on top of embedded defaults. Empty path returns
// defaults only.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(configDefaults, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) == 0 {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns embedded default configuration as a byte slice.
func Prepare() ([]byte, error) {
	return bytes.Clone(configDefaults), nil
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
