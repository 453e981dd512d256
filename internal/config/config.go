package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version    int        `yaml:"version"`
	Package    Package    `yaml:"package"`
	Specs      []Spec     `yaml:"specs"`
	Output     Output     `yaml:"output"`
	Migrations Migrations `yaml:"migrations"`
}

type Package struct {
	Path string `yaml:"path"`
}

type Spec struct {
	Path string `yaml:"path"`
}

type Output struct {
	Path string `yaml:"path"`
}

type Migrations struct {
	Path string `yaml:"path"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileData, &config); err != nil {
		return nil, fmt.Errorf(`failed to unmarshal config file "%s": %w`, configPath, err)
	}

	return &config, nil
}
