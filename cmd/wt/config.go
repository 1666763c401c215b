package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wtmanager/wt/registry"
)

type Config struct {
	Language  string `yaml:"language"`
	Shell     string `yaml:"shell"`
	Provision *bool  `yaml:"provision,omitempty"`
	LogLevel  string `yaml:"log_level"`
}

const (
	defaultLogLevel = "info"
	configFileName  = "config.yaml"
)

func defaultConfig() Config {
	provision := true
	return Config{Provision: &provision, LogLevel: defaultLogLevel}
}

func (c Config) ProvisionEnabled() bool {
	return c.Provision == nil || *c.Provision
}

func (c Config) normalize() Config {
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	c.Shell = strings.TrimSpace(c.Shell)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Provision == nil {
		provision := true
		c.Provision = &provision
	}
	return c
}

// LoadConfig returns defaults when the file does not exist yet.
func LoadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.normalize(), nil
}

func ConfigExists() (bool, error) {
	path, err := configPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func SaveConfig(cfg Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg.normalize())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func stateDir() (string, error) {
	home := os.Getenv("HOME")
	if strings.TrimSpace(home) == "" {
		return "", errors.New("HOME not set")
	}
	return registry.StateDir(home), nil
}

func configPath() (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
