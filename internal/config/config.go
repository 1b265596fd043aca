package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sigs.k8s.io/yaml"
)

const appName = "verctl"

// Config is read once at process start and never re-read; changing it
// requires a restart.
type Config struct {
	Service  *svcConfig      `json:"service,omitempty"`
	Versions []VersionConfig `json:"versions,omitempty"`
	Display  *DisplayConfig  `json:"display,omitempty"`
}

type svcConfig struct {
	Address            string `json:"address,omitempty"`
	LogLevel           string `json:"logLevel,omitempty"`
	HttpMaxRequestSize int    `json:"httpMaxRequestSize,omitempty"`
	HttpMaxUrlLength   int    `json:"httpMaxUrlLength,omitempty"`
	HttpMaxNumHeaders  int    `json:"httpMaxNumHeaders,omitempty"`
}

// VersionConfig is one API version entry. Dates are RFC 3339 timestamps.
type VersionConfig struct {
	Name            string     `json:"name"`
	SemanticVersion string     `json:"semanticVersion"`
	Status          string     `json:"status"`
	DeprecationDate *time.Time `json:"deprecationDate,omitempty"`
	SunsetDate      *time.Time `json:"sunsetDate,omitempty"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// DisplayConfig is pass-through configuration for the documentation UI.
type DisplayConfig struct {
	Title   string   `json:"title,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Layout  string   `json:"layout,omitempty"`
	Servers []string `json:"servers,omitempty"`
}

func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "."+appName)
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func NewDefault() *Config {
	return &Config{
		Service: &svcConfig{
			Address:            ":3380",
			LogLevel:           "info",
			HttpMaxRequestSize: 1024 * 1024,
			HttpMaxUrlLength:   2000,
			HttpMaxNumHeaders:  32,
		},
		Versions: []VersionConfig{
			{
				Name:            "v1",
				SemanticVersion: "1.0.0",
				Status:          "Active",
			},
		},
		Display: &DisplayConfig{
			Title:  "verctl API",
			Theme:  "default",
			Layout: "sidebar",
		},
	}
}

func NewFromFile(cfgFile string) (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadOrGenerate(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfgFile), os.FileMode(0755)); err != nil {
			return nil, fmt.Errorf("creating directory for config file: %v", err)
		}
		if err := Save(NewDefault(), cfgFile); err != nil {
			return nil, err
		}
	}
	return NewFromFile(cfgFile)
}

func Load(cfgFile string) (*Config, error) {
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %v", err)
	}
	c := NewDefault()
	if err := yaml.Unmarshal(contents, c); err != nil {
		return nil, fmt.Errorf("decoding config: %v", err)
	}
	return c, nil
}

func Save(cfg *Config, cfgFile string) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %v", err)
	}
	if err := os.WriteFile(cfgFile, contents, 0600); err != nil {
		return fmt.Errorf("writing config file: %v", err)
	}
	return nil
}

// Validate checks the service section only. Version entries are validated
// by the version registry, which owns those invariants.
func Validate(cfg *Config) error {
	if cfg.Service == nil {
		return fmt.Errorf("config: service section is required")
	}
	if cfg.Service.Address == "" {
		return fmt.Errorf("config: service.address is required")
	}
	return nil
}

func (cfg *Config) String() string {
	contents, err := json.Marshal(cfg)
	if err != nil {
		return "<error>"
	}
	return string(contents)
}
