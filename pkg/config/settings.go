package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Namespace kinds understood by the CLI and server.
const (
	NamespaceNone   = "none"
	NamespaceMemory = "memory"
	NamespaceFile   = "file"
	NamespaceRedis  = "redis"
)

// Settings is the on-disk configuration (dynurl.yaml or dynurl.json).
type Settings struct {
	// AllowNamespaceFallback enables the namespace lookup when the resolver misses.
	AllowNamespaceFallback bool   `mapstructure:"allow_namespace_fallback" yaml:"allow_namespace_fallback" json:"allow_namespace_fallback"`
	LogLevel               string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Listen                 string `mapstructure:"listen" yaml:"listen" json:"listen"`
	// Variables feed the static resolver consulted before the namespace.
	Variables map[string]any    `mapstructure:"variables" yaml:"variables" json:"variables"`
	Namespace NamespaceSettings `mapstructure:"namespace" yaml:"namespace" json:"namespace"`
}

// NamespaceSettings selects and configures the fallback provider.
type NamespaceSettings struct {
	Kind   string         `mapstructure:"kind" yaml:"kind" json:"kind"`
	Path   string         `mapstructure:"path" yaml:"path" json:"path"`
	Watch  bool           `mapstructure:"watch" yaml:"watch" json:"watch"`
	Values map[string]any `mapstructure:"values" yaml:"values" json:"values"`
	Redis  RedisSettings  `mapstructure:"redis" yaml:"redis" json:"redis"`
}

// RedisSettings configures the Redis namespace.
type RedisSettings struct {
	Addr     string `mapstructure:"addr" yaml:"addr" json:"addr"`
	Password string `mapstructure:"password" yaml:"password" json:"password"`
	DB       int    `mapstructure:"db" yaml:"db" json:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix" json:"prefix"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		LogLevel: "info",
		Listen:   ":8080",
		Namespace: NamespaceSettings{
			Kind: NamespaceMemory,
			Redis: RedisSettings{
				Addr:   "localhost:6379",
				Prefix: "dynurl:ns:",
			},
		},
	}
}

// Load reads a YAML or JSON (comments allowed) settings file on top of Default.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Settings{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	s, err := Decode(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Decode maps a generic document onto Default and validates the result.
// Unknown keys are rejected so typos do not silently disable the fallback.
func Decode(raw map[string]any) (Settings, error) {
	s := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Settings{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks cross-field constraints.
func (s Settings) Validate() error {
	switch s.Namespace.Kind {
	case NamespaceNone, NamespaceMemory, NamespaceRedis:
	case NamespaceFile:
		if s.Namespace.Path == "" {
			return fmt.Errorf("namespace.path is required for kind %q", NamespaceFile)
		}
	default:
		return fmt.Errorf("unknown namespace kind %q", s.Namespace.Kind)
	}
	return nil
}
