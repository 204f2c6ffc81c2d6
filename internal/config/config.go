package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dsmmcken/jdkfind/internal/jdk"
	"github.com/pelletier/go-toml/v2"
)

// AppName names the config directory under XDG_CONFIG_HOME.
const AppName = "jdkfind"

// Config represents the config.toml file.
type Config struct {
	Hints map[string]string `toml:"hints,omitempty" json:"hints" yaml:"hints"`
	Probe Probe             `toml:"probe,omitempty" json:"probe" yaml:"probe"`
}

// Probe holds discovery preferences.
type Probe struct {
	Disabled   bool     `toml:"disabled,omitempty" json:"disabled" yaml:"disabled"`
	ExtraRoots []string `toml:"extra_roots,omitempty" json:"extra_roots" yaml:"extra_roots"`
}

// configDirOverride is set by the --config-dir flag or JDKFIND_HOME env var.
var configDirOverride string

// SetConfigDir allows the CLI to pass in the --config-dir / JDKFIND_HOME value.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// Home returns the config directory path.
// Precedence: --config-dir flag / SetConfigDir > JDKFIND_HOME env > $XDG_CONFIG_HOME/jdkfind
func Home() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	if v := os.Getenv("JDKFIND_HOME"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	return filepath.Join(Home(), "config.toml")
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	return os.MkdirAll(Home(), 0o755)
}

// Load reads config.toml and returns a Config struct.
// If the file does not exist, it returns a zero-value Config (defaults).
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	return cfg, nil
}

// Save writes the Config struct back to config.toml.
func Save(cfg *Config) error {
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(ConfigPath(), data, 0o644)
}

const hintsPrefix = "hints."

// validKeys lists the fixed dot-separated keys that can be used with Get/Set.
// Any hints.<NAME> key with a recognized hint name is also valid.
var validKeys = map[string]bool{
	"probe.disabled":    true,
	"probe.extra_roots": true,
}

func isValidKey(key string) bool {
	if validKeys[key] {
		return true
	}
	if name, ok := strings.CutPrefix(key, hintsPrefix); ok {
		_, known := jdk.LookupHint(name)
		return known
	}
	return false
}

// Keys returns every key that is set in cfg, sorted.
func Keys(cfg *Config) []string {
	keys := []string{"probe.disabled", "probe.extra_roots"}
	for name := range cfg.Hints {
		keys = append(keys, hintsPrefix+name)
	}
	sort.Strings(keys)
	return keys
}

// Get retrieves a single config value by dot-separated key.
func Get(key string) (string, error) {
	if !isValidKey(key) {
		return "", fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	return GetField(cfg, key)
}

// Set sets a single config value by dot-separated key. An empty value
// removes a hint.
func Set(key, value string) error {
	if !isValidKey(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}
	cfg, err := Load()
	if err != nil {
		return err
	}
	if err := setField(cfg, key, value); err != nil {
		return err
	}
	return Save(cfg)
}

// GetField reads key from an already loaded cfg.
func GetField(cfg *Config, key string) (string, error) {
	switch key {
	case "probe.disabled":
		return strconv.FormatBool(cfg.Probe.Disabled), nil
	case "probe.extra_roots":
		return strings.Join(cfg.Probe.ExtraRoots, ","), nil
	}
	if name, ok := strings.CutPrefix(key, hintsPrefix); ok {
		return cfg.Hints[name], nil
	}
	return "", fmt.Errorf("unknown config key: %s", key)
}

func setField(cfg *Config, key, value string) error {
	switch key {
	case "probe.disabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("probe.disabled must be true or false: %w", err)
		}
		cfg.Probe.Disabled = b
		return nil
	case "probe.extra_roots":
		if value == "" {
			cfg.Probe.ExtraRoots = nil
		} else {
			cfg.Probe.ExtraRoots = strings.Split(value, ",")
		}
		return nil
	}
	if name, ok := strings.CutPrefix(key, hintsPrefix); ok {
		if value == "" {
			delete(cfg.Hints, name)
			return nil
		}
		if cfg.Hints == nil {
			cfg.Hints = make(map[string]string)
		}
		cfg.Hints[name] = value
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}
