// Package config holds runtime configuration: defaults, the YAML config
// file under the .bulkrename directory, and construction of the operation
// chain from its declarative form.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/bulkrename/internal/rename"
)

// Well-known names under the config directory.
const (
	DirName    = ".bulkrename"
	ConfigFile = "config.yaml"
	DBFile     = "history.db"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a config file by [Load], and then mutated by CLI
// flags before being passed (by pointer) to packages that need it.
type Config struct {
	// Discovery.
	Recursive       bool     `yaml:"recursive"`
	Extensions      []string `yaml:"extensions,omitempty"` // Whitelist (".txt"); empty admits every file.
	RenameExtension bool     `yaml:"rename-extension"`     // Feed the full basename through the chain.

	// Display and logging.
	ColorMode ColorMode `yaml:"color"`
	LogFile   string    `yaml:"log-file,omitempty"`
	Verbose   bool      `yaml:"verbose"`

	// Chain is the ordered operation list applied to every name.
	Chain []OperationSpec `yaml:"chain"`
}

// DefaultConfig returns a Config with a single symbols-removal operation
// and auto color. Used as the base before file and flag overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
		Chain: []OperationSpec{
			{Op: OpRemoveCharacters, Preset: "symbols"},
		},
	}
}

// FindConfigDir finds the nearest .bulkrename directory by walking up from
// start (the working directory when start is empty).
func FindConfigDir(start string) (string, error) {
	dir := start
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(abs, DirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.New("not initialized; run 'bulkrename init' first")
		}
		abs = parent
	}
}

// Load reads the configuration from configDir, overlaying file values onto
// the defaults so an omitted scalar keeps its default.
func Load(configDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(configDir, ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Chain = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.ColorMode == "" {
		cfg.ColorMode = ColorAuto
	}
	return &cfg, nil
}

// Save writes cfg to configDir, creating the directory if needed.
func Save(configDir string, cfg *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, ConfigFile), data, 0644)
}

// Validate checks enum fields and the declarative chain. It does not touch
// the filesystem.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	_, err := c.BuildChain()
	return err
}

// BuildChain materializes the declarative chain into rename operations, in
// file order. Unknown operation kinds, presets, positions, or casings are
// load-time errors; once built, the operations themselves never fail (a
// malformed custom character set degrades to a no-op at rename time).
func (c *Config) BuildChain() ([]rename.Operation, error) {
	ops := make([]rename.Operation, 0, len(c.Chain))
	for i, spec := range c.Chain {
		op, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("chain[%d]: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
