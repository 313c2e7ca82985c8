// Package config loads monkey.toml, the per-project settings shared by the CLI and the
// language server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up by Find.
const FileName = "monkey.toml"

type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
}

type ParserConfig struct {
	StatementValues bool `toml:"statement_values"`
}

type OutputConfig struct {
	Color          string `toml:"color"`  // auto, on or off
	Format         string `toml:"format"` // pretty, json, yaml or msgpack
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type CheckConfig struct {
	Jobs       int      `toml:"jobs"`
	Extensions []string `toml:"extensions"`
}

var (
	colorModes = []string{"auto", "on", "off"}
	formats    = []string{"pretty", "json", "yaml", "msgpack"}
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Color:  "auto",
			Format: "pretty",
		},
		Check: CheckConfig{
			Extensions: []string{".mk", ".monkey"},
		},
	}
}

// Find walks up from startDir to the nearest monkey.toml. ok is false when none exists.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults. Keys absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads the config found from startDir, or the defaults when there is none.
func Resolve(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) Validate() error {
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(colorModes, ", "), c.Output.Color)
	}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("[output].format must be one of %s, got %q", strings.Join(formats, ", "), c.Output.Format)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must not be negative")
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative")
	}
	for _, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[check].extensions entry %q must start with '.'", ext)
		}
	}
	return nil
}
