// Package config loads CLI defaults and declarative route tables from TOML
// or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CLI holds front-end defaults.
type CLI struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Silent suppresses informational handler output by default.
	Silent bool `toml:"silent" yaml:"silent"`

	// Metrics enables dispatch statistics collection.
	Metrics bool `toml:"metrics" yaml:"metrics"`
}

// Script names a Lua source file whose functions become route targets.
type Script struct {
	// Name is the identifier scripts are referenced by in route targets.
	Name string `toml:"name" yaml:"name"`

	// File is the Lua source path, relative to the config file.
	File string `toml:"file" yaml:"file"`
}

// File is a parsed configuration file.
type File struct {
	CLI CLI `toml:"cli" yaml:"cli"`

	// Routes maps dotted paths to targets. A target is either a built-in
	// handler name ("numbers.add") or a script function reference
	// ("script:<script name>.<function>").
	Routes map[string]string `toml:"routes" yaml:"routes"`

	Scripts []Script `toml:"scripts" yaml:"scripts"`

	// Dir is the directory the file was loaded from. Script paths resolve
	// against it. Not part of the file format.
	Dir string `toml:"-" yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *File {
	return &File{
		CLI: CLI{LogLevel: "info"},
	}
}

// Load reads and validates a configuration file. The format is chosen by
// extension: .toml, or .yaml/.yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)
	return &f, nil
}

// validate checks structural constraints the decoders cannot express.
func (f *File) validate() error {
	for path, target := range f.Routes {
		if path == "" {
			return fmt.Errorf("route with empty path")
		}
		if target == "" {
			return fmt.Errorf("route %q: empty target", path)
		}
	}

	seen := make(map[string]bool, len(f.Scripts))
	for i, s := range f.Scripts {
		if s.Name == "" {
			return fmt.Errorf("script %d: empty name", i)
		}
		if s.File == "" {
			return fmt.Errorf("script %q: empty file", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("script %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
	}

	return nil
}

// ScriptPath resolves a script's file path against the config directory.
func (f *File) ScriptPath(s Script) string {
	if filepath.IsAbs(s.File) || f.Dir == "" {
		return s.File
	}
	return filepath.Join(f.Dir, s.File)
}
