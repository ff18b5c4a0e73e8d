// Package config loads recordgen.yaml.
package config

import (
	"go/token"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
)

// FileName is the config file looked up next to the input.
const FileName = "recordgen.yaml"

// Config represents the recordgen configuration
type Config struct {
	// Package overrides the package clause of generated files.
	Package string `yaml:"package,omitempty"`
	// CursorImport is the runtime package generated code imports.
	CursorImport string `yaml:"cursor_import"`
	// Facets applies to records that select none.
	Facets string `yaml:"facets"`
	// Endian is the byte order inspect lays records out with.
	Endian string `yaml:"endian"`
	// Imports maps field type qualifiers to import paths for inputs that
	// cannot declare them, such as WIT.
	Imports map[string]string `yaml:"imports,omitempty"`
	Logging Logging           `yaml:"logging"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		CursorImport: gen.DefaultCursorImport,
		Facets:       "all",
		Endian:       cursor.LE.String(),
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig reads path over the defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.PhaseConfig, "config file", path)
		}
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "read config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find returns the config file in dir or any parent, or "" when there is
// none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SaveConfig writes cfg to path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "write config file")
	}
	return nil
}

// Validate checks every field that has a fixed vocabulary.
func (c *Config) Validate() error {
	var list errors.List
	if c.Package != "" && !token.IsIdentifier(c.Package) {
		list.Add(errors.InvalidInput(errors.PhaseConfig, "package "+c.Package+" is not a Go identifier"))
	}
	if c.CursorImport == "" {
		list.Add(errors.InvalidInput(errors.PhaseConfig, "cursor_import must not be empty"))
	}
	if _, err := c.GenFacets(); err != nil {
		list.Add(errors.InvalidInput(errors.PhaseConfig, "facets: "+err.Error()))
	}
	if _, err := c.ByteOrder(); err != nil {
		list.Add(errors.InvalidInput(errors.PhaseConfig, "endian: "+err.Error()))
	}
	if _, err := c.LogLevel(); err != nil {
		list.Add(errors.InvalidInput(errors.PhaseConfig, "logging.level: "+err.Error()))
	}
	return list.Err()
}

// GenFacets parses Facets.
func (c *Config) GenFacets() (gen.Facet, error) {
	return gen.ParseFacets(c.Facets)
}

// ByteOrder parses Endian.
func (c *Config) ByteOrder() (cursor.Endian, error) {
	return cursor.ParseEndian(c.Endian)
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Logging.Level)
}

// GenOptions returns generator options for pkg. A non-empty Package in c
// wins over pkg.
func (c *Config) GenOptions(pkg string, imports map[string]string) gen.Options {
	facets, _ := c.GenFacets()
	if c.Package != "" {
		pkg = c.Package
	}
	merged := make(map[string]string, len(c.Imports)+len(imports))
	for k, v := range c.Imports {
		merged[k] = v
	}
	for k, v := range imports {
		merged[k] = v
	}
	return gen.Options{
		Package:      pkg,
		CursorImport: c.CursorImport,
		Facets:       facets,
		Imports:      merged,
	}
}

