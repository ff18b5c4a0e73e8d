package config

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if f, _ := cfg.GenFacets(); f != gen.FacetAll {
		t.Errorf("facets = %v", f)
	}
	if e, _ := cfg.ByteOrder(); e != cursor.LE {
		t.Errorf("endian = %v", e)
	}
	if l, _ := cfg.LogLevel(); l != zapcore.InfoLevel {
		t.Errorf("level = %v", l)
	}
	if cfg.CursorImport != gen.DefaultCursorImport {
		t.Errorf("cursor import = %q", cfg.CursorImport)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	body := "package: wire\nfacets: decode,size\nendian: be\nimports:\n  geo: example.com/geo\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Package != "wire" || cfg.Endian != "be" || cfg.Logging.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.CursorImport != gen.DefaultCursorImport {
		t.Errorf("cursor import = %q", cfg.CursorImport)
	}

	opts := cfg.GenOptions("ignored", map[string]string{"time": "time"})
	if opts.Package != "wire" || opts.Facets != gen.FacetDecode|gen.FacetSize {
		t.Errorf("opts = %+v", opts)
	}
	if opts.Imports["geo"] != "example.com/geo" || opts.Imports["time"] != "time" {
		t.Errorf("imports = %v", opts.Imports)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindNotFound || e.Phase != errors.PhaseConfig {
		t.Errorf("missing file err = %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"syntax", "facets: [unclosed\n"},
		{"facet", "facets: decode,bogus\n"},
		{"endian", "endian: middle\n"},
		{"level", "logging:\n  level: loud\n"},
		{"package", "package: my-pkg\n"},
		{"keyword package", "package: func\n"},
		{"cursor import", "cursor_import: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSaveAndFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := Find(nested); got != "" {
		// A recordgen.yaml above the temp dir would make this ambiguous.
		t.Skipf("found unrelated config %s", got)
	}

	cfg := DefaultConfig()
	cfg.Endian = "be"
	path := filepath.Join(root, FileName)
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	if got := Find(nested); got != path {
		t.Errorf("Find = %q, want %q", got, path)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Endian != "be" {
		t.Errorf("round trip endian = %q", loaded.Endian)
	}
}
