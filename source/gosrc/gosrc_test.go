package gosrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
)

const records = `package wire

import (
	"time"

	g "example.com/geometry"
)

//recordgen:derive decode,encode,size
type Header struct {
	A uint16
	B [4]uint8
}

// Point is a plain pair.
//
//recordgen:derive
type Point struct {
	X, Y int32
}

type Shape struct {
	Origin  g.Point
	Corners [0x4]Point
	Flags   [1_0]byte
	Stamp   time.Duration
}

type Count uint32
`

func TestParseFile_Directive(t *testing.T) {
	res, err := ParseFile("wire.go", records)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if res.Package != "wire" {
		t.Errorf("Package = %q", res.Package)
	}
	if len(res.Targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(res.Targets))
	}

	h := res.Targets[0]
	if h.Record.Name != "Header" || h.Facets != gen.FacetDecode|gen.FacetEncode|gen.FacetSize {
		t.Errorf("Header target = %s %v", h.Record.Name, h.Facets)
	}
	want := []schema.Field{
		{Name: "A", Type: schema.Scalar{Name: "uint16"}},
		{Name: "B", Type: schema.Array{Elem: schema.Scalar{Name: "uint8"}, Len: 4}},
	}
	if len(h.Record.Fields) != 2 || h.Record.Fields[0] != want[0] || h.Record.Fields[1] != want[1] {
		t.Errorf("Header fields = %+v", h.Record.Fields)
	}

	p := res.Targets[1]
	if p.Record.Name != "Point" || p.Facets != 0 {
		t.Errorf("Point target = %s %v", p.Record.Name, p.Facets)
	}
	if len(p.Record.Fields) != 2 || p.Record.Fields[1].Name != "Y" {
		t.Errorf("multi-name field not expanded: %+v", p.Record.Fields)
	}
}

func TestParseFile_ByName(t *testing.T) {
	res, err := ParseFile("wire.go", records, "Shape", "Header")
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(res.Targets) != 2 || res.Targets[0].Record.Name != "Header" {
		t.Fatalf("targets not in source order: %+v", res.Targets)
	}

	shape := res.Targets[1].Record
	if got := shape.Fields[1].Type; got != (schema.Array{Elem: schema.Scalar{Name: "Point"}, Len: 4}) {
		t.Errorf("hex length: %v", got)
	}
	if got := shape.Fields[2].Type; got != (schema.Array{Elem: schema.Scalar{Name: "byte"}, Len: 10}) {
		t.Errorf("separated length: %v", got)
	}
	if res.Imports["g"] != "example.com/geometry" || res.Imports["time"] != "time" {
		t.Errorf("Imports = %v", res.Imports)
	}
}

func TestParseFile_Rejections(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Kind
	}{
		{"not a struct", "package p\n//recordgen:derive\ntype C uint32\n", errors.KindNotStruct},
		{"alias", "package p\n//recordgen:derive\ntype A = struct{ X uint8 }\n", errors.KindNotStruct},
		{"generic", "package p\n//recordgen:derive\ntype G[T any] struct{ X T }\n", errors.KindNotStruct},
		{"embedded", "package p\ntype E struct{ X uint8 }\n//recordgen:derive\ntype R struct{ E }\n", errors.KindUnnamedField},
		{"blank", "package p\n//recordgen:derive\ntype R struct{ _ uint8 }\n", errors.KindUnnamedField},
		{"const length", "package p\nconst N = 4\n//recordgen:derive\ntype R struct{ B [N]uint8 }\n", errors.KindBadArrayLength},
		{"expression length", "package p\n//recordgen:derive\ntype R struct{ B [2 + 2]uint8 }\n", errors.KindBadArrayLength},
		{"slice", "package p\n//recordgen:derive\ntype R struct{ B []uint8 }\n", errors.KindUnsupported},
		{"pointer", "package p\n//recordgen:derive\ntype R struct{ B *uint8 }\n", errors.KindUnsupported},
		{"map", "package p\n//recordgen:derive\ntype R struct{ B map[uint8]uint8 }\n", errors.KindUnsupported},
		{"inline struct", "package p\n//recordgen:derive\ntype R struct{ B struct{ X uint8 } }\n", errors.KindUnsupported},
		{"nested array", "package p\n//recordgen:derive\ntype R struct{ B [2][2]uint8 }\n", errors.KindUnsupported},
		{"generic field", "package p\n//recordgen:derive\ntype R struct{ B Box[uint8] }\n", errors.KindUnsupported},
		{"platform int", "package p\n//recordgen:derive\ntype R struct{ B int }\n", errors.KindUnsupported},
		{"unknown qualifier", "package p\n//recordgen:derive\ntype R struct{ B geo.Point }\n", errors.KindNotFound},
		{"bad facet", "package p\n//recordgen:derive bogus\ntype R struct{ B uint8 }\n", errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseFile("p.go", tt.src)
			if err == nil {
				t.Fatalf("expected error, got %+v", res)
			}
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %T %v", err, err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s (%v)", e.Kind, tt.kind, err)
			}
		})
	}
}

func TestParseFile_CollectsAllErrors(t *testing.T) {
	src := "package p\n//recordgen:derive\ntype R struct{ A []uint8; B *uint8; C [N]uint8 }\n"
	_, err := ParseFile("p.go", src)
	var list *errors.List
	if !errors.As(err, &list) || len(list.Errors) != 3 {
		t.Fatalf("want 3 errors, got %v", err)
	}
}

func TestParseFile_UnknownType(t *testing.T) {
	_, err := ParseFile("wire.go", records, "Missing")
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindNotFound {
		t.Fatalf("err = %v", err)
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"wire.go":      records,
		"wire_test.go": "package wire\n//recordgen:derive\ntype Ignored struct{ X []int }\n",
		"wire_gen.go":  "// Code generated by recordgen. DO NOT EDIT.\n\npackage wire\n//recordgen:derive\ntype Skipped struct{ X []int }\n",
		"notes.txt":    "not go",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	res, err := ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(res.Targets) != 2 {
		t.Errorf("got %d targets, want 2", len(res.Targets))
	}

	if _, err := ParseDir(t.TempDir()); err == nil {
		t.Error("expected error for empty directory")
	}
}

func TestParseFile_FeedsGenerator(t *testing.T) {
	res, err := ParseFile("wire.go", records)
	if err != nil {
		t.Fatal(err)
	}
	out, err := gen.New(gen.Options{Package: res.Package, Imports: res.Imports}).Generate(res.Targets)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(out) == 0 {
		t.Error("empty output")
	}
}

func TestParseDir_ConflictingImports(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go": "package wire\n\nimport geo \"example.com/geo/v1\"\n\n//recordgen:derive\ntype A struct{ P geo.Point }\n",
		"b.go": "package wire\n\nimport geo \"example.com/geo/v2\"\n\n//recordgen:derive\ntype B struct{ P geo.Point }\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	res, err := ParseDir(dir)
	if err == nil {
		t.Fatalf("ParseDir accepted one qualifier bound to two paths: %v", res.Imports)
	}
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindInvalidInput || e.Record != "B" {
		t.Errorf("err = %v, want invalid_input naming B", err)
	}
}

func TestParseDir_SharedImport(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.go": "package wire\n\nimport \"example.com/geo/v2\"\n\n//recordgen:derive\ntype A struct{ P geo.Point }\n",
		"b.go": "package wire\n\nimport geo \"example.com/geo/v2\"\n\n//recordgen:derive\ntype B struct{ P [2]geo.Point }\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	res, err := ParseDir(dir)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(res.Targets) != 2 || res.Imports["geo"] != "example.com/geo/v2" {
		t.Errorf("targets = %d, imports = %v", len(res.Targets), res.Imports)
	}
}

func TestAssumedName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"time", "time"},
		{"example.com/geo", "geo"},
		{"example.com/geo/v2", "geo"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/goccy/go-json", "json"},
		{"example.com/wire-format", "wire"},
		{"v2", "v2"},
	}
	for _, tt := range tests {
		if got := assumedName(tt.path); got != tt.want {
			t.Errorf("assumedName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
