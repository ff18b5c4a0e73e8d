// Package schemafile reads record schemas from YAML or JSON documents.
//
//	package: wire
//	records:
//	  - name: Header
//	    facets: decode,encode,size
//	    fields:
//	      - {name: A, type: u16}
//	      - {name: B, type: "[4]uint8"}
//
// Field types use Go spelling or WIT primitive spelling. Arrays are
// written [N]elem with an integer literal length.
package schemafile

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.bytecodealliance.org/wit"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
	"github.com/wippyai/recordgen/source"
	"github.com/wippyai/recordgen/source/witsrc"
)

// Format is a schema document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	}
	return "", false
}

// File is the document layout.
type File struct {
	Package string            `yaml:"package,omitempty" json:"package,omitempty"`
	Imports map[string]string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Records []Record          `yaml:"records" json:"records"`
}

// Record declares one record.
type Record struct {
	Name   string  `yaml:"name" json:"name"`
	Facets string  `yaml:"facets,omitempty" json:"facets,omitempty"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Field declares one record field.
type Field struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Load reads and converts a schema file. With names, only those records
// are selected.
func Load(path string, names ...string) (*source.Result, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseParse, "unknown schema file extension: "+path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindNotFound, err, "read "+path)
	}
	return Parse(data, format, names...)
}

// Parse decodes data and converts it to a Result.
func Parse(data []byte, format Format, names ...string) (*source.Result, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "decode yaml schema")
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.PhaseParse, errors.KindInvalidInput, err, "decode json schema")
		}
	default:
		return nil, errors.InvalidInput(errors.PhaseParse, "unknown schema format "+string(format))
	}
	return f.Result(names...)
}

// Result converts f, reporting every invalid record at once.
func (f *File) Result(names ...string) (*source.Result, error) {
	res := &source.Result{Package: f.Package, Imports: f.Imports}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var list errors.List
	for _, r := range f.Records {
		if len(names) > 0 && !want[r.Name] {
			continue
		}
		delete(want, r.Name)

		facets, err := gen.ParseFacets(r.Facets)
		if err != nil {
			var e *errors.Error
			if errors.As(err, &e) {
				e.Record = r.Name
				list.Add(e)
			}
			continue
		}
		rec, ok := convert(&list, r)
		if !ok {
			continue
		}
		res.Targets = append(res.Targets, gen.Target{Record: rec, Facets: facets})
	}
	for _, n := range names {
		if want[n] {
			list.Add(errors.NotFound(errors.PhaseParse, "record", n))
		}
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func convert(list *errors.List, r Record) (*schema.Record, bool) {
	rec := &schema.Record{Name: r.Name}
	before := len(list.Errors)
	for i, f := range r.Fields {
		if f.Name == "" {
			list.Add(errors.UnnamedField(r.Name, i, f.Type))
			continue
		}
		typ, err := ParseType(r.Name, f.Name, f.Type)
		if err != nil {
			list.Add(err)
			continue
		}
		rec.Fields = append(rec.Fields, schema.Field{Name: f.Name, Type: typ})
	}
	if len(list.Errors) > before {
		return nil, false
	}
	if err := rec.Validate(); err != nil {
		var l *errors.List
		var e *errors.Error
		switch {
		case errors.As(err, &l):
			list.Errors = append(list.Errors, l.Errors...)
		case errors.As(err, &e):
			list.Add(e)
		}
		return nil, false
	}
	return rec, true
}

// ParseType reads a field type in Go or WIT spelling: "uint16", "u16",
// "[4]byte", "[0x10]s8", "geo.Point".
func ParseType(record, field, s string) (schema.Type, *errors.Error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.UnsupportedField(record, field, "", "field has no type")
	}
	if !strings.HasPrefix(s, "[") {
		elem, err := scalar(record, field, s)
		if err != nil {
			return nil, err
		}
		return elem, nil
	}

	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, errors.UnsupportedField(record, field, s, "unterminated array type")
	}
	lenExpr := strings.TrimSpace(s[1:end])
	if lenExpr == "" {
		return nil, errors.UnsupportedField(record, field, s, "slices have no fixed length")
	}
	n, err := strconv.ParseInt(lenExpr, 0, 64)
	if err != nil || n < 0 || n > int64(^uint32(0)>>1) {
		return nil, errors.BadArrayLength(record, field, lenExpr)
	}
	elem := strings.TrimSpace(s[end+1:])
	if strings.HasPrefix(elem, "[") {
		return nil, errors.UnsupportedField(record, field, s, "nested arrays are not supported")
	}
	scalarElem, serr := scalar(record, field, elem)
	if serr != nil {
		return nil, serr
	}
	return schema.Array{Elem: scalarElem, Len: int(n)}, nil
}

// scalar maps WIT primitive names to Go builtins and keeps other names as
// named types. Go builtin spellings are tried first so "bool" stays "bool".
func scalar(record, field, s string) (schema.Scalar, *errors.Error) {
	if schema.IsBuiltinName(s) {
		return schema.Scalar{Name: s}, nil
	}
	if t, err := wit.ParseType(s); err == nil {
		name, ok := witsrc.Primitive(t)
		if !ok {
			return schema.Scalar{}, errors.UnsupportedField(record, field, s, "WIT type has no fixed binary layout")
		}
		return schema.Scalar{Name: name}, nil
	}
	return schema.Scalar{Name: s}, nil
}
