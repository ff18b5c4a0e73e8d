package schema

import (
	"go/token"
	"sort"
	"strconv"

	"github.com/wippyai/recordgen/errors"
)

// Field is one named member of a Record.
type Field struct {
	Name string
	Type Type
}

// Record is the schema of one fixed-layout record type.
type Record struct {
	Name   string
	Fields []Field
}

// Validate checks the structural invariants every emitter relies on. It
// does not look for duplicate field names.
func (r *Record) Validate() error {
	if r.Name == "" || !token.IsIdentifier(r.Name) {
		return errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Record(r.Name).
			Detail("record name %q is not a Go identifier", r.Name).
			Build()
	}

	var list errors.List
	for i, f := range r.Fields {
		if f.Name == "" || f.Name == "_" {
			typ := ""
			if f.Type != nil {
				typ = f.Type.String()
			}
			list.Add(errors.UnnamedField(r.Name, i, typ))
			continue
		}
		if !token.IsIdentifier(f.Name) {
			list.Add(errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
				Record(r.Name).
				Path(f.Name).
				Detail("field name %q is not a Go identifier", f.Name).
				Build())
			continue
		}
		list.Add(validateType(r.Name, f))
	}
	return list.Err()
}

func validateType(record string, f Field) *errors.Error {
	switch t := f.Type.(type) {
	case Scalar:
		return validateScalar(record, f.Name, t)
	case Array:
		if t.Len < 0 {
			return errors.BadArrayLength(record, f.Name, strconv.Itoa(t.Len))
		}
		return validateScalar(record, f.Name, t.Elem)
	case nil:
		return errors.UnsupportedField(record, f.Name, "", "field has no type")
	default:
		return errors.UnsupportedField(record, f.Name, t.String(), "unknown type reference")
	}
}

func validateScalar(record, field string, s Scalar) *errors.Error {
	name := s.String()
	if name == "" {
		return errors.UnsupportedField(record, field, "", "empty type name")
	}
	if why, bad := unsizedPredeclared[name]; bad {
		return errors.UnsupportedField(record, field, name, why)
	}
	// Named types may be package qualified: pkg.Type.
	for _, part := range splitQualified(name) {
		if !token.IsIdentifier(part) {
			return errors.UnsupportedField(record, field, name, "type is not a plain or qualified identifier")
		}
	}
	return nil
}

// UniqueTypes returns the distinct element types of r's fields ordered by
// signature. Arrays contribute their element type. When two fields share a
// signature the later one wins.
func UniqueTypes(r *Record) []Scalar {
	bySig := make(map[string]Scalar, len(r.Fields))
	for _, f := range r.Fields {
		elem := ElemOf(f.Type)
		bySig[elem.Signature()] = elem
	}

	keys := make([]string, 0, len(bySig))
	for k := range bySig {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Scalar, len(keys))
	for i, k := range keys {
		out[i] = bySig[k]
	}
	return out
}

// NamedTypes filters UniqueTypes down to the types that must implement the
// record interfaces themselves.
func NamedTypes(r *Record) []Scalar {
	var out []Scalar
	for _, s := range UniqueTypes(r) {
		if !s.Builtin() {
			out = append(out, s)
		}
	}
	return out
}

// StaticSize returns the encoded size of r when every field type is a
// builtin. ok is false when a named type is involved.
func StaticSize(r *Record) (size int, ok bool) {
	for _, f := range r.Fields {
		n, known := ElemOf(f.Type).Size()
		if !known {
			return 0, false
		}
		if a, isArray := f.Type.(Array); isArray {
			n *= a.Len
		}
		size += n
	}
	return size, true
}

var unsizedPredeclared = map[string]string{
	"int":        "int has a platform-dependent size",
	"uint":       "uint has a platform-dependent size",
	"uintptr":    "uintptr has a platform-dependent size",
	"string":     "variable-length types are not supported",
	"complex64":  "complex numbers have no wire encoding",
	"complex128": "complex numbers have no wire encoding",
	"any":        "interface types are not supported",
	"error":      "interface types are not supported",
}

func splitQualified(name string) []string {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return []string{name[:i], name[i+1:]}
		}
	}
	return []string{name}
}

