package schema

import (
	"strconv"
	"strings"
)

// TypeKind identifies a Type implementation.
type TypeKind int

const (
	KindScalar TypeKind = iota
	KindArray
)

// Type is a field type reference.
type Type interface {
	Kind() TypeKind
	// Signature is the canonical textual form used for deduplication.
	Signature() string
	// String is the Go spelling used in generated code.
	String() string
}

// Scalar is a type with no compile-time length.
type Scalar struct {
	Name string
}

func (s Scalar) Kind() TypeKind { return KindScalar }

func (s Scalar) String() string { return strings.Join(strings.Fields(s.Name), "") }

func (s Scalar) Signature() string {
	name := s.String()
	if canon, ok := aliases[name]; ok {
		return canon
	}
	return name
}

// Builtin reports whether s is read and written by the runtime directly
// rather than through the record interfaces.
func (s Scalar) Builtin() bool {
	_, ok := builtinSizes[s.Signature()]
	return ok
}

// Size returns the encoded size of a builtin scalar. ok is false for named
// types, whose size is only known to their own codec.
func (s Scalar) Size() (size int, ok bool) {
	size, ok = builtinSizes[s.Signature()]
	return size, ok
}

// Array is a fixed-length run of Elem.
type Array struct {
	Elem Scalar
	Len  int
}

func (a Array) Kind() TypeKind { return KindArray }

func (a Array) String() string { return "[" + strconv.Itoa(a.Len) + "]" + a.Elem.String() }

func (a Array) Signature() string { return "[" + strconv.Itoa(a.Len) + "]" + a.Elem.Signature() }

// ElemOf returns the element type a field contributes to the type set:
// the element for arrays, the type itself for scalars.
func ElemOf(t Type) Scalar {
	switch v := t.(type) {
	case Array:
		return v.Elem
	case Scalar:
		return v
	}
	return Scalar{}
}

var aliases = map[string]string{
	"byte": "uint8",
	"rune": "int32",
}

var builtinSizes = map[string]int{
	"bool":    1,
	"uint8":   1,
	"int8":    1,
	"uint16":  2,
	"int16":   2,
	"uint32":  4,
	"int32":   4,
	"float32": 4,
	"uint64":  8,
	"int64":   8,
	"float64": 8,
}

// IsBuiltinName reports whether name spells a builtin scalar.
func IsBuiltinName(name string) bool {
	return Scalar{Name: name}.Builtin()
}
