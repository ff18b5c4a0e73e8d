// Package witsrc maps WIT record definitions to record schemas.
//
// Primitive field types map to Go builtins, homogeneous tuples map to
// fixed arrays and named record typedefs map to named types. Anything with
// a variable or tagged layout is rejected.
package witsrc

import (
	"fmt"
	"strings"
	"unicode"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
	"github.com/wippyai/recordgen/source"
)

// Records converts every typedef. All problems are reported together.
func Records(pkg string, defs ...*wit.TypeDef) (*source.Result, error) {
	res := &source.Result{Package: pkg}
	var list errors.List
	for _, td := range defs {
		rec, err := Record(td)
		if err != nil {
			var l *errors.List
			var e *errors.Error
			switch {
			case errors.As(err, &l):
				list.Errors = append(list.Errors, l.Errors...)
			case errors.As(err, &e):
				list.Add(e)
			}
			continue
		}
		res.Targets = append(res.Targets, gen.Target{Record: rec})
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Record converts one named WIT record typedef.
func Record(td *wit.TypeDef) (*schema.Record, error) {
	if td == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "nil typedef")
	}
	if td.Name == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "anonymous "+describe(td.Kind)+" cannot be a record")
	}
	name := GoName(*td.Name)
	r, ok := td.Kind.(*wit.Record)
	if !ok {
		return nil, errors.NotStruct(name, "WIT "+describe(td.Kind))
	}

	rec := &schema.Record{Name: name}
	var list errors.List
	for _, f := range r.Fields {
		field := GoName(f.Name)
		typ, err := fieldType(name, field, f.Type)
		if err != nil {
			list.Add(err)
			continue
		}
		rec.Fields = append(rec.Fields, schema.Field{Name: field, Type: typ})
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func fieldType(record, field string, t wit.Type) (schema.Type, *errors.Error) {
	if td, ok := t.(*wit.TypeDef); ok {
		if tup, ok := td.Kind.(*wit.Tuple); ok {
			return tupleArray(record, field, tup)
		}
	}
	s, err := scalarType(record, field, t)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// tupleArray accepts tuples whose members all share one element type.
func tupleArray(record, field string, tup *wit.Tuple) (schema.Type, *errors.Error) {
	if len(tup.Types) == 0 {
		return schema.Array{Elem: schema.Scalar{Name: "uint8"}, Len: 0}, nil
	}
	first, err := scalarType(record, field, tup.Types[0])
	if err != nil {
		return nil, err
	}
	for _, t := range tup.Types[1:] {
		s, err := scalarType(record, field, t)
		if err != nil {
			return nil, err
		}
		if s.Signature() != first.Signature() {
			return nil, errors.UnsupportedField(record, field, "tuple",
				fmt.Sprintf("tuple mixes %s and %s; only homogeneous tuples map to arrays", first, s))
		}
	}
	return schema.Array{Elem: first, Len: len(tup.Types)}, nil
}

func scalarType(record, field string, t wit.Type) (schema.Scalar, *errors.Error) {
	if name, ok := Primitive(t); ok {
		return schema.Scalar{Name: name}, nil
	}
	td, ok := t.(*wit.TypeDef)
	if !ok {
		return schema.Scalar{}, errors.UnsupportedField(record, field, fmt.Sprintf("%T", t), "WIT type has no fixed binary layout")
	}
	switch kind := td.Kind.(type) {
	case *wit.Record:
		if td.Name == nil {
			return schema.Scalar{}, errors.UnsupportedField(record, field, "record", "anonymous records are not supported")
		}
		return schema.Scalar{Name: GoName(*td.Name)}, nil
	case wit.Type:
		// Type alias: resolve to what it names.
		return scalarType(record, field, kind)
	}
	return schema.Scalar{}, errors.UnsupportedField(record, field, describe(td.Kind),
		"WIT "+describe(td.Kind)+" has no fixed binary layout")
}

// Primitive returns the Go builtin for a fixed-size WIT primitive.
func Primitive(t wit.Type) (string, bool) {
	switch t.(type) {
	case wit.Bool:
		return "bool", true
	case wit.U8:
		return "uint8", true
	case wit.S8:
		return "int8", true
	case wit.U16:
		return "uint16", true
	case wit.S16:
		return "int16", true
	case wit.U32:
		return "uint32", true
	case wit.S32:
		return "int32", true
	case wit.U64:
		return "uint64", true
	case wit.S64:
		return "int64", true
	case wit.F32:
		return "float32", true
	case wit.F64:
		return "float64", true
	}
	return "", false
}

func describe(kind any) string {
	switch kind.(type) {
	case *wit.Record:
		return "record"
	case *wit.Tuple:
		return "tuple"
	case *wit.Enum:
		return "enum"
	case *wit.Variant:
		return "variant"
	case *wit.Flags:
		return "flags"
	case *wit.List:
		return "list"
	case *wit.Option:
		return "option"
	case *wit.Result:
		return "result"
	case *wit.Own, *wit.Borrow:
		return "resource handle"
	case wit.String:
		return "string"
	case wit.Char:
		return "char"
	}
	return fmt.Sprintf("%T", kind)
}

// GoName converts a kebab-case WIT identifier to an exported Go name.
func GoName(witName string) string {
	witName = strings.TrimPrefix(witName, "%")
	var b strings.Builder
	upper := true
	for _, r := range witName {
		if r == '-' || r == '_' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
