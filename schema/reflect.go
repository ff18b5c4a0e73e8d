package schema

import (
	"reflect"

	"github.com/wippyai/recordgen/errors"
)

// FromType builds a Record from a Go struct type. Pointer types are
// dereferenced. Named field types from another package keep their package
// qualifier.
func FromType(t reflect.Type) (*Record, error) {
	if t == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, "type cannot be nil")
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	name := t.Name()
	if t.Kind() != reflect.Struct {
		return nil, errors.NotStruct(name, t.Kind().String())
	}
	if name == "" {
		return nil, errors.NotStruct(t.String(), "anonymous struct")
	}

	rec := &Record{Name: name, Fields: make([]Field, 0, t.NumField())}
	var list errors.List
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || sf.Name == "_" {
			list.Add(errors.UnnamedField(name, i, sf.Type.String()))
			continue
		}
		typ, err := typeFromReflect(name, sf.Name, t.PkgPath(), sf.Type)
		if err != nil {
			list.Add(err)
			continue
		}
		rec.Fields = append(rec.Fields, Field{Name: sf.Name, Type: typ})
	}
	if err := list.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

func typeFromReflect(record, field, pkg string, t reflect.Type) (Type, *errors.Error) {
	if t.Kind() == reflect.Array {
		elem, err := scalarFromReflect(record, field, pkg, t.Elem())
		if err != nil {
			return nil, err
		}
		return Array{Elem: elem, Len: t.Len()}, nil
	}
	return scalarFromReflect(record, field, pkg, t)
}

func scalarFromReflect(record, field, pkg string, t reflect.Type) (Scalar, *errors.Error) {
	switch t.Kind() {
	case reflect.Array:
		return Scalar{}, errors.UnsupportedField(record, field, t.String(), "nested arrays are not supported")
	case reflect.Slice, reflect.String, reflect.Map:
		return Scalar{}, errors.UnsupportedField(record, field, t.String(), "variable-length types are not supported")
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return Scalar{}, errors.UnsupportedField(record, field, t.String(), "reference types have no fixed layout")
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		if t.PkgPath() == "" {
			return Scalar{}, errors.UnsupportedField(record, field, t.String(), t.Kind().String()+" has a platform-dependent size")
		}
	case reflect.Complex64, reflect.Complex128:
		return Scalar{}, errors.UnsupportedField(record, field, t.String(), "complex numbers have no wire encoding")
	}

	if t.Name() == "" {
		return Scalar{}, errors.UnsupportedField(record, field, t.String(), "inline struct types must be named")
	}
	if t.PkgPath() == "" || t.PkgPath() == pkg {
		return Scalar{Name: t.Name()}, nil
	}
	return Scalar{Name: t.String()}, nil
}
