package transcoder

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/recordgen/cursor"
)

// Primitive dispatch. Every case forwards to the cursor generic for the
// concrete type so interpreted and generated codecs share one
// implementation. p is always a pointer to the field or array.

func read[T cursor.Scalar](src []byte, off *int, p *T, ctx cursor.Endian) error {
	v, err := cursor.Read[T](src, off, ctx)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func readScalar(src []byte, off *int, p any, ctx cursor.Endian) error {
	switch p := p.(type) {
	case *bool:
		return read(src, off, p, ctx)
	case *uint8:
		return read(src, off, p, ctx)
	case *int8:
		return read(src, off, p, ctx)
	case *uint16:
		return read(src, off, p, ctx)
	case *int16:
		return read(src, off, p, ctx)
	case *uint32:
		return read(src, off, p, ctx)
	case *int32:
		return read(src, off, p, ctx)
	case *uint64:
		return read(src, off, p, ctx)
	case *int64:
		return read(src, off, p, ctx)
	case *float32:
		return read(src, off, p, ctx)
	case *float64:
		return read(src, off, p, ctx)
	}
	panic("transcoder: unexpected scalar " + reflect.TypeOf(p).String())
}

func readSlice(src []byte, off *int, s any, ctx cursor.Endian) error {
	switch s := s.(type) {
	case []bool:
		return cursor.ReadSlice(src, off, s, ctx)
	case []uint8:
		return cursor.ReadSlice(src, off, s, ctx)
	case []int8:
		return cursor.ReadSlice(src, off, s, ctx)
	case []uint16:
		return cursor.ReadSlice(src, off, s, ctx)
	case []int16:
		return cursor.ReadSlice(src, off, s, ctx)
	case []uint32:
		return cursor.ReadSlice(src, off, s, ctx)
	case []int32:
		return cursor.ReadSlice(src, off, s, ctx)
	case []uint64:
		return cursor.ReadSlice(src, off, s, ctx)
	case []int64:
		return cursor.ReadSlice(src, off, s, ctx)
	case []float32:
		return cursor.ReadSlice(src, off, s, ctx)
	case []float64:
		return cursor.ReadSlice(src, off, s, ctx)
	}
	panic("transcoder: unexpected slice " + reflect.TypeOf(s).String())
}

func writeScalar(dst []byte, off *int, p any, ctx cursor.Endian) error {
	switch p := p.(type) {
	case *bool:
		return cursor.Write(dst, off, *p, ctx)
	case *uint8:
		return cursor.Write(dst, off, *p, ctx)
	case *int8:
		return cursor.Write(dst, off, *p, ctx)
	case *uint16:
		return cursor.Write(dst, off, *p, ctx)
	case *int16:
		return cursor.Write(dst, off, *p, ctx)
	case *uint32:
		return cursor.Write(dst, off, *p, ctx)
	case *int32:
		return cursor.Write(dst, off, *p, ctx)
	case *uint64:
		return cursor.Write(dst, off, *p, ctx)
	case *int64:
		return cursor.Write(dst, off, *p, ctx)
	case *float32:
		return cursor.Write(dst, off, *p, ctx)
	case *float64:
		return cursor.Write(dst, off, *p, ctx)
	}
	panic("transcoder: unexpected scalar " + reflect.TypeOf(p).String())
}

func getScalar(src []byte, off int, p any, ctx cursor.Endian) {
	switch p := p.(type) {
	case *bool:
		*p = cursor.Get[bool](src, off, ctx)
	case *uint8:
		*p = cursor.Get[uint8](src, off, ctx)
	case *int8:
		*p = cursor.Get[int8](src, off, ctx)
	case *uint16:
		*p = cursor.Get[uint16](src, off, ctx)
	case *int16:
		*p = cursor.Get[int16](src, off, ctx)
	case *uint32:
		*p = cursor.Get[uint32](src, off, ctx)
	case *int32:
		*p = cursor.Get[int32](src, off, ctx)
	case *uint64:
		*p = cursor.Get[uint64](src, off, ctx)
	case *int64:
		*p = cursor.Get[int64](src, off, ctx)
	case *float32:
		*p = cursor.Get[float32](src, off, ctx)
	case *float64:
		*p = cursor.Get[float64](src, off, ctx)
	default:
		panic("transcoder: unexpected scalar " + reflect.TypeOf(p).String())
	}
}

func putScalar(dst []byte, off int, p any, ctx cursor.Endian) {
	switch p := p.(type) {
	case *bool:
		cursor.Put(dst, off, *p, ctx)
	case *uint8:
		cursor.Put(dst, off, *p, ctx)
	case *int8:
		cursor.Put(dst, off, *p, ctx)
	case *uint16:
		cursor.Put(dst, off, *p, ctx)
	case *int16:
		cursor.Put(dst, off, *p, ctx)
	case *uint32:
		cursor.Put(dst, off, *p, ctx)
	case *int32:
		cursor.Put(dst, off, *p, ctx)
	case *uint64:
		cursor.Put(dst, off, *p, ctx)
	case *int64:
		cursor.Put(dst, off, *p, ctx)
	case *float32:
		cursor.Put(dst, off, *p, ctx)
	case *float64:
		cursor.Put(dst, off, *p, ctx)
	default:
		panic("transcoder: unexpected scalar " + reflect.TypeOf(p).String())
	}
}

// scalarSize returns the encoded size of a builtin kind.
func scalarSize(k reflect.Kind, ctx cursor.Endian) int {
	switch k {
	case reflect.Bool:
		return cursor.SizeOf[bool](ctx)
	case reflect.Uint8, reflect.Int8:
		return cursor.SizeOf[uint8](ctx)
	case reflect.Uint16, reflect.Int16:
		return cursor.SizeOf[uint16](ctx)
	case reflect.Uint32, reflect.Int32, reflect.Float32:
		return cursor.SizeOf[uint32](ctx)
	case reflect.Uint64, reflect.Int64, reflect.Float64:
		return cursor.SizeOf[uint64](ctx)
	}
	panic("transcoder: unexpected kind " + k.String())
}

// addr returns a pointer to v that works for unexported fields too. v must
// be addressable.
func addr(v reflect.Value) reflect.Value {
	return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr()))
}
