package cursor

import (
	"fmt"
	"math"

	"github.com/wippyai/recordgen/errors"
)

// Scalar is the set of builtin types the runtime reads and writes directly.
type Scalar interface {
	bool | uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

// SizeOf returns the encoded size of T. Builtin sizes do not depend on the
// byte order.
func SizeOf[T Scalar](_ Endian) int {
	var v T
	switch any(v).(type) {
	case bool, uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32, float32:
		return 4
	default:
		return 8
	}
}

// Get reads a T at off without bounds checks.
func Get[T Scalar](src []byte, off int, ctx Endian) T {
	var v T
	order := ctx.Order()
	switch p := any(&v).(type) {
	case *bool:
		*p = src[off] != 0
	case *uint8:
		*p = src[off]
	case *int8:
		*p = int8(src[off])
	case *uint16:
		*p = order.Uint16(src[off:])
	case *int16:
		*p = int16(order.Uint16(src[off:]))
	case *uint32:
		*p = order.Uint32(src[off:])
	case *int32:
		*p = int32(order.Uint32(src[off:]))
	case *uint64:
		*p = order.Uint64(src[off:])
	case *int64:
		*p = int64(order.Uint64(src[off:]))
	case *float32:
		*p = math.Float32frombits(order.Uint32(src[off:]))
	case *float64:
		*p = math.Float64frombits(order.Uint64(src[off:]))
	}
	return v
}

// Put writes v at off without bounds checks.
func Put[T Scalar](dst []byte, off int, v T, ctx Endian) {
	order := ctx.Order()
	switch x := any(v).(type) {
	case bool:
		if x {
			dst[off] = 1
		} else {
			dst[off] = 0
		}
	case uint8:
		dst[off] = x
	case int8:
		dst[off] = uint8(x)
	case uint16:
		order.PutUint16(dst[off:], x)
	case int16:
		order.PutUint16(dst[off:], uint16(x))
	case uint32:
		order.PutUint32(dst[off:], x)
	case int32:
		order.PutUint32(dst[off:], uint32(x))
	case uint64:
		order.PutUint64(dst[off:], x)
	case int64:
		order.PutUint64(dst[off:], uint64(x))
	case float32:
		order.PutUint32(dst[off:], math.Float32bits(x))
	case float64:
		order.PutUint64(dst[off:], math.Float64bits(x))
	}
}

// Read decodes a T at *off and advances *off past it.
func Read[T Scalar](src []byte, off *int, ctx Endian) (T, error) {
	var zero T
	n := SizeOf[T](ctx)
	if !fits(len(src), *off, n) {
		return zero, errors.ShortBuffer(errors.PhaseDecode, typeName[T](), *off, n, len(src))
	}
	if _, ok := any(zero).(bool); ok && src[*off] > 1 {
		return zero, invalidBool(*off, src[*off])
	}
	v := Get[T](src, *off, ctx)
	*off += n
	return v, nil
}

// ReadSlice decodes len(dst) consecutive values at *off in one bounds check
// and advances *off by the total size. dst is untouched on failure.
func ReadSlice[T Scalar](src []byte, off *int, dst []T, ctx Endian) error {
	n := SizeOf[T](ctx)
	total := n * len(dst)
	if !fits(len(src), *off, total) {
		return errors.ShortBuffer(errors.PhaseDecode, fmt.Sprintf("[%d]%s", len(dst), typeName[T]()), *off, total, len(src))
	}

	window := src[*off : *off+total]
	switch d := any(dst).(type) {
	case []uint8:
		copy(d, window)
	case []bool:
		for i, b := range window {
			if b > 1 {
				return invalidBool(*off+i, b)
			}
		}
		for i, b := range window {
			d[i] = b != 0
		}
	default:
		for i := range dst {
			dst[i] = Get[T](window, i*n, ctx)
		}
	}

	*off += total
	return nil
}

// Write encodes v at *off and advances *off past it.
func Write[T Scalar](dst []byte, off *int, v T, ctx Endian) error {
	n := SizeOf[T](ctx)
	if !fits(len(dst), *off, n) {
		return errors.ShortBuffer(errors.PhaseEncode, typeName[T](), *off, n, len(dst))
	}
	Put(dst, *off, v, ctx)
	*off += n
	return nil
}

func fits(length, off, n int) bool {
	return off >= 0 && off <= length && length-off >= n
}

func typeName[T Scalar]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func invalidBool(off int, b byte) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		GoType("bool").
		Value(b).
		Detail("byte 0x%02x at offset %d is not a bool", b, off).
		Build()
}
