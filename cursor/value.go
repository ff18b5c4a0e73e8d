package cursor

import (
	"fmt"

	"github.com/wippyai/recordgen/errors"
)

// Decoder is implemented by records with a generated fallible decoder.
type Decoder interface {
	DecodeFrom(src []byte, ctx Endian) (int, error)
}

// Encoder is implemented by records with a generated fallible encoder.
type Encoder interface {
	EncodeTo(dst []byte, ctx Endian) (int, error)
}

// Sizer reports the encoded size of a type. Implementations must not depend
// on the receiver's contents.
type Sizer interface {
	SizeWith(ctx Endian) int
}

// Loader is the infallible counterpart of Decoder.
type Loader interface {
	LoadFrom(src []byte, ctx Endian)
}

// Storer is the infallible counterpart of Encoder.
type Storer interface {
	StoreTo(dst []byte, ctx Endian)
}

// SizeOfValue returns the encoded size of a named type without an instance.
func SizeOfValue[T Sizer](ctx Endian) int {
	var zero T
	return zero.SizeWith(ctx)
}

// ReadValue decodes d from src at *off and advances *off by the bytes d
// consumed. Errors from d are returned unchanged.
func ReadValue(src []byte, off *int, d Decoder, ctx Endian) error {
	if *off < 0 || *off > len(src) {
		return errors.ShortBuffer(errors.PhaseDecode, fmt.Sprintf("%T", d), *off, 0, len(src))
	}
	n, err := d.DecodeFrom(src[*off:], ctx)
	if err != nil {
		return err
	}
	*off += n
	return nil
}

// ReadValues decodes every element of dst in order. *off moves only when all
// elements decoded.
func ReadValues[T any, P interface {
	*T
	Decoder
}](src []byte, off *int, dst []T, ctx Endian) error {
	pos := *off
	for i := range dst {
		if err := ReadValue(src, &pos, P(&dst[i]), ctx); err != nil {
			return err
		}
	}
	*off = pos
	return nil
}

// WriteValue encodes e into dst at *off and advances *off by the bytes
// written. Errors from e are returned unchanged.
func WriteValue(dst []byte, off *int, e Encoder, ctx Endian) error {
	if *off < 0 || *off > len(dst) {
		return errors.ShortBuffer(errors.PhaseEncode, fmt.Sprintf("%T", e), *off, 0, len(dst))
	}
	n, err := e.EncodeTo(dst[*off:], ctx)
	if err != nil {
		return err
	}
	*off += n
	return nil
}
