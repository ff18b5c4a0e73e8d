package cursor

import (
	"github.com/wippyai/recordgen/errors"
)

// Reader is a position-tracking view over a byte slice for hand-written
// codecs and the reflective transcoder.
type Reader struct {
	buf []byte
	pos int
	ctx Endian
}

// NewReader creates a Reader over buf starting at position 0.
func NewReader(buf []byte, ctx Endian) *Reader {
	return &Reader{buf: buf, ctx: ctx}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Endian returns the reader's context.
func (r *Reader) Endian() Endian {
	return r.ctx
}

// Reset seeks to pos.
func (r *Reader) Reset(pos int) error {
	if pos < 0 || pos > len(r.buf) {
		return errors.OutOfBounds(errors.PhaseDecode, nil, pos, len(r.buf))
	}
	r.pos = pos
	return nil
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) error {
	if !fits(len(r.buf), r.pos, n) {
		return errors.ShortBuffer(errors.PhaseDecode, "", r.pos, n, len(r.buf))
	}
	r.pos += n
	return nil
}

// Bool reads a single 0/1 byte.
func (r *Reader) Bool() (bool, error) { return Read[bool](r.buf, &r.pos, r.ctx) }

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) { return Read[uint8](r.buf, &r.pos, r.ctx) }

func (r *Reader) Int8() (int8, error)       { return Read[int8](r.buf, &r.pos, r.ctx) }
func (r *Reader) Uint16() (uint16, error)   { return Read[uint16](r.buf, &r.pos, r.ctx) }
func (r *Reader) Int16() (int16, error)     { return Read[int16](r.buf, &r.pos, r.ctx) }
func (r *Reader) Uint32() (uint32, error)   { return Read[uint32](r.buf, &r.pos, r.ctx) }
func (r *Reader) Int32() (int32, error)     { return Read[int32](r.buf, &r.pos, r.ctx) }
func (r *Reader) Uint64() (uint64, error)   { return Read[uint64](r.buf, &r.pos, r.ctx) }
func (r *Reader) Int64() (int64, error)     { return Read[int64](r.buf, &r.pos, r.ctx) }
func (r *Reader) Float32() (float32, error) { return Read[float32](r.buf, &r.pos, r.ctx) }
func (r *Reader) Float64() (float64, error) { return Read[float64](r.buf, &r.pos, r.ctx) }

// Bytes reads exactly len(dst) bytes into dst.
func (r *Reader) Bytes(dst []byte) error {
	return ReadSlice(r.buf, &r.pos, dst, r.ctx)
}

// Decode decodes d at the current position.
func (r *Reader) Decode(d Decoder) error {
	return ReadValue(r.buf, &r.pos, d, r.ctx)
}
