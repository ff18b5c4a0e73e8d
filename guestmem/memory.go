package guestmem

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/transcoder"
)

// DecodeSizer is a record with a fallible decoder.
type DecodeSizer interface {
	cursor.Decoder
	cursor.Sizer
}

// EncodeSizer is a record with a fallible encoder.
type EncodeSizer interface {
	cursor.Encoder
	cursor.Sizer
}

// LoadSizer is a record with an infallible decoder.
type LoadSizer interface {
	cursor.Loader
	cursor.Sizer
}

// StoreSizer is a record with an infallible encoder.
type StoreSizer interface {
	cursor.Storer
	cursor.Sizer
}

// Memory runs record codecs against guest linear memory.
type Memory struct {
	mem api.Memory
	ctx cursor.Endian
}

// Wrap adapts mem. Records are read and written with byte order ctx;
// WebAssembly itself is little-endian, so cursor.LE is the usual choice.
func Wrap(mem api.Memory, ctx cursor.Endian) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem, ctx: ctx}
}

// Endian returns the byte order records are moved with.
func (m *Memory) Endian() cursor.Endian { return m.ctx }

// Size returns the current memory size in bytes.
func (m *Memory) Size() uint32 { return m.mem.Size() }

// View returns a write-through slice of n bytes at offset.
func (m *Memory) View(offset uint32, n int, phase errors.Phase) ([]byte, error) {
	if n < 0 || uint64(n) > uint64(^uint32(0)) {
		return nil, errors.InvalidInput(phase, "negative or oversized range")
	}
	view, ok := m.mem.Read(offset, uint32(n))
	if !ok {
		return nil, errors.New(phase, errors.KindOutOfBounds).
			Value(offset).
			Detail("guest range [%d, %d) exceeds memory size %d", offset, uint64(offset)+uint64(n), m.mem.Size()).
			Build()
	}
	return view, nil
}

// Decode reads v from guest memory at offset.
func (m *Memory) Decode(offset uint32, v DecodeSizer) (int, error) {
	view, err := m.View(offset, v.SizeWith(m.ctx), errors.PhaseDecode)
	if err != nil {
		return 0, err
	}
	return v.DecodeFrom(view, m.ctx)
}

// Encode writes v into guest memory at offset.
func (m *Memory) Encode(offset uint32, v EncodeSizer) (int, error) {
	view, err := m.View(offset, v.SizeWith(m.ctx), errors.PhaseEncode)
	if err != nil {
		return 0, err
	}
	return v.EncodeTo(view, m.ctx)
}

// Load reads v from guest memory at offset. It panics when the range is
// outside memory.
func (m *Memory) Load(offset uint32, v LoadSizer) {
	view, err := m.View(offset, v.SizeWith(m.ctx), errors.PhaseDecode)
	if err != nil {
		panic(err)
	}
	v.LoadFrom(view, m.ctx)
}

// Store writes v into guest memory at offset. It panics when the range is
// outside memory.
func (m *Memory) Store(offset uint32, v StoreSizer) {
	view, err := m.View(offset, v.SizeWith(m.ctx), errors.PhaseEncode)
	if err != nil {
		panic(err)
	}
	v.StoreTo(view, m.ctx)
}

// Read decodes a T at offset.
func Read[T any, P interface {
	*T
	DecodeSizer
}](m *Memory, offset uint32) (T, error) {
	var v T
	if _, err := m.Decode(offset, P(&v)); err != nil {
		return v, err
	}
	return v, nil
}

// DecodePlan reads the record v points to with an interpreted plan.
func (m *Memory) DecodePlan(offset uint32, p *transcoder.Plan, v any) (int, error) {
	view, err := m.View(offset, p.Size(m.ctx), errors.PhaseDecode)
	if err != nil {
		return 0, err
	}
	return p.Decode(view, v, m.ctx)
}

// EncodePlan writes v with an interpreted plan.
func (m *Memory) EncodePlan(offset uint32, p *transcoder.Plan, v any) (int, error) {
	view, err := m.View(offset, p.Size(m.ctx), errors.PhaseEncode)
	if err != nil {
		return 0, err
	}
	return p.Encode(view, v, m.ctx)
}

// Allocator reserves guest memory.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
}

// Place allocates room for v in the guest and encodes it there, returning
// the guest offset.
func (m *Memory) Place(a Allocator, v EncodeSizer) (uint32, error) {
	size := v.SizeWith(m.ctx)
	ptr, err := a.Alloc(uint32(size), 1)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseEncode, errors.KindOutOfBounds, err, "allocate guest record")
	}
	if _, err := m.Encode(ptr, v); err != nil {
		return 0, err
	}
	return ptr, nil
}

// WrapAllocator adapts a guest realloc export with the canonical
// (old_ptr, old_size, align, new_size) signature.
func WrapAllocator(ctx context.Context, fn api.Function) Allocator {
	if fn == nil {
		return nil
	}
	return &reallocAllocator{ctx: ctx, fn: fn}
}

type reallocAllocator struct {
	ctx context.Context
	fn  api.Function
}

func (a *reallocAllocator) Alloc(size, align uint32) (uint32, error) {
	results, err := a.fn.Call(a.ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, errors.InvalidInput(errors.PhaseEncode, "allocator returned no result")
	}
	return uint32(results[0]), nil
}
