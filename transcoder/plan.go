package transcoder

import (
	"reflect"

	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/schema"
)

// Plan is the compiled form of one record type.
type Plan struct {
	goType reflect.Type
	record *schema.Record
	steps  []step
}

// step moves one field.
type step struct {
	name  string
	index int
	array bool
	count int
	sub   *Plan // nested record element, nil for builtin scalars
}

// Type returns the Go struct type the plan was compiled from.
func (p *Plan) Type() reflect.Type { return p.goType }

// Record returns the schema the plan was compiled from.
func (p *Plan) Record() *schema.Record { return p.record }

// Decode reads a record from the start of src into the struct v points to
// and reports the bytes consumed. *v is untouched when decoding fails.
func (p *Plan) Decode(src []byte, v any, ctx cursor.Endian) (int, error) {
	target, err := p.target(v, errors.PhaseDecode)
	if err != nil {
		return 0, err
	}
	scratch := reflect.New(p.goType).Elem()
	n, err := p.decode(src, scratch, ctx)
	if err != nil {
		return 0, err
	}
	target.Set(scratch)
	return n, nil
}

func (p *Plan) decode(src []byte, rv reflect.Value, ctx cursor.Endian) (int, error) {
	off := 0
	for _, s := range p.steps {
		f := addr(rv.Field(s.index))
		var err error
		switch {
		case s.array && s.sub == nil:
			err = readSlice(src, &off, f.Elem().Slice(0, s.count).Interface(), ctx)
		case s.array:
			// All or nothing on the offset, like cursor.ReadValues.
			pos := off
			for i := 0; i < s.count && err == nil; i++ {
				err = s.sub.readValue(src, &pos, f.Elem().Index(i), ctx)
			}
			if err == nil {
				off = pos
			}
		case s.sub == nil:
			err = readScalar(src, &off, f.Interface(), ctx)
		default:
			err = s.sub.readValue(src, &off, f.Elem(), ctx)
		}
		if err != nil {
			return 0, err
		}
	}
	return off, nil
}

// readValue mirrors cursor.ReadValue for a nested record.
func (p *Plan) readValue(src []byte, off *int, rv reflect.Value, ctx cursor.Endian) error {
	if *off < 0 || *off > len(src) {
		return errors.ShortBuffer(errors.PhaseDecode, "*"+p.goType.String(), *off, 0, len(src))
	}
	scratch := reflect.New(p.goType).Elem()
	n, err := p.decode(src[*off:], scratch, ctx)
	if err != nil {
		return err
	}
	rv.Set(scratch)
	*off += n
	return nil
}

// Encode writes the record v holds, or points to, into the start of dst and
// reports the bytes written.
func (p *Plan) Encode(dst []byte, v any, ctx cursor.Endian) (int, error) {
	rv, err := p.source(v, errors.PhaseEncode)
	if err != nil {
		return 0, err
	}
	return p.encode(dst, rv, ctx)
}

func (p *Plan) encode(dst []byte, rv reflect.Value, ctx cursor.Endian) (int, error) {
	off := 0
	for _, s := range p.steps {
		f := addr(rv.Field(s.index))
		n := 1
		if s.array {
			n = s.count
		}
		for i := 0; i < n; i++ {
			elem := f
			if s.array {
				elem = addr(f.Elem().Index(i))
			}
			var err error
			if s.sub == nil {
				err = writeScalar(dst, &off, elem.Interface(), ctx)
			} else {
				err = s.sub.writeValue(dst, &off, elem.Elem(), ctx)
			}
			if err != nil {
				return 0, err
			}
		}
	}
	return off, nil
}

// writeValue mirrors cursor.WriteValue for a nested record.
func (p *Plan) writeValue(dst []byte, off *int, rv reflect.Value, ctx cursor.Endian) error {
	if *off < 0 || *off > len(dst) {
		return errors.ShortBuffer(errors.PhaseEncode, "*"+p.goType.String(), *off, 0, len(dst))
	}
	n, err := p.encode(dst[*off:], rv, ctx)
	if err != nil {
		return err
	}
	*off += n
	return nil
}

// Size returns the encoded size of the record under ctx.
func (p *Plan) Size(ctx cursor.Endian) int {
	total := 0
	for _, s := range p.steps {
		n := 1
		if s.array {
			n = s.count
		}
		total += n * s.elemSize(p.goType, ctx)
	}
	return total
}

func (s step) elemSize(parent reflect.Type, ctx cursor.Endian) int {
	if s.sub != nil {
		return s.sub.Size(ctx)
	}
	t := parent.Field(s.index).Type
	if s.array {
		t = t.Elem()
	}
	return scalarSize(t.Kind(), ctx)
}

// Load reads a record from src into the struct v points to without bounds
// checks. src must hold at least Size bytes.
func (p *Plan) Load(src []byte, v any, ctx cursor.Endian) {
	target, err := p.target(v, errors.PhaseDecode)
	if err != nil {
		panic(err)
	}
	p.load(src, target, ctx)
}

func (p *Plan) load(src []byte, rv reflect.Value, ctx cursor.Endian) {
	off := 0
	p.each(rv, ctx, func(elem reflect.Value, s step, size int) {
		if s.sub == nil {
			getScalar(src, off, elem.Interface(), ctx)
		} else {
			s.sub.load(src[off:], elem.Elem(), ctx)
		}
		off += size
	})
}

// Store writes the record v holds, or points to, into dst without bounds
// checks. dst must hold at least Size bytes.
func (p *Plan) Store(dst []byte, v any, ctx cursor.Endian) {
	rv, err := p.source(v, errors.PhaseEncode)
	if err != nil {
		panic(err)
	}
	p.store(dst, rv, ctx)
}

func (p *Plan) store(dst []byte, rv reflect.Value, ctx cursor.Endian) {
	off := 0
	p.each(rv, ctx, func(elem reflect.Value, s step, size int) {
		if s.sub == nil {
			putScalar(dst, off, elem.Interface(), ctx)
		} else {
			s.sub.store(dst[off:], elem.Elem(), ctx)
		}
		off += size
	})
}

// each visits every element in layout order with a pointer to it and its
// encoded size.
func (p *Plan) each(rv reflect.Value, ctx cursor.Endian, fn func(elem reflect.Value, s step, size int)) {
	for _, s := range p.steps {
		f := addr(rv.Field(s.index))
		size := s.elemSize(p.goType, ctx)
		if !s.array {
			fn(f, s, size)
			continue
		}
		for i := 0; i < s.count; i++ {
			fn(addr(f.Elem().Index(i)), s, size)
		}
	}
}

// target resolves v to the settable struct it points to.
func (p *Plan) target(v any, phase errors.Phase) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Type() != p.goType {
		return reflect.Value{}, errors.InvalidInput(phase, "want non-nil *"+p.goType.String()+", got "+typeString(v))
	}
	return rv.Elem(), nil
}

// source resolves v to an addressable struct value.
func (p *Plan) source(v any, phase errors.Phase) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Type() == p.goType {
		return rv.Elem(), nil
	}
	if rv.IsValid() && rv.Type() == p.goType {
		cp := reflect.New(p.goType).Elem()
		cp.Set(rv)
		return cp, nil
	}
	return reflect.Value{}, errors.InvalidInput(phase, "want "+p.goType.String()+", got "+typeString(v))
}

func typeString(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Marshal encodes v into a new buffer of exactly Size bytes.
func (p *Plan) Marshal(v any, ctx cursor.Endian) ([]byte, error) {
	buf := make([]byte, p.Size(ctx))
	n, err := p.Encode(buf, v, ctx)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}
