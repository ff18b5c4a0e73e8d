package transcoder

import (
	"bytes"
	"reflect"
	"sync"
	"testing"

	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
)

type tPoint struct {
	X, Y int16
}

type tHeader struct {
	A uint16
	B [4]uint8
}

type tShape struct {
	Origin  tPoint
	Corners [2]tPoint
	Ok      bool
	Scale   float32
	Tags    [3]int8
	Wide    uint64
}

type tHidden struct {
	a uint8
	b [2]uint16
}

type tCount uint32

type tNamedScalar struct {
	C tCount
}

func mustCompile(t *testing.T, v any) *Plan {
	t.Helper()
	p, err := NewCompiler().Compile(reflect.TypeOf(v))
	if err != nil {
		t.Fatalf("Compile(%T): %v", v, err)
	}
	return p
}

func TestDecode_HeaderScenario(t *testing.T) {
	p := mustCompile(t, tHeader{})

	var h tHeader
	n, err := p.Decode([]byte{0x01, 0x00, 0xAA, 0xBB, 0xCC, 0xDD}, &h, cursor.LE)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != 6 {
		t.Errorf("consumed %d, want 6", n)
	}
	want := tHeader{A: 1, B: [4]uint8{0xAA, 0xBB, 0xCC, 0xDD}}
	if h != want {
		t.Errorf("got %+v, want %+v", h, want)
	}
	if size := p.Size(cursor.LE); size != 6 {
		t.Errorf("Size = %d, want 6", size)
	}

	n, err = p.Decode([]byte{0x00, 0x01, 0xAA, 0xBB, 0xCC, 0xDD}, &h, cursor.BE)
	if err != nil || n != 6 || h.A != 1 {
		t.Errorf("big endian: n=%d err=%v h=%+v", n, err, h)
	}
}

func TestRoundTrip(t *testing.T) {
	p := mustCompile(t, &tShape{})
	in := tShape{
		Origin:  tPoint{X: -1, Y: 2},
		Corners: [2]tPoint{{X: 3, Y: -4}, {X: 0x1234, Y: 0x7fff}},
		Ok:      true,
		Scale:   1.5,
		Tags:    [3]int8{-128, 0, 127},
		Wide:    0x0102030405060708,
	}

	for _, ctx := range []cursor.Endian{cursor.LE, cursor.BE} {
		t.Run(ctx.String(), func(t *testing.T) {
			size := p.Size(ctx)
			if size != 4+8+1+4+3+8 {
				t.Fatalf("Size = %d", size)
			}

			buf := make([]byte, size)
			n, err := p.Encode(buf, in, ctx)
			if err != nil || n != size {
				t.Fatalf("Encode: n=%d err=%v", n, err)
			}

			var out tShape
			n, err = p.Decode(buf, &out, ctx)
			if err != nil || n != size {
				t.Fatalf("Decode: n=%d err=%v", n, err)
			}
			if out != in {
				t.Errorf("round trip: got %+v, want %+v", out, in)
			}

			// The indexed pair agrees with the fallible pair.
			stored := make([]byte, size)
			p.Store(stored, &in, ctx)
			if !bytes.Equal(stored, buf) {
				t.Errorf("Store = %x, Encode = %x", stored, buf)
			}
			var loaded tShape
			p.Load(buf, &loaded, ctx)
			if loaded != in {
				t.Errorf("Load = %+v", loaded)
			}

			m, err := p.Marshal(in, ctx)
			if err != nil || !bytes.Equal(m, buf) {
				t.Errorf("Marshal = %x, %v", m, err)
			}
		})
	}
}

func TestDecode_FailureLeavesTarget(t *testing.T) {
	p := mustCompile(t, tHeader{})
	orig := tHeader{A: 7, B: [4]uint8{1, 2, 3, 4}}

	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"short scalar", []byte{0x01}},
		{"short array", []byte{0x01, 0x00, 0xAA, 0xBB, 0xCC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := orig
			n, err := p.Decode(tt.src, &h, cursor.LE)
			if !errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds}) {
				t.Fatalf("err = %v", err)
			}
			if n != 0 {
				t.Errorf("n = %d", n)
			}
			if h != orig {
				t.Errorf("target modified: %+v", h)
			}
		})
	}
}

func TestDecode_NestedShortBuffer(t *testing.T) {
	p := mustCompile(t, tShape{})
	var s tShape
	_, err := p.Decode(make([]byte, 6), &s, cursor.LE)
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindOutOfBounds {
		t.Fatalf("err = %v", err)
	}
}

func TestDecode_InvalidBool(t *testing.T) {
	p := mustCompile(t, tShape{})
	buf := make([]byte, p.Size(cursor.LE))
	buf[12] = 2

	var s tShape
	_, err := p.Decode(buf, &s, cursor.LE)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindInvalidData}) {
		t.Fatalf("err = %v", err)
	}
}

func TestEncode_ShortBuffer(t *testing.T) {
	p := mustCompile(t, tHeader{})
	buf := make([]byte, 4)
	_, err := p.Encode(buf, tHeader{A: 1, B: [4]uint8{9, 9, 9, 9}}, cursor.LE)
	if !errors.Is(err, &errors.Error{Phase: errors.PhaseEncode, Kind: errors.KindOutOfBounds}) {
		t.Fatalf("err = %v", err)
	}
	// Elements before the failing one were written.
	if !bytes.Equal(buf, []byte{1, 0, 9, 9}) {
		t.Errorf("buf = %x", buf)
	}
}

func TestUnexportedFields(t *testing.T) {
	p := mustCompile(t, tHidden{})
	in := tHidden{a: 5, b: [2]uint16{0x0102, 0x0304}}

	buf, err := p.Marshal(&in, cursor.BE)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{5, 1, 2, 3, 4}) {
		t.Errorf("buf = %x", buf)
	}
	var out tHidden
	if _, err := p.Decode(buf, &out, cursor.BE); err != nil || out != in {
		t.Errorf("Decode = %+v, %v", out, err)
	}
}

func TestCompile_Errors(t *testing.T) {
	c := NewCompiler()
	tests := []struct {
		name string
		typ  reflect.Type
		kind errors.Kind
	}{
		{"nil", nil, errors.KindInvalidInput},
		{"not struct", reflect.TypeOf(uint32(0)), errors.KindNotStruct},
		{"named scalar field", reflect.TypeOf(tNamedScalar{}), errors.KindUnsupported},
		{"anonymous struct", reflect.TypeOf(struct{ S []byte }{}), errors.KindNotStruct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(tt.typ)
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("err = %v", err)
			}
			if e.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind, tt.kind)
			}
		})
	}
}

func TestCompile_Cached(t *testing.T) {
	c := NewCompiler()
	typ := reflect.TypeOf(tShape{})

	var wg sync.WaitGroup
	plans := make([]*Plan, 8)
	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := c.Compile(typ)
			if err != nil {
				t.Error(err)
				return
			}
			plans[i] = p
		}(i)
	}
	wg.Wait()

	for _, p := range plans[1:] {
		if p != plans[0] {
			t.Fatal("Compile returned distinct plans for one type")
		}
	}
	if p, _ := c.Compile(reflect.PointerTo(typ)); p != plans[0] {
		t.Error("pointer type not resolved to cached plan")
	}
	if plans[0].Record().Name != "tShape" || plans[0].Type() != typ {
		t.Errorf("plan metadata = %s %v", plans[0].Record().Name, plans[0].Type())
	}
}

func TestPlan_BadTarget(t *testing.T) {
	p := mustCompile(t, tHeader{})
	if _, err := p.Decode(make([]byte, 6), tHeader{}, cursor.LE); err == nil {
		t.Error("Decode into value should fail")
	}
	if _, err := p.Decode(make([]byte, 6), &tPoint{}, cursor.LE); err == nil {
		t.Error("Decode into wrong type should fail")
	}
	if _, err := p.Encode(make([]byte, 6), nil, cursor.LE); err == nil {
		t.Error("Encode nil should fail")
	}
}
