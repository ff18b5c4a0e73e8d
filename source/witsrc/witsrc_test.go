package witsrc

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
)

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func pointDef() *wit.TypeDef {
	return named("point", &wit.Record{Fields: []wit.Field{
		{Name: "x", Type: wit.S32{}},
		{Name: "y", Type: wit.S32{}},
	}})
}

func TestRecord(t *testing.T) {
	header := named("packet-header", &wit.Record{Fields: []wit.Field{
		{Name: "version", Type: wit.U16{}},
		{Name: "tag-bytes", Type: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U8{}, wit.U8{}, wit.U8{}, wit.U8{}}}}},
		{Name: "origin", Type: pointDef()},
		{Name: "ok", Type: wit.Bool{}},
		{Name: "scale", Type: wit.F64{}},
	}})

	rec, err := Record(header)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Name != "PacketHeader" {
		t.Errorf("Name = %q", rec.Name)
	}
	want := []schema.Field{
		{Name: "Version", Type: schema.Scalar{Name: "uint16"}},
		{Name: "TagBytes", Type: schema.Array{Elem: schema.Scalar{Name: "uint8"}, Len: 4}},
		{Name: "Origin", Type: schema.Scalar{Name: "Point"}},
		{Name: "Ok", Type: schema.Scalar{Name: "bool"}},
		{Name: "Scale", Type: schema.Scalar{Name: "float64"}},
	}
	if len(rec.Fields) != len(want) {
		t.Fatalf("fields = %+v", rec.Fields)
	}
	for i := range want {
		if rec.Fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, rec.Fields[i], want[i])
		}
	}
}

func TestRecord_Alias(t *testing.T) {
	count := named("count", wit.U32{})
	rec, err := Record(named("r", &wit.Record{Fields: []wit.Field{{Name: "n", Type: count}}}))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Fields[0].Type != (schema.Scalar{Name: "uint32"}) {
		t.Errorf("alias not resolved: %v", rec.Fields[0].Type)
	}
}

func TestRecord_Rejections(t *testing.T) {
	tests := []struct {
		name string
		def  *wit.TypeDef
		kind errors.Kind
	}{
		{"enum", named("color", &wit.Enum{Cases: []wit.EnumCase{{Name: "red"}}}), errors.KindNotStruct},
		{"variant", named("shape", &wit.Variant{Cases: []wit.Case{{Name: "none"}}}), errors.KindNotStruct},
		{"anonymous", &wit.TypeDef{Kind: &wit.Record{}}, errors.KindInvalidInput},
		{"string field", named("r", &wit.Record{Fields: []wit.Field{{Name: "s", Type: wit.String{}}}}), errors.KindUnsupported},
		{"char field", named("r", &wit.Record{Fields: []wit.Field{{Name: "c", Type: wit.Char{}}}}), errors.KindUnsupported},
		{"list field", named("r", &wit.Record{Fields: []wit.Field{{Name: "l", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}}}}), errors.KindUnsupported},
		{"mixed tuple", named("r", &wit.Record{Fields: []wit.Field{{Name: "t", Type: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.U64{}}}}}}}), errors.KindUnsupported},
		{"inline record", named("r", &wit.Record{Fields: []wit.Field{{Name: "p", Type: &wit.TypeDef{Kind: &wit.Record{}}}}}), errors.KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Record(tt.def)
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

func TestRecords(t *testing.T) {
	res, err := Records("geom", pointDef(), named("segment", &wit.Record{Fields: []wit.Field{
		{Name: "ends", Type: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{pointDef(), pointDef()}}}},
	}}))
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(res.Targets) != 2 || res.Package != "geom" {
		t.Fatalf("result = %+v", res)
	}
	if got := res.Targets[1].Record.Fields[0].Type; got != (schema.Array{Elem: schema.Scalar{Name: "Point"}, Len: 2}) {
		t.Errorf("tuple of records = %v", got)
	}

	if _, err := gen.New(res.Options("")).Generate(res.Targets); err != nil {
		t.Errorf("Generate: %v", err)
	}

	_, err = Records("geom",
		named("a", &wit.Enum{}),
		named("b", &wit.Record{Fields: []wit.Field{{Name: "s", Type: wit.String{}}}}))
	var list *errors.List
	if !errors.As(err, &list) || len(list.Errors) != 2 {
		t.Errorf("want both errors, got %v", err)
	}
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"point":         "Point",
		"packet-header": "PacketHeader",
		"%type":         "Type",
		"x":             "X",
		"a-b-c":         "ABC",
	}
	for in, want := range tests {
		if got := GoName(in); got != want {
			t.Errorf("GoName(%q) = %q, want %q", in, got, want)
		}
	}
}
