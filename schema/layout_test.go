package schema

import (
	"reflect"
	"testing"
)

func TestLayout_Builtin(t *testing.T) {
	rec := &Record{Name: "Header", Fields: []Field{
		{Name: "A", Type: Scalar{Name: "uint16"}},
		{Name: "B", Type: Array{Elem: Scalar{Name: "uint8"}, Len: 4}},
		{Name: "C", Type: Scalar{Name: "float64"}},
	}}

	slots, total, ok := Layout(rec, nil)
	if !ok || total != 14 {
		t.Fatalf("Layout total = %d, %v, want 14, true", total, ok)
	}
	want := []Slot{
		{Field: "A", Type: "uint16", Offset: 0, Size: 2},
		{Field: "B", Type: "[4]uint8", Offset: 2, Size: 4},
		{Field: "C", Type: "float64", Offset: 6, Size: 8},
	}
	if !reflect.DeepEqual(slots, want) {
		t.Errorf("Layout = %+v, want %+v", slots, want)
	}
}

func TestLayout_UnknownNamedType(t *testing.T) {
	rec := &Record{Name: "R", Fields: []Field{
		{Name: "a", Type: Scalar{Name: "uint32"}},
		{Name: "b", Type: Scalar{Name: "geo.Point"}},
		{Name: "c", Type: Scalar{Name: "uint8"}},
	}}

	slots, _, ok := Layout(rec, nil)
	if ok {
		t.Fatal("Layout reported a total for a record with an unsized field")
	}
	if slots[1].Offset != 4 || slots[1].Size != -1 {
		t.Errorf("unsized field = %+v, want offset 4 and size -1", slots[1])
	}
	if slots[2].Offset != -1 || slots[2].Size != 1 {
		t.Errorf("field after unsized = %+v, want offset -1 and size 1", slots[2])
	}
}

func TestSizes(t *testing.T) {
	point := &Record{Name: "Point", Fields: []Field{
		{Name: "X", Type: Scalar{Name: "int32"}},
		{Name: "Y", Type: Scalar{Name: "int32"}},
	}}
	shape := &Record{Name: "Shape", Fields: []Field{
		{Name: "Origin", Type: Scalar{Name: "Point"}},
		{Name: "Corners", Type: Array{Elem: Scalar{Name: "Point"}, Len: 4}},
		{Name: "Tag", Type: Scalar{Name: "byte"}},
	}}
	a := &Record{Name: "A", Fields: []Field{{Name: "b", Type: Scalar{Name: "B"}}}}
	b := &Record{Name: "B", Fields: []Field{{Name: "a", Type: Scalar{Name: "A"}}}}

	resolve := Sizes(shape, point, a, b)

	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"Point", 8, true},
		{"Shape", 41, true},
		{"A", 0, false},
		{"B", 0, false},
		{"Missing", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolve(Scalar{Name: tt.name})
			if got != tt.want || ok != tt.ok {
				t.Errorf("size = %d, %v, want %d, %v", got, ok, tt.want, tt.ok)
			}
		})
	}

	slots, total, ok := Layout(shape, resolve)
	if !ok || total != 41 {
		t.Fatalf("Layout(Shape) total = %d, %v", total, ok)
	}
	if slots[2].Offset != 40 {
		t.Errorf("Tag offset = %d, want 40", slots[2].Offset)
	}
}
