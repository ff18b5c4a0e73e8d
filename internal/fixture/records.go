// Package fixture holds records with checked-in generated codecs. Its tests
// exercise the generated code and keep it in sync with the generator.
package fixture

//go:generate go run github.com/wippyai/recordgen/cmd/recordgen generate records.go --out records_gen.go

// Header is the two-field record from the decoding walkthrough: a 16-bit
// value followed by four raw bytes.
//
//recordgen:derive
type Header struct {
	A uint16
	B [4]uint8
}

//recordgen:derive
type Point struct {
	X int32
	Y int32
}

// Shape nests Point both directly and as an array element.
//
//recordgen:derive
type Shape struct {
	Origin  Point
	Corners [4]Point
	Tag     byte
	Flags   [2]bool
	Scale   float64
}

// Trace chains three probes so tests can see which ones ran.
//
//recordgen:derive decode,encode,size
type Trace struct {
	First  Probe
	Second Probe
	Third  Probe
}

//recordgen:derive
type Empty struct{}
