package fixture

import (
	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
)

// ProbeFail is the byte value a Probe refuses to decode or encode.
const ProbeFail = 0xFF

// Probe is a one-byte value with a hand-written codec that counts calls.
type Probe struct {
	V uint8
}

var probeDecodes, probeEncodes int

func resetProbes() {
	probeDecodes, probeEncodes = 0, 0
}

func (p *Probe) DecodeFrom(src []byte, ctx cursor.Endian) (int, error) {
	probeDecodes++
	off := 0
	v, err := cursor.Read[uint8](src, &off, ctx)
	if err != nil {
		return 0, err
	}
	if v == ProbeFail {
		return 0, errors.InvalidData(errors.PhaseDecode, []string{"Probe", "V"}, "probe refused")
	}
	p.V = v
	return off, nil
}

func (p *Probe) EncodeTo(dst []byte, ctx cursor.Endian) (int, error) {
	probeEncodes++
	if p.V == ProbeFail {
		return 0, errors.InvalidData(errors.PhaseEncode, []string{"Probe", "V"}, "probe refused")
	}
	off := 0
	if err := cursor.Write(dst, &off, p.V, ctx); err != nil {
		return 0, err
	}
	return off, nil
}

func (Probe) SizeWith(ctx cursor.Endian) int {
	return cursor.SizeOf[uint8](ctx)
}
