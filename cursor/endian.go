package cursor

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/wippyai/recordgen/errors"
)

// Endian is the interpretation context threaded through every codec call.
type Endian uint8

const (
	LE Endian = iota
	BE
)

// Network is the byte order used by most wire protocols.
const Network = BE

// Order returns the byte order selected by e.
func (e Endian) Order() binary.ByteOrder {
	if e == BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Endian) String() string {
	switch e {
	case LE:
		return "le"
	case BE:
		return "be"
	default:
		return fmt.Sprintf("endian(%d)", uint8(e))
	}
}

// ParseEndian accepts le, little, be, big and network, case-insensitively.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "le", "little", "little-endian":
		return LE, nil
	case "be", "big", "big-endian", "network":
		return BE, nil
	}
	return LE, errors.InvalidInput(errors.PhaseConfig, fmt.Sprintf("unknown byte order %q", s))
}
