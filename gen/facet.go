package gen

import (
	"strings"

	"github.com/wippyai/recordgen/errors"
)

// Facet selects which codec routines are generated for a record.
type Facet uint8

const (
	FacetDecode Facet = 1 << iota // fallible DecodeFrom
	FacetEncode                   // fallible EncodeTo
	FacetSize                     // SizeWith
	FacetLoad                     // infallible LoadFrom
	FacetStore                    // infallible StoreTo

	FacetIndexed = FacetLoad | FacetStore
	FacetAll     = FacetDecode | FacetEncode | FacetSize | FacetIndexed
)

var facetNames = []struct {
	facet Facet
	name  string
}{
	{FacetDecode, "decode"},
	{FacetEncode, "encode"},
	{FacetSize, "size"},
	{FacetLoad, "load"},
	{FacetStore, "store"},
}

// Has reports whether every facet in x is selected in f.
func (f Facet) Has(x Facet) bool {
	return f&x == x
}

func (f Facet) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range facetNames {
		if f.Has(fn.facet) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseFacets parses a comma or space separated facet list. Besides the
// single facet names it accepts "indexed" (load and store) and "all".
func ParseFacets(s string) (Facet, error) {
	var f Facet
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		switch name := strings.ToLower(tok); name {
		case "all":
			f |= FacetAll
		case "indexed":
			f |= FacetIndexed
		default:
			found := false
			for _, fn := range facetNames {
				if fn.name == name {
					f |= fn.facet
					found = true
					break
				}
			}
			if !found {
				return 0, errors.InvalidInput(errors.PhaseGenerate, "unknown facet "+tok)
			}
		}
	}
	return f, nil
}
