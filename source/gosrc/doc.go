// Package gosrc reads record schemas from Go source.
//
// A struct type is selected either by name or by a directive in its doc
// comment:
//
//	//recordgen:derive decode,encode,size
//	type Header struct {
//		A uint16
//		B [4]uint8
//	}
//
// An empty facet list after the directive selects every facet. Array
// lengths must be integer literals; constants and expressions are rejected
// because the generator cannot evaluate them.
package gosrc
