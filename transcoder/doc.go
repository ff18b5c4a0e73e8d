// Package transcoder interprets record layouts at run time.
//
// A Compiler turns a Go struct type into a Plan: one step per field, each
// step knowing whether it moves a builtin scalar, a fixed array or a
// nested record. A Plan runs the same facets generated code has, with the
// same semantics:
//
//	Decode  - fallible, arrays in one bulk read, target untouched on error
//	Encode  - fallible, arrays element by element
//	Size    - sum of field sizes, instance free
//	Load    - infallible indexed decode
//	Store   - infallible indexed encode
//
// Plans delegate every primitive to the cursor runtime, so an interpreted
// record and its generated codec produce identical bytes and errors. Tests
// use this to check generated code against the schema it came from.
//
// # Key Types
//
//	Compiler - caches Plans per reflect.Type, safe for concurrent use
//	Plan     - compiled steps for one record type
package transcoder
