// Package schema defines the record description consumed by the code
// generator.
//
// A Record is an ordered list of named fields. Each field has either a
// Scalar type (a builtin such as uint16, or a named record type such as
// Point or geo.Point) or an Array of a scalar with a length fixed at
// generation time. Field order is the byte layout order.
//
// Front-ends in the source/ tree build Records from Go source, schema files
// and WIT definitions; FromType builds one from a Go struct via reflection.
package schema
