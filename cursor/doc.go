// Package cursor is the binary runtime that generated record codecs call into.
//
// It provides the primitive operations a codec is composed of:
//
//	Fallible        Read, ReadSlice, Write, ReadValue, ReadValues, WriteValue
//	Infallible      Get, Put
//	Size            SizeOf, SizeOfValue
//
// Every operation takes an Endian context that selects the byte order. The
// fallible operations advance a caller-owned offset only on success and
// report failures as *errors.Error values from the decode or encode phase:
//
//	[decode] out_of_bounds: Go type uint16 - need 2 bytes at offset 5, buffer has 6
//
// The infallible operations index the buffer directly; reading or writing
// past its end panics like any out-of-range slice access.
//
// # Record interfaces
//
// Records produced by recordgen implement a subset of Decoder, Encoder,
// Sizer, Loader and Storer. Named field types must implement the same
// interfaces as the record that contains them.
//
// # Thread Safety
//
// All functions are stateless. Reader and Writer keep a position and are
// not safe for concurrent use.
package cursor
