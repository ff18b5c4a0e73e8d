// Package guestmem moves records in and out of WebAssembly linear memory.
//
// Memory wraps a wazero api.Memory and runs record codecs directly on a
// view of guest memory, without copying through an intermediate buffer.
// Decode and Encode check the record's range against the memory size
// first and fail with an out_of_bounds error naming the range. Load and
// Store are the infallible pair: the caller guarantees the range, and a
// bad one panics.
package guestmem
