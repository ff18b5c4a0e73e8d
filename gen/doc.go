// Package gen emits Go codec methods for fixed-layout records.
//
// A Generator takes validated schema.Records, each bound to a set of
// facets, and renders one gofmt-formatted Go file containing:
//
//   - DecodeFrom: fallible decode that short-circuits on the first error
//   - EncodeTo: fallible encode with the same short-circuit behavior
//   - SizeWith: instance-free encoded size
//   - LoadFrom and StoreTo: infallible indexed decode and encode
//
// Generated code depends only on the cursor runtime package. Every named
// field type must itself implement the cursor interfaces the selected
// facets require; the generator emits compile-time assertions for them,
// one per distinct type signature.
//
// Schema errors anywhere in the input abort generation before any output
// is produced.
package gen
