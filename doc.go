// Package recordgen generates binary codecs for fixed-layout records.
//
// A record is a struct whose fields are, in declaration order, scalars or
// fixed-length arrays of scalars. For each record the generator writes up to
// five methods that the runtime in package cursor drives:
//
//	DecodeFrom(src, ctx) (int, error)   fallible decode, all or nothing
//	EncodeTo(dst, ctx) (int, error)     fallible encode
//	SizeWith(ctx) int                   encoded size, no instance needed
//	LoadFrom(src, ctx)                  indexed decode, no bounds checks
//	StoreTo(dst, ctx)                   indexed encode, no bounds checks
//
// # Architecture Overview
//
//	recordgen/
//	├── schema/          Record, Field and Type, type-set deduplication, layout
//	├── gen/             Code emitters for the five facets
//	├── cursor/          Runtime the generated code calls into
//	├── source/          Front-ends producing schemas
//	│   ├── gosrc/       Go declarations marked with //recordgen:derive
//	│   ├── schemafile/  YAML and JSON schema documents
//	│   └── witsrc/      WIT record type definitions
//	├── transcoder/      Reflection interpreter with the same semantics
//	├── guestmem/        Records in WebAssembly guest memory (wazero)
//	├── config/          recordgen.yaml
//	├── errors/          Structured errors
//	└── cmd/recordgen/   generate, inspect and init commands
//
// # Quick Start
//
// Mark a struct and run the generator:
//
//	//go:generate go run github.com/wippyai/recordgen/cmd/recordgen generate header.go --out header_gen.go
//
//	//recordgen:derive
//	type Header struct {
//		Kind  uint16
//		Magic [4]byte
//	}
//
// Then decode it:
//
//	var h Header
//	n, err := h.DecodeFrom(buf, cursor.LE)
//
// A directive may restrict the facets: //recordgen:derive decode,size.
package recordgen
