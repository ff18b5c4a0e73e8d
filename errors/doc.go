// Package errors provides structured error types for recordgen.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Schema errors come from the parse and generate phases and abort
// generation; codec errors come from the encode and decode phases and are
// returned unchanged by generated codecs.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindBadArrayLength).
//		Record("Header").
//		Path("magic").
//		Detail("array length %q is not an integer literal", "N").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotStruct("Color", "uint8")
//	err := errors.ShortBuffer(errors.PhaseDecode, "uint16", 4, 2, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
