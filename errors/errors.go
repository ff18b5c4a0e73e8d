package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse    Phase = "parse"    // schema front-end
	PhaseGenerate Phase = "generate" // codec emission
	PhaseEncode   Phase = "encode"   // record to bytes
	PhaseDecode   Phase = "decode"   // bytes to record
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnnamedField   Kind = "unnamed_field"
	KindNotStruct      Kind = "not_struct"
	KindBadArrayLength Kind = "bad_array_length"
	KindUnsupported    Kind = "unsupported"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidData    Kind = "invalid_data"
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type shared by the generator and the
// generated codecs.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Record string
	GoType string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Record != "" || len(e.Path) > 0 {
		b.WriteString(" at ")
		parts := e.Path
		if e.Record != "" {
			parts = append([]string{e.Record}, e.Path...)
		}
		b.WriteString(strings.Join(parts, "."))
	}

	if e.GoType != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.GoType)
	}

	if e.Detail != "" {
		if e.GoType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsSchemaError reports whether err is a generation-time schema rejection.
// A List qualifies when every error in it does. Invalid input counts only
// when it names a record.
func IsSchemaError(err error) bool {
	var list *List
	if As(err, &list) {
		for _, e := range list.Errors {
			if !e.isSchema() {
				return false
			}
		}
		return len(list.Errors) > 0
	}
	var e *Error
	return As(err, &e) && e.isSchema()
}

func (e *Error) isSchema() bool {
	if e.Phase != PhaseParse && e.Phase != PhaseGenerate {
		return false
	}
	switch e.Kind {
	case KindUnnamedField, KindNotStruct, KindBadArrayLength, KindUnsupported:
		return true
	case KindInvalidInput:
		return e.Record != ""
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Record sets the record the error belongs to
func (b *Builder) Record(name string) *Builder {
	b.err.Record = name
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Schema rejections

// UnnamedField rejects a record field without a usable name.
func UnnamedField(record string, index int, goType string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnnamedField,
		Record: record,
		GoType: goType,
		Detail: fmt.Sprintf("field %d has no name; only structs with named fields are supported", index),
		Value:  index,
	}
}

// NotStruct rejects a declaration that is not a plain struct.
func NotStruct(record, what string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindNotStruct,
		Record: record,
		Detail: fmt.Sprintf("codecs can only be derived for structs, got %s", what),
	}
}

// BadArrayLength rejects an array length that is not an integer literal.
func BadArrayLength(record, field, expr string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindBadArrayLength,
		Record: record,
		Path:   []string{field},
		Detail: fmt.Sprintf("array length %q is not an integer literal", expr),
		Value:  expr,
	}
}

// Unsupported creates an unsupported construct error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// UnsupportedField rejects a field whose type cannot be laid out.
func UnsupportedField(record, field, goType, why string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnsupported,
		Record: record,
		Path:   []string{field},
		GoType: goType,
		Detail: why,
	}
}

// Codec failures

// ShortBuffer reports that a primitive needed more bytes than the buffer
// holds at the current offset.
func ShortBuffer(phase Phase, goType string, offset, need, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		GoType: goType,
		Detail: fmt.Sprintf("need %d bytes at offset %d, buffer has %d", need, offset, have),
		Value:  offset,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// List collects every schema error found in one input so they can be
// reported together. Generation aborts when a List is non-empty.
type List struct {
	Errors []*Error
}

// Add appends err when it is non-nil.
func (l *List) Add(err *Error) {
	if err != nil {
		l.Errors = append(l.Errors, err)
	}
}

// Err returns l as an error, or nil when nothing was collected.
func (l *List) Err() error {
	if l == nil || len(l.Errors) == 0 {
		return nil
	}
	return l
}

func (l *List) Error() string {
	if len(l.Errors) == 1 {
		return l.Errors[0].Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d schema errors:", len(l.Errors)))
	for _, e := range l.Errors {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (l *List) Unwrap() []error {
	out := make([]error, len(l.Errors))
	for i, e := range l.Errors {
		out[i] = e
	}
	return out
}
