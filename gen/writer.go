package gen

import (
	"fmt"
	"strings"
)

// codeWriter accumulates Go source one line at a time.
type codeWriter struct {
	b      strings.Builder
	indent int
}

func (w *codeWriter) line(format string, args ...any) {
	if format == "" {
		w.b.WriteByte('\n')
		return
	}
	w.b.WriteString(strings.Repeat("\t", w.indent))
	if len(args) > 0 {
		fmt.Fprintf(&w.b, format, args...)
	} else {
		w.b.WriteString(format)
	}
	w.b.WriteByte('\n')
}

// open writes a line ending in "{" and indents what follows.
func (w *codeWriter) open(format string, args ...any) {
	w.line(format, args...)
	w.indent++
}

// close dedents and writes the closing brace.
func (w *codeWriter) close() {
	w.indent--
	w.line("}")
}

func (w *codeWriter) String() string {
	return w.b.String()
}
