// Command recordgen generates binary codecs for fixed-layout records and
// inspects their layout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wippyai/recordgen/errors"
)

// Exit codes. Schema rejections are told apart from usage and I/O failures
// so go:generate wrappers can react to them.
const (
	exitError  = 1
	exitSchema = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}

// report prints err and returns the process exit code for it.
func report(w io.Writer, err error) int {
	if errors.IsSchemaError(err) {
		fmt.Fprintf(w, "Schema error: %v\n", err)
		return exitSchema
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitError
}
