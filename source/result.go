// Package source holds what the schema front-ends share. The front-ends
// themselves live in the subpackages: gosrc for Go declarations,
// schemafile for YAML and JSON schema files, witsrc for WIT records.
package source

import "github.com/wippyai/recordgen/gen"

// Result is the output of one front-end run.
type Result struct {
	// Package is the package clause for the generated file, when the input
	// names one.
	Package string
	// Targets are the selected records in input order.
	Targets []gen.Target
	// Imports maps the package qualifiers used by field types to their
	// import paths.
	Imports map[string]string
}

// Options builds generator options from r. Package overrides r.Package
// when set.
func (r *Result) Options(pkg string) gen.Options {
	if pkg == "" {
		pkg = r.Package
	}
	return gen.Options{Package: pkg, Imports: r.Imports}
}
