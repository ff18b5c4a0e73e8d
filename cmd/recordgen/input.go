package main

import (
	"os"
	"path/filepath"

	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/source"
	"github.com/wippyai/recordgen/source/gosrc"
	"github.com/wippyai/recordgen/source/schemafile"
)

// loadInput picks the front-end for path. A directory or a .go file is read
// as Go source, .yaml, .yml and .json files as schema documents.
func loadInput(path string, names []string) (*source.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindNotFound, err, "open input")
	}
	if info.IsDir() {
		return gosrc.ParseDir(path, names...)
	}
	if filepath.Ext(path) == ".go" {
		return gosrc.ParseFile(path, nil, names...)
	}
	if _, ok := schemafile.FormatOf(path); ok {
		return schemafile.Load(path, names...)
	}
	return nil, errors.Unsupported(errors.PhaseParse, "input "+path+" is not a Go file, a package directory or a schema file")
}
