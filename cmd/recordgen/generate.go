package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/recordgen/config"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/source/gosrc"
)

type generateFlags struct {
	types  []string
	facets string
	out    string
	pkg    string
}

var genFlags generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate <input>",
	Short: "Generate codec methods",
	Long: `Generate codec methods for the records declared in a Go file, a package
directory or a YAML/JSON schema file.

Without --type, Go input selects the structs marked with ` + gosrc.Directive + `
and schema files select every record.

Example:
  recordgen generate records.go --out records_gen.go
  recordgen generate schema.yaml --type Header --facets decode,size`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if genFlags.out == "" || genFlags.out == "-" {
			return generate(cmd.OutOrStdout(), cfg, args[0], genFlags)
		}
		var buf bytes.Buffer
		if err := generate(&buf, cfg, args[0], genFlags); err != nil {
			return err
		}
		if err := os.WriteFile(genFlags.out, buf.Bytes(), 0o644); err != nil {
			return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write "+genFlags.out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringSliceVarP(&genFlags.types, "type", "t", nil, "records to generate (repeatable or comma separated)")
	generateCmd.Flags().StringVarP(&genFlags.facets, "facets", "f", "", "default facets: decode, encode, size, load, store, indexed or all")
	generateCmd.Flags().StringVarP(&genFlags.out, "out", "o", "", "output file (default stdout)")
	generateCmd.Flags().StringVarP(&genFlags.pkg, "package", "p", "", "package clause of the generated file")
}

// generate renders the codecs for input into w. Flags win over the config
// file, which wins over what the input declares.
func generate(w io.Writer, cfg *config.Config, input string, flags generateFlags) error {
	res, err := loadInput(input, flags.types)
	if err != nil {
		return err
	}

	opts := cfg.GenOptions(res.Package, res.Imports)
	opts.Source = filepath.Base(input)
	if flags.pkg != "" {
		opts.Package = flags.pkg
	}
	if flags.facets != "" {
		if opts.Facets, err = gen.ParseFacets(flags.facets); err != nil {
			return err
		}
	}

	out, err := gen.New(opts).Generate(res.Targets)
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidInput, err, "write output")
	}
	logger.Info("generated",
		zap.String("input", input),
		zap.String("package", opts.Package),
		zap.Int("records", len(res.Targets)))
	return nil
}
