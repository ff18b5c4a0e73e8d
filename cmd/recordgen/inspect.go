package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/recordgen/config"
	"github.com/wippyai/recordgen/cursor"
	"github.com/wippyai/recordgen/errors"
	"github.com/wippyai/recordgen/gen"
	"github.com/wippyai/recordgen/schema"
	"github.com/wippyai/recordgen/source"
)

type inspectFlags struct {
	types       []string
	endian      string
	json        bool
	interactive bool
}

var insFlags inspectFlags

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Show record layouts",
	Long: `Show the byte layout of every selected record: field offsets, sizes and
the facets that would be generated.

Example:
  recordgen inspect records.go
  recordgen inspect schema.yaml --json
  recordgen inspect ./pkg -i`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if insFlags.interactive {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.InvalidInput(errors.PhaseParse, "interactive mode needs a terminal")
			}
			return runInteractive(cfg, args[0], insFlags)
		}
		return inspect(cmd.OutOrStdout(), cfg, args[0], insFlags)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringSliceVarP(&insFlags.types, "type", "t", nil, "records to inspect")
	inspectCmd.Flags().StringVarP(&insFlags.endian, "endian", "e", "", "byte order: le or be (default from config)")
	inspectCmd.Flags().BoolVar(&insFlags.json, "json", false, "print the layout as JSON")
	inspectCmd.Flags().BoolVarP(&insFlags.interactive, "interactive", "i", false, "browse records in a terminal UI")
}

// recordReport is the inspect view of one record. Size is nil when a field
// type is declared outside the input.
type recordReport struct {
	Size   *int          `json:"size,omitempty"`
	Name   string        `json:"name"`
	Facets string        `json:"facets"`
	Fields []schema.Slot `json:"fields"`
}

type inspectReport struct {
	Package string         `json:"package,omitempty"`
	Endian  string         `json:"endian"`
	Records []recordReport `json:"records"`
}

// session is one loaded input with the settings inspect and the browser
// share.
type session struct {
	res     *source.Result
	opts    gen.Options
	resolve schema.SizeFunc
	endian  cursor.Endian
}

func openSession(cfg *config.Config, input string, flags inspectFlags) (*session, error) {
	endian, err := cfg.ByteOrder()
	if err != nil {
		return nil, err
	}
	if flags.endian != "" {
		if endian, err = cursor.ParseEndian(flags.endian); err != nil {
			return nil, err
		}
	}
	res, err := loadInput(input, flags.types)
	if err != nil {
		return nil, err
	}
	recs := make([]*schema.Record, len(res.Targets))
	for i, t := range res.Targets {
		recs[i] = t.Record
	}
	opts := cfg.GenOptions(res.Package, res.Imports)
	if opts.Package == "" {
		opts.Package = "main"
	}
	if opts.Facets == 0 {
		opts.Facets = gen.FacetAll
	}
	return &session{res: res, opts: opts, resolve: schema.Sizes(recs...), endian: endian}, nil
}

func (s *session) report(t gen.Target) recordReport {
	slots, total, ok := schema.Layout(t.Record, s.resolve)
	facets := t.Facets
	if facets == 0 {
		facets = s.opts.Facets
	}
	r := recordReport{Name: t.Record.Name, Facets: facets.String(), Fields: slots}
	if ok {
		r.Size = &total
	}
	return r
}

// preview renders the generated source for a single target.
func (s *session) preview(t gen.Target) (string, error) {
	out, err := gen.New(s.opts).Generate([]gen.Target{t})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func inspect(w io.Writer, cfg *config.Config, input string, flags inspectFlags) error {
	s, err := openSession(cfg, input, flags)
	if err != nil {
		return err
	}

	rep := inspectReport{Package: s.res.Package, Endian: s.endian.String()}
	for _, t := range s.res.Targets {
		rep.Records = append(rep.Records, s.report(t))
	}

	if flags.json {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "marshal report")
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	for i, r := range rep.Records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s, %s): %s\n", r.Name, rep.Endian, r.Facets, sizeText(r.Size))
		fmt.Fprintln(w, layoutTable(r.Fields))
	}
	return nil
}

func layoutTable(slots []schema.Slot) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("OFFSET", "SIZE", "FIELD", "TYPE")
	for _, s := range slots {
		t.Row(intText(s.Offset), intText(s.Size), s.Field, s.Type)
	}
	return t.String()
}

func intText(n int) string {
	if n < 0 {
		return "?"
	}
	return strconv.Itoa(n)
}

func sizeText(size *int) string {
	if size == nil {
		return "size depends on external types"
	}
	return strconv.Itoa(*size) + " bytes"
}
