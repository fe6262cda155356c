// Package cli wires the jsontable command: flags, config, input and output.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/bjaus/jsontable"
	"github.com/bjaus/jsontable/internal/config"
)

// Exit codes returned by [Execute].
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// version is reported by --version. Release builds override it with
// -ldflags "-X github.com/bjaus/jsontable/internal/cli.version=...".
var version = "0.1.0"

// Option configures the command built by [NewCommand].
type Option func(*options)

type options struct {
	configLookup func() (string, bool)
}

// WithConfigLookup replaces the search for a config file used when --config
// is not given. lookup returns the path and whether a file was found.
func WithConfigLookup(lookup func() (string, bool)) Option {
	return func(o *options) { o.configLookup = lookup }
}

// usageError marks errors caused by bad flags or config values.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type flags struct {
	columns    string
	take       int
	skip       int
	sort       string
	order      string
	page       int
	pageSize   int
	sortPolicy string
	output     string
	border     string
	noHeader   bool
	maxWidth   int
	color      string
	configPath string
	verbose    int
}

// NewCommand returns the root command. Input is read from cmd.InOrStdin when
// no source is given; the table goes to cmd.OutOrStdout.
func NewCommand(opts ...Option) *cobra.Command {
	o := options{configLookup: config.DefaultPath}
	for _, opt := range opts {
		opt(&o)
	}
	var f flags
	cmd := &cobra.Command{
		Use:     "jsontable [flags] [source]",
		Version: version,
		Short:   "Display an array of json objects as a table",
		Long: "jsontable reads a JSON array of objects from a file or standard input\n" +
			"and prints it as a table, one row per object.",
		Example: "  jsontable users.json\n" +
			"  curl -s https://api.example.com/users | jsontable -c name,email --sort name\n" +
			"  jsontable --page 2 --pagesize 20 -o markdown users.json",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			lgr := newLogger(cmd.ErrOrStderr(), f.verbose)
			lgr = lgr.WithValues("cmd", cmd.Name())
			cmd.SetContext(logr.NewContext(cmd.Context(), lgr))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return run(cmd, f, o, source)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	fs := cmd.Flags()
	fs.StringVarP(&f.columns, "columns", "c", "", "the columns to display separated by a comma. if none provided, all columns of the first record are displayed")
	fs.IntVarP(&f.take, "take", "t", 0, "the number of rows to display. if none provided, all rows are displayed")
	fs.IntVarP(&f.skip, "skip", "s", 0, "the number of rows to skip")
	fs.StringVar(&f.sort, "sort", "", "the column name to sort by")
	fs.StringVar(&f.order, "order", "asc", "the sorting order: asc or desc")
	fs.IntVar(&f.page, "page", 0, "the 1-based page to display. overrides --skip and --take")
	fs.IntVar(&f.pageSize, "pagesize", jsontable.DefaultPageSize, "the number of rows per page")
	fs.StringVar(&f.sortPolicy, "sort-policy", jsontable.PolicyLast.String(), "how to sort records missing the sort column: last, keep or strict")
	fs.StringVarP(&f.output, "output", "o", jsontable.FormatTable.String(), "output format: table, markdown, csv, tsv, html, json, jsonl or yaml")
	fs.StringVar(&f.border, "border", jsontable.BorderASCII.String(), "table border: ascii, rounded, heavy, double or none")
	fs.BoolVar(&f.noHeader, "no-header", false, "do not print the header row")
	fs.IntVar(&f.maxWidth, "max-width", 0, "truncate cells wider than this (0 disables)")
	fs.StringVar(&f.color, "color", config.ColorAuto, "bold header: auto, always or never")
	fs.StringVar(&f.configPath, "config", "", "config file (.yaml, .yml or .toml)")
	fs.CountVarP(&f.verbose, "verbose", "v", "log progress to stderr; repeat for more detail")
	return cmd
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...Option) int {
	cmd := NewCommand(opts...)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		var ue usageError
		if errors.As(err, &ue) {
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}

func newLogger(w io.Writer, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: verbosity})
}

func run(cmd *cobra.Command, f flags, o options, source string) error {
	lgr := logr.FromContextOrDiscard(cmd.Context())

	s, err := resolveSettings(cmd, f, o.configLookup)
	if err != nil {
		return usageError{err}
	}
	lgr.V(1).Info("resolved settings", "output", s.render.Format, "skip", s.build.Window.Skip, "take", s.build.Window.Take, "sort", s.build.Sort, "order", s.build.Direction, "policy", s.build.Policy)

	doc, err := readDocument(cmd.InOrStdin(), source)
	if err != nil {
		return err
	}
	lgr.V(1).Info("decoded document", "source", sourceName(source), "elements", len(doc))

	t, err := jsontable.Build(doc, s.build)
	if err != nil {
		return err
	}
	lgr.V(2).Info("built table", "columns", t.Header, "rows", len(t.Rows))

	// Render fully before writing so a failure leaves no partial table.
	var buf bytes.Buffer
	s.render.HeaderStyle = headerStyle(cmd.OutOrStdout(), s.color)
	if err := jsontable.Render(&buf, t, s.render); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
