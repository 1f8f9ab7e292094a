package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treedump/treedump/pkg/dump"
	"github.com/treedump/treedump/pkg/node"
	"github.com/treedump/treedump/pkg/strutil"
	"github.com/treedump/treedump/pkg/treeio"
)

const (
	formatJSON = "json"
	formatTOML = "toml"
)

// dumpOpts holds the command-line flags for the dump command.
type dumpOpts struct {
	output string // output file path (default stdout)
	format string // input format override: "json" or "toml" (default by extension)
	indent int    // starting indent level
}

// newDumpCmd creates the dump command for pretty-printing documents.
//
// The input format is normally chosen by file extension; --format overrides
// it. Output goes to stdout unless --output names a file, in which case the
// file is written atomically.
func newDumpCmd() *cobra.Command {
	opts := dumpOpts{}

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Pretty-print a document as indented text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateInputFormat(opts.format); err != nil {
				return err
			}
			return runDump(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: json, toml (default by extension)")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "starting indent level")

	return cmd
}

// validateInputFormat checks that the format override, if given, is supported.
func validateInputFormat(s string) error {
	if s != "" && s != formatJSON && s != formatTOML {
		return fmt.Errorf("invalid format: %s (must be 'json' or 'toml')", s)
	}
	return nil
}

// importDocument loads a document using the format override, or by file
// extension when the override is empty.
func importDocument(path, format string) (*node.Node, error) {
	switch format {
	case formatJSON:
		return treeio.ImportJSON(path)
	case formatTOML:
		return treeio.ImportTOML(path)
	default:
		return treeio.Import(path)
	}
}

// runDump loads the document at input and renders it as indented text.
func runDump(ctx context.Context, input string, opts *dumpOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	root, err := importDocument(input, opts.format)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(input); err == nil {
		logger.Debugf("Read %s (%s)", input, strutil.FormatSize(uint64(fi.Size())))
	}
	logger.Infof("Loaded document: %d nodes", root.Count())

	if opts.output == "" {
		if err := dump.Fprint(root, os.Stdout, opts.indent); err != nil {
			return err
		}
		p.done(fmt.Sprintf("Rendered %d nodes", root.Count()))
		return nil
	}

	if err := treeio.ExportText(root, opts.output, opts.indent); err != nil {
		return err
	}
	printSuccess("Dump complete")
	printFile(opts.output)
	p.done(fmt.Sprintf("Rendered %d nodes", root.Count()))
	return nil
}
