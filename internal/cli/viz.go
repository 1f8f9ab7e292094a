package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treedump/treedump/pkg/render/nodelink"
)

const defaultPNGScale = 2.0 // 2x resolution for high-DPI displays

// vizOpts holds the command-line flags for the viz command.
type vizOpts struct {
	output   string // output file path (default derived from input)
	format   string // output format: "dot", "svg", "pdf", "png"
	detailed bool   // include kind names in node labels
}

// validVizFormats is the set of supported output formats.
var validVizFormats = map[string]bool{"dot": true, "svg": true, "pdf": true, "png": true}

// newVizCmd creates the viz command for rendering a document's tree
// structure as a node-link diagram.
func newVizCmd() *cobra.Command {
	opts := vizOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "viz [file]",
		Short: "Render a document's tree structure as a diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVizFormat(opts.format); err != nil {
				return err
			}
			return runViz(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node kinds in labels")

	return cmd
}

// validateVizFormat checks that the requested format is supported.
func validateVizFormat(s string) error {
	if !validVizFormats[s] {
		return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', 'pdf', or 'png')", s)
	}
	return nil
}

// outputPath derives the diagram file path from the output flag and input
// path. If output is empty, the input extension is replaced by the format.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runViz loads the document at input, converts it to DOT, and renders the
// requested format to a file.
func runViz(ctx context.Context, input string, opts *vizOpts) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	root, err := importDocument(input, "")
	if err != nil {
		return err
	}
	logger.Infof("Loaded document: %d nodes", root.Count())

	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		logger.Debug("Rendering SVG")
		data, err = nodelink.RenderSVG(dot)
	case "pdf":
		logger.Debug("Rendering PDF")
		data, err = nodelink.RenderPDF(dot)
	case "png":
		logger.Debug("Rendering PNG")
		data, err = nodelink.RenderPNG(dot, defaultPNGScale)
	}
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input, opts.format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printSuccess("Diagram complete")
	printFile(path)
	p.done(fmt.Sprintf("Generated %s diagram", opts.format))
	return nil
}
