package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/treedump/treedump/pkg/buildinfo"
)

// Execute runs the treedump CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (dump, viz),
// configures logging based on the --verbose flag, and executes the command
// tree against ctx, so cancelling ctx aborts a running command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "treedump",
		Short:        "treedump pretty-prints typed-value documents",
		Long:         `treedump is a CLI tool for inspecting structured documents: it renders JSON and TOML files as readable indented text, and can draw their tree structure as a diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDumpCmd())
	root.AddCommand(newVizCmd())

	return root.ExecuteContext(ctx)
}
