// Package commands implements the CLI commands for the taskmap graph tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/taskmap/internal/app"
	"go.trai.ch/taskmap/internal/build"
	"go.trai.ch/taskmap/internal/core/ports"
)

// CLI represents the command line interface for taskmap.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
}

// New builds the CLI over the given application and logger.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:           "taskmap",
		Short:         "Display Taskfile dependency graph",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.configureLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			silent, _ := cmd.Flags().GetBool("silent")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Run(cmd.Context(), app.RunOptions{
				Silent: silent,
				Watch:  watch,
			})
		},
	}

	rootCmd.Flags().BoolP("silent", "s", false, "Don't open the rendered graph in the browser")
	rootCmd.Flags().BoolP("watch", "w", false, "Re-render the graph when a taskfile changes")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug level logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	versionLine := fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n", build.Commit, build.Date)
	rootCmd.SetVersionTemplate(versionLine)
	rootCmd.InitDefaultVersionFlag()
	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configureLogging applies the verbosity and format flags to the logger.
// The flags only take effect when the logger supports the matching setter.
func (c *CLI) configureLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	if verbose {
		if setter, ok := c.logger.(interface{ SetVerbose(bool) }); ok {
			setter.SetVerbose(true)
		}
	}
	if jsonLogs {
		if setter, ok := c.logger.(interface{ SetJSON(bool) }); ok {
			setter.SetJSON(true)
		}
	}
}

// Execute runs the root command under ctx.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs overrides the parsed arguments, so callers can drive the CLI
// without touching os.Args.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command's output and error streams.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
