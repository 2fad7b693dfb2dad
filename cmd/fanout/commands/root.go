// Package commands implements the CLI commands for fanout.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/fanout/internal/app"
	"go.trai.ch/fanout/internal/build"
)

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, req app.BuildRequest) error
	Watch(ctx context.Context, req app.BuildRequest) error
	Clean(ctx context.Context, req app.BuildRequest, opts app.CleanOptions) error
}

// JSONSwitcher is implemented by loggers that can emit JSON lines.
type JSONSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for fanout.
type CLI struct {
	app     Application
	logger  JSONSwitcher
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. The logger may be nil.
func New(a Application, logger JSONSwitcher) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fanout",
		Short:         "Compile framework-neutral components for every UI framework",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to fanout.yaml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().String("cwd", "", "Directory to run in (default: current directory)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit log lines as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs && c.logger != nil {
			c.logger.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func request(cmd *cobra.Command) (app.BuildRequest, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return app.BuildRequest{}, err
		}
		cwd = wd
	}
	return app.BuildRequest{Cwd: cwd, ConfigPath: configPath}, nil
}
