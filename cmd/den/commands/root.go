// Package commands implements the CLI commands for the den package manager.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/den/internal/app"
	"go.trai.ch/den/internal/build"
	"go.trai.ch/den/internal/core/domain"
)

// CLI represents the command line interface for den.
type CLI struct {
	app     *app.App
	cfg     domain.Config
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, cfg domain.Config) *CLI {
	rootCmd := &cobra.Command{
		Use:           "den",
		Short:         "An explicit environment and package manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Parsed for documentation; main resolves the value before the command
	// runs so the configuration is already loaded by then.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (also $CONDARC)")

	c := &CLI{
		app:     a,
		cfg:     cfg,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newCloneCmd())
	rootCmd.AddCommand(c.newUntrackedCmd())
	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newEnvsCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
