// Package commands implements the CLI commands for evalrs.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/evalrs/internal/app"
	"go.trai.ch/evalrs/internal/build"
	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for evalrs.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "evalrs [snippet]",
		Short:         "Evaluate Rust code snippets with cargo",
		Long:          `Evaluate Rust code snippets with cargo.

The snippet is taken from the first argument, or from stdin when no
argument is given. Dependencies are declared inline with extern crate
statements and may carry a version annotation:

    extern crate rand; // "0.8"
    println!("{}", rand::random::<u8>());`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSnippet(cmd, args)
			if err != nil {
				return err
			}

			printResult, _ := cmd.Flags().GetBool("print-result")
			quiet, _ := cmd.Flags().GetBool("quiet")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return a.Eval(cmd.Context(), input, domain.EvalOptions{
				PrintResult: printResult,
				Quiet:       quiet,
				NoCache:     noCache,
			})
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolP("print-result", "p", false, "Print the snippet's result value with {:?}")
	rootCmd.Flags().BoolP("quiet", "q", false, "Pass --quiet to cargo, suppressing build progress")
	rootCmd.Flags().Bool("no-cache", false, "Rematerialize the project even when a cached one exists")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCleanCmd())
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

// SetIn sets the root command's input stream. Used for testing.
func (c *CLI) SetIn(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// readSnippet returns the snippet from the positional argument, or from
// stdin when no argument (or "-") is given.
func readSnippet(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", zerr.Wrap(err, "failed to read snippet from stdin")
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", zerr.New("no snippet provided")
	}
	return string(data), nil
}
