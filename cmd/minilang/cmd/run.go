package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minilang/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run [source|-]",
	Short: "Run source through the whole pipeline",
	Long: `Tokenizes and parses the source and prints one line per leaf:

  Factor: <number>
  Identifier: <name>

Without arguments the configured sample input is run. Runs are all or
nothing: on a lexical or syntax error nothing is printed on stdout and
the exit status is 1.

Examples:
  minilang run "x 42 y"
  minilang run -o json "x 42"
  echo "a b c" | minilang run -
  minilang run -f program.ml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSourceFlags(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Pipeline.Timeout.Duration)
	defer cancel()

	outFormat := format()
	if outFormat == "text" {
		report, err := newEngine(cmd.OutOrStdout()).Run(ctx, source)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderHelp(fmt.Sprintf(
				"run %s: %d tokens, %d leaves in %s",
				report.RunID, report.Tokens, report.Leaves, report.Duration)))
		}
		return nil
	}

	report, err := newEngine(nil).Run(ctx, source)
	if err != nil {
		return err
	}
	return writeStructured(cmd.OutOrStdout(), outFormat, report)
}
