package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mlast "github.com/msto63/minilang/foundation/minilang/ast"
)

var astCmd = &cobra.Command{
	Use:   "ast [source|-]",
	Short: "Print the syntax tree",
	Long: `Parses the source and prints the expression tree.

Examples:
  minilang ast "x 42"
  minilang ast -o json "x 42"`,
	RunE: runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	addSourceFlags(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	expr, err := newEngine(nil).Parse(source)
	if err != nil {
		return err
	}

	if outFormat := format(); outFormat != "text" {
		return writeStructured(cmd.OutOrStdout(), outFormat, mlast.DumpTree(expr))
	}

	fmt.Fprint(cmd.OutOrStdout(), mlast.ASTToString(expr))
	return nil
}
