package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minilang/foundation/minilang/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [source|-]",
	Short: "Print the token stream",
	Long: `Tokenizes the source and prints one token per line, ending with EOF.

Examples:
  minilang tokens "if x then 42"
  minilang tokens -o yaml "2 + 3 * 4"`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	addSourceFlags(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := newEngine(nil).Tokenize(source)
	if err != nil {
		return err
	}

	if outFormat := format(); outFormat != "text" {
		return writeStructured(cmd.OutOrStdout(), outFormat, token.DumpAll(tokens))
	}

	for _, tok := range tokens {
		fmt.Fprintln(cmd.OutOrStdout(), tok)
	}
	return nil
}
