package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	mllog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/foundation/minilang"
	"github.com/msto63/minilang/internal/tui"
)

var (
	replShowTokens bool
	replShowAST    bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Starts an interactive session. Every line is run through the whole
pipeline and its output is kept in a scrollable history.

Commands:
  :tokens   - toggle the token display
  :ast      - toggle the tree display
  :clear    - clear the history
  :q        - quit

Navigation:
  Enter     - run the line
  Up/Down   - recall earlier lines
  Ctrl+C    - quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&replShowTokens, "tokens", false, "show tokens for every line")
	replCmd.Flags().BoolVar(&replShowAST, "ast", false, "show the tree for every line")
}

func runREPL(cmd *cobra.Command, args []string) error {
	// Log lines would tear the alternate screen
	engine := minilang.New(minilang.Options{
		Logger:         mllog.Discard(),
		MaxInputLength: cfg.Pipeline.MaxInputLength,
	})

	model := tui.NewModel(engine, tui.Options{
		Timeout:    cfg.Pipeline.Timeout.Duration,
		ShowTokens: replShowTokens,
		ShowAST:    replShowAST,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		logger.ErrorWithErr("REPL failed", err)
		return err
	}
	return nil
}
