package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
	"github.com/msto63/minilang/internal/tui"
	"github.com/msto63/minilang/pkg/core/config"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
	noColor   bool
)

// Set up by PersistentPreRunE for every command
var (
	cfg    *config.Config
	logger *mllog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "minilang",
	Short: "minilang - tokenizer, parser and runner for a tiny language",
	Long: `minilang turns source text into tokens, builds a flat expression
tree from them and prints one line per leaf.

The language knows numbers, identifiers, the keywords if, then, else,
while and do, and the operators + - * /. Only numbers and identifiers are
valid terms, so operators and keywords are rejected by the parser.

Commands:
  run     - run source through the whole pipeline
  tokens  - print the token stream
  ast     - print the syntax tree
  repl    - interactive session
  version - print version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mlerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MINILANG_CONFIG or ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging and run summary)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, console, logfmt)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return mlerror.Wrap(err, "invalid flags").WithCode(mlerror.CodeInvalidInput)
	})
}

// setup loads the configuration and builds the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
		if mlerror.HasCode(err, mlerror.CodeMissingConfig) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.General.LogLevel = logLevel
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := mllog.ParseLevel(cfg.General.LogLevel)
	format, _ := mllog.ParseFormat(cfg.General.LogFormat)
	logger = mllog.NewWithConfig(mllog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   cfg.General.Name,
	})
	mllog.SetDefault(logger)

	if !cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Debug("Configuration loaded", mllog.Fields{
		"environment": cfg.General.Environment,
		"log_level":   cfg.General.LogLevel,
		"output":      cfg.Output.Format,
	})
	return nil
}

func printError(err error) {
	if logger != nil {
		logger.LogError(err)
	}

	fmt.Fprintln(rootCmd.ErrOrStderr(), tui.RenderError(err.Error()))

	var mlErr *mlerror.Error
	if verbose && errors.As(err, &mlErr) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), tui.RenderHelp(mlErr.String()))
	}
}
