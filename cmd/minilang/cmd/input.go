package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	"github.com/msto63/minilang/foundation/minilang"
)

var (
	sourceFile   string
	outputFormat string
)

// addSourceFlags registers the flags shared by run, tokens and ast
func addSourceFlags(c *cobra.Command) {
	c.Flags().StringVarP(&sourceFile, "file", "f", "", "read source from a file")
	c.Flags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json, yaml)")
}

// readSource picks the source text: --file, "-" for stdin, the arguments,
// or the configured sample input
func readSource(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case sourceFile != "":
		data, err := os.ReadFile(sourceFile)
		if err != nil {
			return "", mlerror.Wrap(err, "failed to read source file").
				WithCode(mlerror.CodeInvalidInput).
				WithDetail("path", sourceFile)
		}
		return trimLineEnding(string(data)), nil

	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mlerror.Wrap(err, "failed to read stdin").
				WithCode(mlerror.CodeInvalidInput)
		}
		return trimLineEnding(string(data)), nil

	case len(args) > 0:
		return strings.Join(args, " "), nil

	default:
		return cfg.Pipeline.SampleInput, nil
	}
}

// trimLineEnding drops the line ending that files and pipes usually end
// with; newlines are not part of the language
func trimLineEnding(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// format returns the effective output format
func format() string {
	if outputFormat != "" {
		return outputFormat
	}
	return cfg.Output.Format
}

// newEngine creates an engine from the configuration
func newEngine(output io.Writer) *minilang.Engine {
	return minilang.New(minilang.Options{
		Logger:         logger,
		MaxInputLength: cfg.Pipeline.MaxInputLength,
		Output:         output,
	})
}

// writeStructured encodes v as JSON or YAML
func writeStructured(w io.Writer, format string, v interface{}) error {
	var err error
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	default:
		return mlerror.Newf("unknown output format %q", format).
			WithCode(mlerror.CodeInvalidInput).
			WithDetail("format", format)
	}

	if err != nil {
		return mlerror.Wrap(err, fmt.Sprintf("failed to write %s output", format)).
			WithCode(mlerror.CodeOutput)
	}
	return nil
}
