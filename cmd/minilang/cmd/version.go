package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/minilang/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if outFormat := format(); outFormat != "text" {
			return writeStructured(cmd.OutOrStdout(), outFormat, info)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "minilang v%s\n", info.Version)
		fmt.Fprintf(out, "  Pipeline:   %s\n", info.Pipeline)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVarP(&outputFormat, "output", "o", "", "output format (text, json, yaml)")
}
