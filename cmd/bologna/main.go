package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "bologna",
	Short: "Tooling for the Bologna language",
	Long: `Bologna is a tiny arithmetic and function-definition language.

The tool parses Bologna source into an abstract syntax tree; it performs no
evaluation or code generation.

Commands:
  check    parse source files and report diagnostics
  repl     interactive parse loop
  version  print the tool version`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bologna version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bologna v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
