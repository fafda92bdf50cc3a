package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bolognalang/bologna/bolo"
)

var checkTree bool

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse Bologna source files and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkTree, "tree", false, "print the parsed form of each top-level unit")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, paths []string) error {
	failed := 0

	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		program, errs := bolo.NewParser(string(source)).ParseProgram()
		for _, parseErr := range errs {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, parseErr)
		}
		if len(errs) > 0 {
			failed++
			continue
		}

		if checkTree {
			for _, unit := range program.Units {
				fmt.Fprintln(cmd.OutOrStdout(), bolo.Format(unit))
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) had parse errors", failed)
	}
	return nil
}
