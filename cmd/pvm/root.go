package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	trace    bool
	maxSteps int
)

var rootCmd = &cobra.Command{
	Use:   "pvm",
	Short: "Run toy bytecode programs",
	Long: `pvm executes programs for the demonstration bytecode interpreter that
ships with the procheap repository. The interpreter is a standalone toy and
does not touch the allocator.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&trace, "trace", "t", false, "Dump register state after every instruction")
	rootCmd.PersistentFlags().
		IntVar(&maxSteps, "max-steps", 0, "Stop after this many instructions (0 = unlimited)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
