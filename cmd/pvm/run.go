package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procheap/internal/vm"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <program>",
		Short: "Execute a bytecode file",
		Long: `The run command loads a raw bytecode file and executes it until the
program halts or the code ends.

Example:
  pvm run demo.bin
  pvm run demo.bin --trace --max-steps 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read program: %w", err)
			}

			p := vm.New(code)
			if trace {
				p.Trace = cmd.OutOrStdout()
			}
			if err := p.Run(maxSteps); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "halted=%v", p.Halted())
			for i, r := range p.Regs {
				fmt.Fprintf(cmd.OutOrStdout(), " reg%d=%d", i, r)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
