package main

import (
	"github.com/spf13/cobra"

	"github.com/mmeshcher/cardcheck/internal/calculator"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Run the interactive calculator",
		Long:  "Calc shows a menu of operations, reads the choice and two numbers and prints the result. Enter q to quit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calculator.NewREPL(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}
