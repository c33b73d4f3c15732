package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/cardcheck/internal/validation"
)

func newPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password <password>",
		Short: "Check password strength",
		Long:  "Password requires 8 to 30 characters with an uppercase and a lowercase letter, a digit and a special character.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason := validation.CheckPassword(args[0])
			if reason != validation.PasswordOK {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid (%s)\n", reason)
				return errRejected
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}
