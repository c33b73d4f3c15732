package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/cardcheck/internal/convert"
)

func newTempCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "temp <value>",
		Short: "Convert a temperature between Celsius and Fahrenheit",
		Long:  "Temp converts a value from the --from scale. Negative values go after --, for example: cardctl temp -- -40.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid temperature %q", args[0])
			}

			scale, err := convert.ParseScale(from)
			if err != nil {
				return fmt.Errorf("%w: %q", err, from)
			}

			c, f, err := convert.Convert(value, scale)
			if err != nil {
				return err
			}

			if scale == convert.Celsius {
				fmt.Fprintf(cmd.OutOrStdout(), "%s°C = %s°F\n", formatTemp(c), formatTemp(f))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s°F = %s°C\n", formatTemp(f), formatTemp(c))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "C", "source scale (C or F)")
	return cmd
}

func formatTemp(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
