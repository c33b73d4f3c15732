package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmeshcher/cardcheck/internal/model"
	"github.com/mmeshcher/cardcheck/internal/service"
	"github.com/mmeshcher/cardcheck/internal/validation"
)

func newCardCmd() *cobra.Command {
	var (
		jsonOutput bool
		minLength  int
		maxLength  int
	)

	cmd := &cobra.Command{
		Use:   "card [number...]",
		Short: "Validate payment card numbers",
		Long: "Card checks each number with the Luhn checksum (digits doubled from the left) " +
			"and the length policy. Spaces and hyphens are ignored. Without arguments numbers " +
			"are read from stdin, one per line. Only the last four digits are printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := validation.Policy{MinLength: minLength, MaxLength: maxLength}
			if policy.MinLength < 1 || policy.MaxLength < policy.MinLength {
				return fmt.Errorf("invalid length range [%d, %d]", policy.MinLength, policy.MaxLength)
			}

			numbers := args
			if len(numbers) == 0 {
				var err error
				numbers, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			return runCard(cmd.Context(), cmd.OutOrStdout(), service.NewService(policy, nil), numbers, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().IntVar(&minLength, "min", validation.DefaultMinLength, "minimum number of digits")
	cmd.Flags().IntVar(&maxLength, "max", validation.DefaultMaxLength, "maximum number of digits")
	return cmd
}

func runCard(ctx context.Context, w io.Writer, svc *service.Service, numbers []string, jsonOutput bool) error {
	results := make([]model.CardCheck, 0, len(numbers))
	rejected := false

	for _, n := range numbers {
		result := svc.CheckCard(ctx, n)
		if !result.Valid {
			rejected = true
		}
		results = append(results, result)
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Fprintf(w, "%s\tvalid\n", r.Number)
			} else {
				fmt.Fprintf(w, "%s\tinvalid (%s)\n", r.Number, r.Reason)
			}
		}
	}

	if rejected {
		return errRejected
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return lines, nil
}
