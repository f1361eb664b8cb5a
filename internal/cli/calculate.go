package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/wire"
)

// CalculateCmd returns the calculate command
func CalculateCmd() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:     "calculate [method] [number...]",
		Aliases: []string{"calc"},
		Short:   "Compute missing check digits",
		Long: `Append the correct check digit(s) to each given number body.

Numbers are read from the arguments, or from stdin (one or more per
line) when no numbers are given. Separators such as spaces and hyphens
are stripped before computation. With no arguments at all, the method
comes from default_method in .checkdigit/config.json.

A bad entry (wrong length, no digits) is reported on stderr and does
not stop the rest of the batch. The command fails only when the method
is unknown or every entry failed.

Examples:
  checkdigit calculate ean8 9638507
  checkdigit calculate isbn10 0-306-40615
  cat bodies.txt | checkdigit calculate luhn --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrNil()
			flags.applyConfig(cmd, cfg)

			method, inputs, err := resolveBatchArgs(args, cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}

			results, err := wire.NumberService().CalculateBatch(context.Background(), method, inputs)
			if err != nil {
				return fmt.Errorf("failed to calculate check digits: %w", err)
			}

			if flags.jsonOut {
				type calcItem struct {
					Input  string `json:"input"`
					Number string `json:"number,omitempty"`
					Error  string `json:"error,omitempty"`
				}
				items := make([]calcItem, len(results))
				for i, r := range results {
					items[i] = calcItem{Input: r.Input, Number: r.Number}
					if r.Err != nil {
						items[i].Error = r.Err.Error()
					}
				}
				if err := printJSON(items); err != nil {
					return err
				}
			}

			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					if !flags.jsonOut {
						fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Input, r.Err)
					}
					continue
				}
				if !flags.jsonOut && !flags.quiet {
					fmt.Println(r.Number)
				}
			}

			if failed == len(results) {
				return fmt.Errorf("all %d inputs failed", len(results))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
