package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/wire"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "check [method] [number...]",
		Short: "Validate check digits",
		Long: `Validate the check digit(s) of each given number.

Numbers are read from the arguments, or from stdin when no numbers are
given. Separators are stripped before validation. An invalid number is
a normal verdict, not an error; the exit status is non-zero only when
every number in the batch is invalid.

Examples:
  checkdigit check ean8 96385074
  checkdigit check isbn10 0-439-42089-X
  cat numbers.txt | checkdigit check luhn --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrNil()
			flags.applyConfig(cmd, cfg)

			method, inputs, err := resolveBatchArgs(args, cfg, cmd.InOrStdin())
			if err != nil {
				return err
			}

			report, err := wire.NumberService().CheckBatch(context.Background(), method, inputs)
			if err != nil {
				return fmt.Errorf("failed to check numbers: %w", err)
			}

			if flags.jsonOut {
				type checkItem struct {
					Input      string `json:"input"`
					Normalized string `json:"normalized,omitempty"`
					Valid      bool   `json:"valid"`
				}
				type checkSummary struct {
					Total    int  `json:"total"`
					Valid    int  `json:"valid"`
					Invalid  int  `json:"invalid"`
					AllValid bool `json:"all_valid"`
				}
				out := struct {
					Results []checkItem  `json:"results"`
					Summary checkSummary `json:"summary"`
				}{
					Results: make([]checkItem, len(report.Results)),
					Summary: checkSummary(report.Summary),
				}
				for i, r := range report.Results {
					out.Results[i] = checkItem{Input: r.Input, Normalized: r.Normalized, Valid: r.Valid}
				}
				if err := printJSON(out); err != nil {
					return err
				}
			} else {
				validMark := color.New(color.FgHiGreen).Sprint("✓")
				invalidMark := color.New(color.FgRed).Sprint("✗")

				if !flags.quiet {
					for _, r := range report.Results {
						if r.Valid {
							fmt.Printf("%s %s valid\n", validMark, r.Input)
						} else {
							fmt.Printf("%s %s invalid\n", invalidMark, r.Input)
						}
					}
				}

				sum := report.Summary
				fmt.Printf("checked %d: %d valid, %d invalid\n", sum.Total, sum.Valid, sum.Invalid)
			}

			// Exit status contract: the batch fails only when no input
			// validated, even though individual results may be invalid.
			if report.Summary.Valid == 0 {
				return fmt.Errorf("all %d inputs invalid", report.Summary.Total)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
