package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/ports/primary"
	"github.com/example/checkdigit/internal/wire"
)

// MethodsCmd returns the methods command
func MethodsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"list"},
		Short:   "List supported checksum methods",
		Long:    `List all supported checksum methods with their expected digit counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			methods := wire.MethodService().ListMethods(context.Background())

			if jsonOut {
				type methodItem struct {
					ID         string `json:"id"`
					Summary    string `json:"summary"`
					MinBodyLen int    `json:"min_body_len"`
					MaxBodyLen int    `json:"max_body_len,omitempty"`
					CheckLen   int    `json:"check_len"`
				}
				items := make([]methodItem, len(methods))
				for i, m := range methods {
					items[i] = methodItem(m)
				}
				return printJSON(items)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "METHOD\tBODY\tCHECK\tSUMMARY")
			fmt.Fprintln(w, "------\t----\t-----\t-------")

			for _, m := range methods {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
					m.ID,
					formatBodyLen(m),
					m.CheckLen,
					m.Summary,
				)
			}

			w.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit structured JSON instead of text")
	return cmd
}

// formatBodyLen renders a method's expected body digit count.
func formatBodyLen(m primary.MethodInfo) string {
	if m.MaxBodyLen == 0 {
		return fmt.Sprintf("%d+", m.MinBodyLen)
	}
	if m.MinBodyLen == m.MaxBodyLen {
		return fmt.Sprintf("%d", m.MinBodyLen)
	}
	return fmt.Sprintf("%d-%d", m.MinBodyLen, m.MaxBodyLen)
}
