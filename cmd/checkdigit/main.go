package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/cli"
	"github.com/example/checkdigit/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "checkdigit",
		Short:   "checkdigit - compute and validate check digits",
		Version: version.String(),
		Long: `checkdigit is a CLI tool for working with check-digit schemes.
It completes number bodies with their check digit(s), validates complete
numbers, and lists the supported checksum methods (EAN, UPC, ISBN, Luhn).`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.CalculateCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.MethodsCmd())
	rootCmd.AddCommand(cli.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
