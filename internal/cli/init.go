package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var defaultMethod string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .checkdigit/config.json",
		Long: `Write .checkdigit/config.json in the current directory.

The config supplies defaults for the batch commands: default_method is
used when no method argument is given, and json/quiet preset the
corresponding flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			path := filepath.Join(cwd, ".checkdigit", "config.json")
			if _, err := os.Stat(path); err == nil {
				fmt.Printf("Config already exists at %s\n", path)
				return nil
			}

			cfg := config.DefaultConfig()
			cfg.DefaultMethod = defaultMethod
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Printf("✓ Config created at %s\n", path)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  checkdigit methods")
			fmt.Println("  checkdigit calculate ean8 9638507")

			return nil
		},
	}

	cmd.Flags().StringVar(&defaultMethod, "default-method", "", "Method to use when none is given")
	return cmd
}
