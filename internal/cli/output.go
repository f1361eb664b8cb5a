package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/checkdigit/internal/config"
)

// batchFlags are the output flags shared by calculate and check.
type batchFlags struct {
	jsonOut bool
	quiet   bool
}

func (f *batchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.jsonOut, "json", false, "Emit structured JSON instead of text")
	cmd.Flags().BoolVar(&f.quiet, "quiet", false, "Suppress per-item output lines")
}

// applyConfig fills flags the user did not set from the loaded config.
func (f *batchFlags) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if !cmd.Flags().Changed("json") {
		f.jsonOut = cfg.JSON
	}
	if !cmd.Flags().Changed("quiet") {
		f.quiet = cfg.Quiet
	}
}

// loadConfigOrNil loads .checkdigit/config.json from the current
// directory. A missing or unreadable config is not an error - the tool
// works without one.
func loadConfigOrNil() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return nil
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return nil
	}
	return cfg
}

// resolveBatchArgs determines the method and the numbers for a batch
// command. args[0] is the method when arguments are given; with no
// arguments the configured default_method applies. Numbers come from
// the remaining arguments or, when absent, from in (one or more per
// line, whitespace separated).
func resolveBatchArgs(args []string, cfg *config.Config, in io.Reader) (string, []string, error) {
	var method string
	var inputs []string

	switch {
	case len(args) > 0:
		method = args[0]
		inputs = args[1:]
	case cfg != nil && cfg.DefaultMethod != "":
		method = cfg.DefaultMethod
	default:
		return "", nil, fmt.Errorf("no method given (pass one as the first argument, or set default_method via `checkdigit init`)")
	}

	if len(inputs) == 0 {
		stdinInputs, err := readNumbers(in)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read numbers from stdin: %w", err)
		}
		inputs = stdinInputs
	}

	if len(inputs) == 0 {
		return "", nil, fmt.Errorf("no numbers provided (pass them as arguments or pipe them on stdin)")
	}

	return method, inputs, nil
}

// readNumbers reads whitespace-separated numbers from in, skipping
// blank lines.
func readNumbers(in io.Reader) ([]string, error) {
	var numbers []string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		numbers = append(numbers, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return numbers, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
