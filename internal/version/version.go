// Package version exposes build metadata stamped in via -ldflags.
package version

import "fmt"

var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the line shown by --version.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("checkdigit dev (commit %s, built %s)", commit, BuildTime)
}
