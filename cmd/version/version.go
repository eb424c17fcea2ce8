// Package version provides the version command.
package version

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Version and Commit are set at build time via -ldflags "-X".
var (
	Version = "unknown"
	Commit  = ""
)

// String describes the running build, e.g. "1.2.0 (commit 3f2c1aa)".
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s)", Version, Commit)
}

// GetCommand returns the CLI command printing the build description.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the coinflip version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(output(cmd), String())
			return err
		},
	}
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
