package main

import (
	"context"
	"dominicbreuker/coinflip/cmd/play"
	"dominicbreuker/coinflip/cmd/shared"
	"dominicbreuker/coinflip/cmd/version"
	"dominicbreuker/coinflip/pkg/log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}

// newCommand plays the game when no subcommand is given.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "coinflip",
		Usage:       "interactive coin flipping game",
		Description: shared.GetDescription(),
		Action:      play.Action,
		Flags:       play.GetFlags(),
		Commands: []*cli.Command{
			play.GetCommand(),
			version.GetCommand(),
		},
	}
}
