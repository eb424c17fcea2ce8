// Package play provides the play command, which runs an interactive coin
// flipping game on the terminal.
package play

import (
	"context"
	"dominicbreuker/coinflip/cmd/shared"
	"dominicbreuker/coinflip/pkg/config"
	"dominicbreuker/coinflip/pkg/game"
	"dominicbreuker/coinflip/pkg/log"
	"fmt"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for playing the game.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "play",
		Usage:       "Flip a coin until you type 'exit'",
		Description: shared.GetDescription(),
		Action:      Action,
		Flags:       GetFlags(),
	}
}

// GetFlags returns the flags of the play command.
func GetFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetGameFlags()...)

	return flags
}

// Action runs one game with settings from the environment, overridden by flags.
func Action(ctx context.Context, cmd *cli.Command) error {
	cfg, err := getConfig(cmd)
	if err != nil {
		return err
	}

	deps := &config.Dependencies{
		Interrupts: shared.NotifyInterrupts,
	}

	return game.New(cfg, deps).Run(ctx)
}

func getConfig(cmd *cli.Command) (*config.Game, error) {
	cfg, err := config.LoadGame()
	if err != nil {
		return nil, fmt.Errorf("loading config: %s", err)
	}

	if cmd.IsSet(shared.DelayFlag) {
		cfg.Delay = cmd.Duration(shared.DelayFlag)
	}
	if cmd.IsSet(shared.VerboseFlag) {
		cfg.Verbose = cmd.Bool(shared.VerboseFlag)
	}

	var errors []error
	if cmd.IsSet(shared.SeedFlag) {
		if s := cmd.String(shared.SeedFlag); s != "" {
			seed, err := shared.ParseSeed(s)
			if err != nil {
				errors = append(errors, err)
			}
			cfg.Seed = seed
		}
	}

	errors = append(errors, config.Validate(cfg)...)
	if len(errors) > 0 {
		log.ErrorMsg("Argument validation errors:\n")
		for _, err := range errors {
			log.ErrorMsg(" - %s\n", err)
		}
		return nil, fmt.Errorf("exiting")
	}

	return cfg, nil
}
