// Package shared provides common CLI flag definitions and utility functions
// used across coinflip's command-line interface.
package shared

import (
	"dominicbreuker/coinflip/pkg/config"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

const categoryGame = "game"

// DelayFlag is the name of the flag to set the suspense delay of each flip.
const DelayFlag = "delay"

// SeedFlag is the name of the flag to fix the coin's random sequence.
const SeedFlag = "seed"

// VerboseFlag is the name of the flag to enable verbose diagnostics.
const VerboseFlag = "verbose"

// GetDescription returns the description text of the game command.
func GetDescription() string {
	return strings.Join([]string{
		"Press Enter to flip the coin, type 'exit' (any case) to quit.",
		"Defaults can also be set with COINFLIP_DELAY, COINFLIP_SEED and COINFLIP_VERBOSE.",
	}, "\n")
}

// GetGameFlags returns the CLI flags of the game command.
func GetGameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:     DelayFlag,
			Aliases:  []string{"d"},
			Usage:    fmt.Sprintf("Suspense delay before a flip is revealed, at most %s", config.MaxDelay),
			Category: categoryGame,
			Value:    time.Second,
			Required: false,
		},
		&cli.StringFlag{
			Name:     SeedFlag,
			Aliases:  []string{},
			Usage:    "Seed for a reproducible sequence of flips (decimal or 0x hex), leave empty for a random seed",
			Category: categoryGame,
			Value:    "",
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose diagnostics on stderr",
			Category: categoryGame,
			Value:    false,
			Required: false,
		},
	}
}
