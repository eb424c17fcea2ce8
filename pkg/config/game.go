package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// MaxDelay bounds the suspense delay so a typo cannot hang a session.
const MaxDelay = time.Minute

// Game holds the settings of one game session.
type Game struct {
	// Delay is the suspense pause between announcing a flip and revealing it.
	Delay time.Duration `env:"COINFLIP_DELAY" envDefault:"1s"`
	// Seed fixes the coin's random sequence. Zero means a random seed.
	Seed    uint64 `env:"COINFLIP_SEED"`
	Verbose bool   `env:"COINFLIP_VERBOSE"`
}

// LoadGame returns the game settings with defaults taken from the environment.
func LoadGame() (*Game, error) {
	var cfg Game
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate checks the game settings.
func (c *Game) Validate() []error {
	var errors []error

	if c.Delay < 0 || c.Delay > MaxDelay {
		errors = append(errors, fmt.Errorf("'--delay' must be in [0s, %s]", MaxDelay))
	}

	return errors
}
