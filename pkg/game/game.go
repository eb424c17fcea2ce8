// Package game implements the interactive coin flipping loop.
//
// The loop prints a greeting and then reads one command per line:
// an empty line flips the coin, "exit" in any letter case ends the game,
// and anything else is ignored without a reply. Between announcing a flip
// and revealing it the game pauses for a configurable suspense delay.
package game

import (
	"context"
	"dominicbreuker/coinflip/pkg/coin"
	"dominicbreuker/coinflip/pkg/config"
	"dominicbreuker/coinflip/pkg/console"
	"dominicbreuker/coinflip/pkg/log"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	titleMsg    = "Coin Flipping Game"
	welcomeMsg  = "Press Enter to flip the coin. Type 'exit' to quit."
	flippingMsg = "Flipping the coin..."
	resultMsg   = "The coin shows:"
	againMsg    = "Press Enter to flip again or type 'exit' to quit."
	farewellMsg = "Game over!"

	exitCommand = "exit"
)

type state int

const (
	running state = iota
	stopped
)

// Game plays coin flipping sessions on the configured streams.
type Game struct {
	cfg *config.Game

	stdin  io.Reader
	stdout io.Writer

	notify  config.InterruptsFunc
	newCoin config.CoinFunc
	logger  *log.Logger
}

// New creates a Game. Dependencies that are not set in deps fall back to
// the process's standard streams, config.InterruptSignals and a randomly
// seeded coin.
func New(cfg *config.Game, deps *config.Dependencies) *Game {
	return &Game{
		cfg:     cfg,
		stdin:   config.GetStdinFunc(deps)(),
		stdout:  config.GetStdoutFunc(deps)(),
		notify:  config.GetInterruptsFunc(deps),
		newCoin: config.GetCoinFunc(deps),
		logger:  log.New(config.GetStderrFunc(deps)(), cfg.Verbose),
	}
}

// session is the state of a single Run.
type session struct {
	*Game

	con        *console.Console
	coin       coin.Flipper
	interrupts <-chan os.Signal
	state      state
}

// Run plays one session until the player types "exit". It also returns,
// without the farewell, when stdin is exhausted, when an interrupt arrives
// while waiting for input, or when ctx is done.
func (g *Game) Run(ctx context.Context) error {
	interrupts, stop := g.notify()
	defer stop()

	s := &session{
		Game:       g,
		con:        console.New(g.stdin, g.stdout),
		coin:       g.newCoin(g.cfg.Seed),
		interrupts: interrupts,
		state:      running,
	}
	defer s.con.Close()

	if console.IsInteractive(g.stdin) {
		g.logger.VerboseMsg("Reading commands from a terminal\n")
	} else {
		g.logger.VerboseMsg("Reading commands from non-interactive input\n")
	}
	g.logger.VerboseMsg("Suspense delay is %s\n", g.cfg.Delay)
	if g.cfg.Seed != 0 {
		g.logger.VerboseMsg("Using seed %d\n", g.cfg.Seed)
	}

	return s.loop(ctx)
}

func (s *session) loop(ctx context.Context) error {
	s.con.Println(titleMsg)
	s.con.Println(welcomeMsg)

	lines := s.con.Lines()
	for s.state == running {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case sig := <-s.interrupts:
			s.logger.InfoMsg("Received %s, leaving the game\n", sig)
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := s.con.Err(); err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				s.logger.VerboseMsg("Input closed, leaving the game\n")
				return nil
			}
			s.handle(line)
		}
	}

	return nil
}

// handle executes a single command line.
func (s *session) handle(line string) {
	switch {
	case strings.EqualFold(line, exitCommand):
		s.con.Println(farewellMsg)
		s.state = stopped
	case line == "":
		s.flip()
	default:
		s.logger.VerboseMsg("Ignoring input %q\n", line)
	}
}

// flip draws the outcome first and only then plays the announcement, so
// the delay is pure presentation.
func (s *session) flip() {
	outcome := s.coin.Flip()
	s.con.Println(flippingMsg)
	s.suspense()
	s.con.Println(resultMsg, outcome)
	s.con.Println(againMsg)
}

// suspense blocks for the configured delay. Input is not consulted, so
// lines typed meanwhile are handled afterwards. An interrupt cuts the
// delay short; it is reported and the flip goes on.
func (s *session) suspense() {
	if s.cfg.Delay <= 0 {
		return
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case sig := <-s.interrupts:
		s.logger.ErrorMsg("flip delay interrupted: %s\n", sig)
	}
}
