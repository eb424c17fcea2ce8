package config

import (
	"dominicbreuker/coinflip/pkg/coin"
	"io"
	"os"
	"os/signal"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Stdin      StdinFunc
	Stdout     StdoutFunc
	Stderr     StderrFunc
	Interrupts InterruptsFunc
	Coin       CoinFunc
}

// StdinFunc is a function that returns a reader for stdin.
// It returns an io.Reader to allow for mock implementations.
type StdinFunc func() io.Reader

// StdoutFunc is a function that returns a writer for stdout.
// It returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// StderrFunc is a function that returns a writer for diagnostics.
type StderrFunc func() io.Writer

// InterruptsFunc starts relaying external interrupts. It returns the
// channel interrupts arrive on and a function that stops the relay.
type InterruptsFunc func() (<-chan os.Signal, func())

// CoinFunc creates the coin for a session. A zero seed asks for a random one.
type CoinFunc func(seed uint64) coin.Flipper

// GetStdinFunc returns the stdin function from dependencies, or a default implementation.
// If deps is nil or deps.Stdin is nil, returns a function that uses os.Stdin.
func GetStdinFunc(deps *Dependencies) StdinFunc {
	if deps != nil && deps.Stdin != nil {
		return deps.Stdin
	}
	return func() io.Reader {
		return os.Stdin
	}
}

// GetStdoutFunc returns the stdout function from dependencies, or a default implementation.
// If deps is nil or deps.Stdout is nil, returns a function that uses os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetStderrFunc returns the stderr function from dependencies, or a default implementation.
// If deps is nil or deps.Stderr is nil, returns a function that uses os.Stderr.
func GetStderrFunc(deps *Dependencies) StderrFunc {
	if deps != nil && deps.Stderr != nil {
		return deps.Stderr
	}
	return func() io.Writer {
		return os.Stderr
	}
}

// GetInterruptsFunc returns the interrupts function from dependencies, or a default implementation.
// If deps is nil or deps.Interrupts is nil, returns a function relaying InterruptSignals.
func GetInterruptsFunc(deps *Dependencies) InterruptsFunc {
	if deps != nil && deps.Interrupts != nil {
		return deps.Interrupts
	}
	return func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 2)
		signal.Notify(ch, InterruptSignals()...)
		return ch, func() { signal.Stop(ch) }
	}
}

// GetCoinFunc returns the coin function from dependencies, or a default implementation.
// If deps is nil or deps.Coin is nil, returns a function creating a coin.Coin.
func GetCoinFunc(deps *Dependencies) CoinFunc {
	if deps != nil && deps.Coin != nil {
		return deps.Coin
	}
	return func(seed uint64) coin.Flipper {
		if seed == 0 {
			return coin.New()
		}
		return coin.NewWithSeed(seed)
	}
}
