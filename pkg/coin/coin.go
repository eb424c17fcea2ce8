// Package coin provides a fair two-sided coin backed by a PCG generator.
package coin

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Outcome is the visible side of a flipped coin.
type Outcome int

const (
	// Heads is one side of the coin.
	Heads Outcome = iota
	// Tails is the other side of the coin.
	Tails
)

// String returns "Heads" or "Tails".
func (o Outcome) String() string {
	switch o {
	case Heads:
		return "Heads"
	case Tails:
		return "Tails"
	default:
		return "Unknown"
	}
}

// Flipper produces coin flips.
type Flipper interface {
	Flip() Outcome
}

// Coin flips a fair coin. Every flip consumes a single bit of generator
// output, so one call to the generator covers 64 flips.
// The zero value flips like NewWithSeed(0). A Coin is not safe for
// concurrent use.
type Coin struct {
	src  *rand.PCG
	val  uint64
	bits int
}

// New returns a Coin seeded from the system entropy source.
func New() *Coin {
	return NewWithSeed(randomSeed())
}

// NewWithSeed returns a Coin whose flips are fully determined by seed.
func NewWithSeed(seed uint64) *Coin {
	return &Coin{src: rand.NewPCG(seed, 0)}
}

// Flip returns Heads or Tails with equal probability. It never fails.
func (c *Coin) Flip() Outcome {
	if c.src == nil {
		c.src = rand.NewPCG(0, 0)
	}
	if c.bits == 0 {
		c.val = c.src.Uint64()
		c.bits = 64
	}
	c.bits--
	bit := c.val & 1
	c.val >>= 1

	if bit == 0 {
		return Heads
	}
	return Tails
}

// randomSeed reads a seed from crypto/rand, falling back to the clock so
// that constructing a Coin cannot fail.
func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
