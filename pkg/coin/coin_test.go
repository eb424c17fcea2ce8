package coin

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSize = 10000

// tolerance is about six standard deviations of the heads ratio for
// sampleSize fair flips.
var tolerance = 6 * math.Sqrt(0.25/sampleSize)

func TestOutcome_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    string
	}{
		{Heads, "Heads"},
		{Tails, "Tails"},
		{Outcome(7), "Unknown"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.outcome.String())
		})
	}
}

func TestFlip_Frequency(t *testing.T) {
	t.Parallel()

	seeds := []uint64{0, 1, 42, 0xdeadbeef, math.MaxUint64}
	for _, seed := range seeds {
		seed := seed
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()

			c := NewWithSeed(seed)
			heads, tails := 0, 0
			for i := 0; i < sampleSize; i++ {
				switch c.Flip() {
				case Heads:
					heads++
				case Tails:
					tails++
				default:
					t.Fatalf("Flip() returned an outcome outside {Heads, Tails}")
				}
			}

			require.Equal(t, sampleSize, heads+tails)
			assert.InDelta(t, 0.5, float64(heads)/sampleSize, tolerance, "seed %d: heads ratio", seed)
			assert.InDelta(t, 0.5, float64(tails)/sampleSize, tolerance, "seed %d: tails ratio", seed)
		})
	}
}

func TestFlip_NoSerialCorrelation(t *testing.T) {
	t.Parallel()

	c := NewWithSeed(1234)
	prev := c.Flip()
	changes := 0
	for i := 1; i < sampleSize; i++ {
		cur := c.Flip()
		if cur != prev {
			changes++
		}
		prev = cur
	}

	// independent fair flips change side half of the time
	assert.InDelta(t, 0.5, float64(changes)/(sampleSize-1), tolerance)
}

func TestNew_Frequency(t *testing.T) {
	t.Parallel()

	c := New()
	heads := 0
	for i := 0; i < sampleSize; i++ {
		if c.Flip() == Heads {
			heads++
		}
	}

	assert.InDelta(t, 0.5, float64(heads)/sampleSize, tolerance)
}

func TestNewWithSeed_Deterministic(t *testing.T) {
	t.Parallel()

	c1 := NewWithSeed(99)
	c2 := NewWithSeed(99)
	for i := 0; i < 1000; i++ {
		require.Equal(t, c1.Flip(), c2.Flip(), "flip %d", i)
	}
}

func TestNewWithSeed_DifferentSeeds(t *testing.T) {
	t.Parallel()

	c1 := NewWithSeed(1)
	c2 := NewWithSeed(2)
	same := 0
	for i := 0; i < 256; i++ {
		if c1.Flip() == c2.Flip() {
			same++
		}
	}

	assert.Less(t, same, 256, "different seeds produced identical sequences")
}

func TestFlip_BitsOfGenerator(t *testing.T) {
	t.Parallel()

	src := rand.NewPCG(99, 0)
	c := NewWithSeed(99)

	for word := 0; word < 3; word++ {
		v := src.Uint64()
		for i := 0; i < 64; i++ {
			want := Heads
			if v>>i&1 == 1 {
				want = Tails
			}
			require.Equal(t, want, c.Flip(), "word %d bit %d", word, i)
		}
	}
}

func TestCoin_ZeroValue(t *testing.T) {
	t.Parallel()

	var zero Coin
	seeded := NewWithSeed(0)
	for i := 0; i < 100; i++ {
		require.Equal(t, seeded.Flip(), zero.Flip(), "flip %d", i)
	}
}

func TestCoin_ImplementsFlipper(t *testing.T) {
	t.Parallel()

	var f Flipper = New()
	assert.Contains(t, []Outcome{Heads, Tails}, f.Flip())
}

func TestRandomSeed(t *testing.T) {
	t.Parallel()

	// two 64 bit draws from crypto/rand colliding means the source is broken
	assert.NotEqual(t, randomSeed(), randomSeed())
}

func BenchmarkFlip(b *testing.B) {
	c := NewWithSeed(1)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c.Flip()
	}
}
