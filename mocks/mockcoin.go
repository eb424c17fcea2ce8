package mocks

import (
	"dominicbreuker/coinflip/pkg/coin"
	"sync"
)

// MockCoin returns a fixed sequence of outcomes, repeating it when exhausted.
type MockCoin struct {
	mu       sync.Mutex
	outcomes []coin.Outcome
	flips    int
}

// NewMockCoin creates a coin that lands on the given outcomes in order.
func NewMockCoin(outcomes ...coin.Outcome) *MockCoin {
	if len(outcomes) == 0 {
		outcomes = []coin.Outcome{coin.Heads}
	}
	return &MockCoin{outcomes: outcomes}
}

// Flip returns the next outcome of the sequence.
func (m *MockCoin) Flip() coin.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	o := m.outcomes[m.flips%len(m.outcomes)]
	m.flips++
	return o
}

// Flips returns how often Flip was called.
func (m *MockCoin) Flips() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flips
}
