package mocks

import (
	"os"
	"sync"
)

// MockInterrupts delivers fake signals to code that relays interrupts.
type MockInterrupts struct {
	ch chan os.Signal

	mu       sync.Mutex
	notified int
	stopped  int
}

// NewMockInterrupts creates a new mock interrupt source.
func NewMockInterrupts() *MockInterrupts {
	return &MockInterrupts{ch: make(chan os.Signal, 1)}
}

// Notify matches config.InterruptsFunc.
func (m *MockInterrupts) Notify() (<-chan os.Signal, func()) {
	m.mu.Lock()
	m.notified++
	m.mu.Unlock()

	return m.ch, func() {
		m.mu.Lock()
		m.stopped++
		m.mu.Unlock()
	}
}

// Send delivers sig. It blocks until the previous signal has been consumed.
func (m *MockInterrupts) Send(sig os.Signal) {
	m.ch <- sig
}

// Stopped reports whether every started relay has been stopped again.
func (m *MockInterrupts) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notified > 0 && m.notified == m.stopped
}
