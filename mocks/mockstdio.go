// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MockStdio provides mock implementations of stdin and stdout for testing.
// It uses pipes internally so the game under test blocks on input exactly
// like it would on a terminal. Every chunk written to stdout is timestamped.
type MockStdio struct {
	stdinReader  *io.PipeReader
	stdinWriter  *io.PipeWriter
	stdoutReader *io.PipeReader
	stdoutWriter *io.PipeWriter

	mu         sync.Mutex
	outputBuf  bytes.Buffer
	chunks     []outputChunk
	outputCond *sync.Cond // signals output updates
}

// outputChunk marks the end offset of one stdout write and when it arrived.
type outputChunk struct {
	end int
	at  time.Time
}

// NewMockStdio creates a new mock stdio with pipe-based streams.
func NewMockStdio() *MockStdio {
	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()

	m := &MockStdio{
		stdinReader:  stdinR,
		stdinWriter:  stdinW,
		stdoutReader: stdoutR,
		stdoutWriter: stdoutW,
	}
	m.outputCond = sync.NewCond(&m.mu)

	go m.collect()

	return m
}

func (m *MockStdio) collect() {
	buf := make([]byte, 4096)
	for {
		n, err := m.stdoutReader.Read(buf)
		if n > 0 {
			m.mu.Lock()
			m.outputBuf.Write(buf[:n])
			m.chunks = append(m.chunks, outputChunk{end: m.outputBuf.Len(), at: time.Now()})
			m.outputCond.Broadcast()
			m.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// WriteLine writes one line of user input to stdin.
func (m *MockStdio) WriteLine(line string) error {
	_, err := m.stdinWriter.Write([]byte(line + "\n"))
	return err
}

// CloseStdin signals end of input to the application.
func (m *MockStdio) CloseStdin() error {
	return m.stdinWriter.Close()
}

// ReadFromStdout returns everything the application has written to stdout so far.
func (m *MockStdio) ReadFromStdout() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outputBuf.String()
}

// GetStdin returns a reader for stdin (used by the dependency injection).
func (m *MockStdio) GetStdin() io.Reader {
	return m.stdinReader
}

// GetStdout returns a writer for stdout (used by the dependency injection).
func (m *MockStdio) GetStdout() io.Writer {
	return m.stdoutWriter
}

// WaitForOutput waits until stdout contains expected for the given number
// of times in total and returns when the write completing that occurrence
// arrived.
func (m *MockStdio) WaitForOutput(expected string, count int, timeout time.Duration) (time.Time, error) {
	deadline := time.Now().Add(timeout)

	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		out := m.outputBuf.String()
		if end, ok := nthEnd(out, expected, count); ok {
			return m.arrival(end), nil
		}

		if time.Now().After(deadline) {
			return time.Time{}, fmt.Errorf("timeout waiting for output %q (x%d), got: %q", expected, count, out)
		}

		// wake up periodically to check the deadline
		go func() {
			time.Sleep(50 * time.Millisecond)
			m.outputCond.Broadcast()
		}()
		m.outputCond.Wait()
	}
}

// nthEnd returns the end offset of the count-th occurrence of sub in s.
func nthEnd(s, sub string, count int) (int, bool) {
	offset := 0
	for i := 0; i < count; i++ {
		idx := strings.Index(s[offset:], sub)
		if idx < 0 {
			return 0, false
		}
		offset += idx + len(sub)
	}
	return offset, true
}

func (m *MockStdio) arrival(end int) time.Time {
	for _, c := range m.chunks {
		if c.end >= end {
			return c.at
		}
	}
	return time.Now()
}

// Close closes the mock stdio pipes.
func (m *MockStdio) Close() error {
	m.stdinWriter.Close()
	m.stdoutWriter.Close()
	return nil
}
