// Package console provides line-oriented access to the standard streams.
// Stdin is read on a helper goroutine through a cancelable reader, so a
// caller can wait on lines and other events at once and release the
// reader when it is done.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Console reads commands line by line and writes lines of output.
type Console struct {
	stdin            io.Reader
	cancellableStdin cancelreader.CancelReader

	stdout io.Writer

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}

	mu  sync.Mutex
	err error
}

// New creates a Console with cancelable stdin reading if supported by the platform.
func New(stdin io.Reader, stdout io.Writer) *Console {
	c := &Console{
		stdin:  stdin,
		stdout: stdout,
		lines:  make(chan string),
		done:   make(chan struct{}),
	}

	cancellableStdin, err := cancelreader.NewReader(stdin)
	if err != nil {
		return c
	}

	c.cancellableStdin = cancellableStdin
	return c
}

// Read reads from stdin, using the cancelable reader if available.
func (c *Console) Read(p []byte) (n int, err error) {
	if c.cancellableStdin != nil {
		return c.cancellableStdin.Read(p)
	}

	return c.stdin.Read(p)
}

// Write writes to stdout.
func (c *Console) Write(p []byte) (n int, err error) {
	return c.stdout.Write(p)
}

// Println writes one line to stdout. Write errors are ignored like those
// of fmt.Println.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c, a...)
}

// Lines returns the lines read from stdin, without their terminators.
// Lines end at "\n", "\r\n" or a lone "\r". Only the first MaxLineLength
// bytes of a longer line are delivered, the rest is dropped.
// The first call starts reading. The channel is closed on EOF, on a read
// error (see Err) or after Close.
func (c *Console) Lines() <-chan string {
	c.startOnce.Do(func() {
		go c.readLines()
	})
	return c.lines
}

func (c *Console) readLines() {
	defer close(c.lines)

	lr := &lineReader{r: bufio.NewReader(c)}
	for {
		line, err := lr.ReadLine()
		if err != nil {
			if err != io.EOF && !errors.Is(err, cancelreader.ErrCanceled) {
				c.mu.Lock()
				c.err = err
				c.mu.Unlock()
			}
			return
		}

		select {
		case c.lines <- line:
		case <-c.done:
			return
		}
	}
}

// Err returns the error that ended reading, or nil on EOF or cancellation.
// It is only meaningful once the Lines channel is closed.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close stops reading from stdin. Pending reads are canceled if the
// platform supports it.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.cancellableStdin != nil {
			c.cancellableStdin.Cancel()
		}
	})
	return nil
}

// IsInteractive reports whether r is a terminal.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
