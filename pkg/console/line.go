package console

import (
	"bufio"
	"io"
)

// MaxLineLength caps how much of a single line is kept. A longer line can
// never be a command, so its tail is read and thrown away.
const MaxLineLength = 4096

// lineReader splits input into lines of unbounded length.
type lineReader struct {
	r *bufio.Reader

	// skipLF is set when the previous line ended in '\r' and the next byte
	// was not buffered yet, so a following '\n' belongs to that terminator.
	skipLF bool
}

// ReadLine returns the next line without its terminator. A final line
// without terminator is returned before io.EOF.
func (lr *lineReader) ReadLine() (string, error) {
	var line []byte
	started := false

	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if err == io.EOF && started {
				return string(line), nil
			}
			return "", err
		}

		if lr.skipLF {
			lr.skipLF = false
			if b == '\n' {
				continue
			}
		}
		started = true

		switch b {
		case '\n':
			return string(line), nil
		case '\r':
			lr.endCR()
			return string(line), nil
		}

		if len(line) < MaxLineLength {
			line = append(line, b)
		}
	}
}

// endCR consumes the '\n' of a "\r\n" pair without blocking for input
// that has not arrived yet.
func (lr *lineReader) endCR() {
	if lr.r.Buffered() == 0 {
		lr.skipLF = true
		return
	}
	if next, err := lr.r.Peek(1); err == nil && next[0] == '\n' {
		lr.r.ReadByte()
	}
}
