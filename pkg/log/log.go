// Package log provides colored diagnostic output for the game. Diagnostics
// always go to a separate stream from the game's own stdout dialogue.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// Logger writes colored diagnostics to a single writer.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New returns a Logger writing to out. VerboseMsg output is only produced
// when verbose is set.
func New(out io.Writer, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, verbose: verbose}
}

// ErrorMsg prints an error message in red color.
func (l *Logger) ErrorMsg(format string, a ...interface{}) {
	red(l.out, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message in blue color.
func (l *Logger) InfoMsg(format string, a ...interface{}) {
	blue(l.out, "[+] "+format, a...)
}

// VerboseMsg prints a debugging message in yellow color if the logger is verbose.
func (l *Logger) VerboseMsg(format string, a ...interface{}) {
	if !l.verbose {
		return
	}
	yellow(l.out, "[*] "+format, a...)
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	New(os.Stderr, false).ErrorMsg(format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	New(os.Stderr, false).InfoMsg(format, a...)
}
