package config

import (
	"os"
	"runtime"
	"syscall"
)

// InterruptSignals returns the signals that interrupt a flip or end an
// idle game on this platform.
func InterruptSignals() []os.Signal {
	// always handle Interrupt (portable)
	sigs := []os.Signal{os.Interrupt}

	// add Unix-only signals
	if runtime.GOOS != "windows" {
		sigs = append(sigs, syscall.SIGTERM, syscall.SIGHUP)
	}

	return sigs
}
