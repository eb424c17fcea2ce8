package shared

import (
	"dominicbreuker/coinflip/pkg/config"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

// NotifyInterrupts ignores SIGPIPE and then relays config.InterruptSignals
// like the default of config.GetInterruptsFunc.
func NotifyInterrupts() (<-chan os.Signal, func()) {
	if runtime.GOOS != "windows" {
		// SIGPIPE should generally be ignored to avoid process termination on broken pipes
		signal.Ignore(syscall.SIGPIPE)
	}

	return config.GetInterruptsFunc(nil)()
}
