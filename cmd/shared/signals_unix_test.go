//go:build !windows

package shared

import (
	"os"
	"syscall"
	"testing"
	"time"
)

func TestNotifyInterrupts(t *testing.T) {
	ch, stop := NotifyInterrupts()
	defer stop()

	if err := syscall.Kill(os.Getpid(), syscall.SIGHUP); err != nil {
		t.Fatalf("Kill() error = %v", err)
	}

	select {
	case got := <-ch:
		if got != syscall.SIGHUP {
			t.Errorf("relayed signal = %v, want %v", got, syscall.SIGHUP)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("signal was not relayed")
	}
}
