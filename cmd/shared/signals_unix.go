//go:build !windows

package shared

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}
}

// SIGPIPE would otherwise kill us when stdout is a closed pipe.
func ignoreSignals() {
	signal.Ignore(unix.SIGPIPE)
}

// exitCode maps s to the POSIX convention 128+signal.
func exitCode(s os.Signal) int {
	if ss, ok := s.(syscall.Signal); ok {
		return 128 + int(ss)
	}
	return 1
}
