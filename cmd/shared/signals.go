package shared

import (
	"context"
	"os"
	"os/signal"
	"time"
)

// SetupSignalHandling cancels the context on the first termination signal.
// A second signal exits immediately; otherwise the process exits after a grace period.
func SetupSignalHandling(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 2)

	ignoreSignals()
	signal.Notify(sigCh, terminationSignals()...)

	go func() {
		// first signal: request graceful shutdown
		s := <-sigCh
		cancel()

		select {
		case <-sigCh:
			os.Exit(exitCode(s))
		case <-time.After(5 * time.Second):
			os.Exit(exitCode(s))
		}
	}()
}
