//go:build windows

package shared

import "os"

func terminationSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}

func ignoreSignals() {}

func exitCode(os.Signal) int {
	return 1
}
