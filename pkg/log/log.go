// Package log provides colored console logging to stderr.
package log

import (
	"io"
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var yellow = color.New(color.FgYellow).FprintfFunc()

// Output is where all messages go. Tests may replace it.
var Output io.Writer = os.Stderr

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(Output, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(Output, "[+] "+format, a...)
}

// VerboseMsg prints a debug message in yellow, but only if verbose is set.
func VerboseMsg(verbose bool, format string, a ...interface{}) {
	if !verbose {
		return
	}
	yellow(Output, "[*] "+format, a...)
}
