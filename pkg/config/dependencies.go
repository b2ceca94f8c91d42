package config

import (
	"dominicbreuker/primer/pkg/pipeio"
	"io"
	"os"

	"golang.org/x/term"
)

// Dependencies contains injectable dependencies for testing and customization.
// All fields are optional and will use default implementations if nil.
type Dependencies struct {
	Stdin      StdinFunc
	Stdout     StdoutFunc
	IsTerminal IsTerminalFunc
}

// StdinFunc is a function that returns a reader for stdin.
// It returns an io.Reader to allow for mock implementations.
type StdinFunc func() io.Reader

// StdoutFunc is a function that returns a writer for stdout.
// It returns an io.Writer to allow for mock implementations.
type StdoutFunc func() io.Writer

// IsTerminalFunc reports whether stdin is attached to a terminal.
type IsTerminalFunc func() bool

// GetStdinFunc returns the stdin function from dependencies, or a default implementation.
// If deps is nil or deps.Stdin is nil, returns a function that yields a cancelable os.Stdin.
func GetStdinFunc(deps *Dependencies) StdinFunc {
	if deps != nil && deps.Stdin != nil {
		return deps.Stdin
	}
	return func() io.Reader {
		return pipeio.NewStdio()
	}
}

// GetStdoutFunc returns the stdout function from dependencies, or a default implementation.
// If deps is nil or deps.Stdout is nil, returns a function that uses os.Stdout.
func GetStdoutFunc(deps *Dependencies) StdoutFunc {
	if deps != nil && deps.Stdout != nil {
		return deps.Stdout
	}
	return func() io.Writer {
		return os.Stdout
	}
}

// GetIsTerminalFunc returns the terminal check from dependencies, or a default implementation.
// If deps is nil or deps.IsTerminal is nil, returns a function that checks os.Stdin.
func GetIsTerminalFunc(deps *Dependencies) IsTerminalFunc {
	if deps != nil && deps.IsTerminal != nil {
		return deps.IsTerminal
	}
	return func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
}
