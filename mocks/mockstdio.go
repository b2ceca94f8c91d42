// Package mocks provides mock implementations for testing.
package mocks

import (
	"bytes"
	"dominicbreuker/primer/pkg/config"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// MockStdio provides mock implementations of stdin and stdout for testing.
// Stdin is a pipe so tests control when input arrives; stdout is collected
// in a buffer.
type MockStdio struct {
	stdinReader *io.PipeReader
	stdinWriter *io.PipeWriter
	outputBuf   *bytes.Buffer
	mu          sync.Mutex
	outputCond  *sync.Cond // signals output updates
}

// NewMockStdio creates a new mock stdio with a pipe-based stdin.
func NewMockStdio() *MockStdio {
	stdinR, stdinW := io.Pipe()

	m := &MockStdio{
		stdinReader: stdinR,
		stdinWriter: stdinW,
		outputBuf:   &bytes.Buffer{},
	}
	m.outputCond = sync.NewCond(&m.mu)

	return m
}

// WriteToStdin writes data to the mock stdin pipe.
// It blocks until the application reads the data.
func (m *MockStdio) WriteToStdin(data []byte) (int, error) {
	return m.stdinWriter.Write(data)
}

// CloseStdin signals EOF to the application.
func (m *MockStdio) CloseStdin() error {
	return m.stdinWriter.Close()
}

// ReadFromStdout returns everything the application wrote to stdout so far.
func (m *MockStdio) ReadFromStdout() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outputBuf.String()
}

// GetStdin returns a reader for stdin (used by the dependency injection).
func (m *MockStdio) GetStdin() io.Reader {
	return m.stdinReader
}

// GetStdout returns a writer for stdout (used by the dependency injection).
func (m *MockStdio) GetStdout() io.Writer {
	return stdoutWriter{m}
}

// Deps returns dependencies wired to this mock. isTerminal is what the
// terminal check reports.
func (m *MockStdio) Deps(isTerminal bool) *config.Dependencies {
	return &config.Dependencies{
		Stdin:      m.GetStdin,
		Stdout:     m.GetStdout,
		IsTerminal: func() bool { return isTerminal },
	}
}

// WaitForOutput waits for the expected string to appear in stdout within the given timeout.
// It returns nil if the string is found, or an error if the timeout expires.
// The timeout is specified in milliseconds.
func (m *MockStdio) WaitForOutput(expected string, timeoutMs int) error {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)

	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if strings.Contains(m.outputBuf.String(), expected) {
			return nil
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("timeout waiting for output %q, got: %q", expected, m.outputBuf.String())
		}

		// wake up periodically to re-check the deadline
		go func() {
			time.Sleep(50 * time.Millisecond)
			m.outputCond.Broadcast()
		}()
		m.outputCond.Wait()
	}
}

// Close closes the mock stdin pipe.
func (m *MockStdio) Close() error {
	m.stdinWriter.Close()
	return nil
}

type stdoutWriter struct {
	m *MockStdio
}

func (w stdoutWriter) Write(p []byte) (int, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()

	n, err := w.m.outputBuf.Write(p)
	w.m.outputCond.Broadcast()
	return n, err
}
