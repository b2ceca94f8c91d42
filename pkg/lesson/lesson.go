// Package lesson contains the runnable lessons. Each lesson writes to the
// configured stdout and, where it needs input, reads a single line from the
// configured stdin.
package lesson

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"dominicbreuker/primer/pkg/log"
	"dominicbreuker/primer/pkg/pipeio"
	"errors"
	"fmt"
	"io"
)

// Func is the signature shared by all lessons.
type Func func(ctx context.Context, cfg *config.Shared) error

func stdout(cfg *config.Shared) io.Writer {
	return config.GetStdoutFunc(cfg.Deps)()
}

// readInput prints prompt if the prompt mode allows it and reads one line,
// giving up after cfg.Timeout when set. Stdin is closed before returning.
func readInput(ctx context.Context, cfg *config.Shared, prompt string) (string, error) {
	if cfg.ShowPrompt() {
		fmt.Fprintln(stdout(cfg), prompt)
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		log.VerboseMsg(cfg.Verbose, "Waiting up to %s for input\n", cfg.Timeout)
	}

	stdin := config.GetStdinFunc(cfg.Deps)()
	if c, ok := stdin.(io.Closer); ok {
		defer c.Close()
	}

	line, err := pipeio.ReadLine(ctx, stdin)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.InfoMsg("No input within %s\n", cfg.Timeout)
		}
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	log.VerboseMsg(cfg.Verbose, "Read %d bytes of input\n", len(line))
	return line, nil
}
