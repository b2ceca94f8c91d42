package lesson

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"dominicbreuker/primer/pkg/log"
	"dominicbreuker/primer/pkg/text"
	"errors"
	"fmt"
)

// FirstWord reads a line and prints its first word.
//
// The word is held as a view into the input buffer. Clearing the buffer
// afterwards invalidates the view, which is reported in verbose mode.
func FirstWord(ctx context.Context, cfg *config.Shared) error {
	line, err := readInput(ctx, cfg, "Please enter a value")
	if err != nil {
		return err
	}

	buf := text.NewBuffer(line)
	word := buf.FirstWord()

	s, err := word.Text()
	if err != nil {
		return fmt.Errorf("reading first word: %w", err)
	}
	fmt.Fprintf(stdout(cfg), "the first word is: %s\n", s)

	buf.Clear()

	if _, err := word.Text(); errors.Is(err, text.ErrStaleView) {
		log.VerboseMsg(cfg.Verbose, "Buffer cleared, first word view is no longer valid\n")
	}

	return nil
}
