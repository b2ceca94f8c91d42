package pipeio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by ReadLine when the line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ReadLine reads a single line from r and returns it without the line terminator.
//
// Reaching EOF is not an error: whatever was read up to that point is returned,
// possibly the empty string. If ctx is done before the line arrives, r is closed
// when it implements io.Closer, and ctx.Err() is returned.
func ReadLine(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}

	// buffered so the reader goroutine never blocks on send after we gave up
	resCh := make(chan result, 1)
	go func() {
		line, err := bufio.NewReader(r).ReadString('\n')
		resCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return "", ctx.Err()

	case res := <-resCh:
		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return "", fmt.Errorf("reading line: %w", res.err)
		}

		if !utf8.ValidString(res.line) {
			return "", ErrInvalidUTF8
		}

		line := res.line
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(line[:len(line)-1], "\r")
		}
		return line, nil
	}
}
