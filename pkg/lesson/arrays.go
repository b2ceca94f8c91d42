package lesson

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber is returned when the entered index does not parse.
	ErrNotANumber = errors.New("index entered was not a number")
	// ErrIndexOutOfBounds is returned when the entered index is past the array end.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)

// Numbers is the array indexed by the arrays lesson.
var Numbers = [5]int32{1, 2, 3, 4, 5}

// Arrays reads an index and prints the array element stored there.
func Arrays(ctx context.Context, cfg *config.Shared) error {
	line, err := readInput(ctx, cfg, "Please enter an array index.")
	if err != nil {
		return err
	}

	index, err := ParseIndex(line)
	if err != nil {
		return err
	}

	element, err := ElementAt(Numbers, index)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout(cfg), "The value of the element at index %d is: %d\n", index, element)
	return nil
}

// ParseIndex parses s, ignoring surrounding whitespace, as a non-negative index.
func ParseIndex(s string) (uint64, error) {
	index, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrNotANumber
	}

	return index, nil
}

// ElementAt returns a[index], or ErrIndexOutOfBounds when index is too large.
func ElementAt(a [5]int32, index uint64) (int32, error) {
	if index >= uint64(len(a)) {
		return 0, fmt.Errorf("%w: the len is %d but the index is %d", ErrIndexOutOfBounds, len(a), index)
	}

	return a[index], nil
}
