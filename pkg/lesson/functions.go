package lesson

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"fmt"
	"io"
)

// Functions calls a few small functions with parameters and return values.
func Functions(_ context.Context, cfg *config.Shared) error {
	out := stdout(cfg)

	fmt.Fprintln(out, "Hello, world!")
	anotherFunction(out)
	printValue(out, 5)
	printLabeledMeasurement(out, 5, 'h')

	y := Five()
	fmt.Fprintf(out, "The value of y is: %d\n", y)

	x := PlusOne(5)
	fmt.Fprintf(out, "The value of x is: %d\n", x)

	return nil
}

func anotherFunction(out io.Writer) {
	fmt.Fprintln(out, "Another function.")
}

func printValue(out io.Writer, x int32) {
	fmt.Fprintf(out, "The value of x is: %d\n", x)
}

func printLabeledMeasurement(out io.Writer, value int32, unitLabel rune) {
	fmt.Fprintf(out, "The measurement is: %d%c\n", value, unitLabel)
}

// Five returns 5 as the value of its final expression.
func Five() int32 {
	return 5
}

// PlusOne returns x + 1.
func PlusOne(x int32) int32 {
	return x + 1
}
