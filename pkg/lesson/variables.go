package lesson

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"fmt"
)

// TestConstantValue is evaluated at compile time and never changes.
const TestConstantValue uint8 = 50

// Variables prints constants, shadowed bindings and a widening addition.
func Variables(_ context.Context, cfg *config.Shared) error {
	out := stdout(cfg)

	fmt.Fprintf(out, "TEST_CONSTANT_VALUE %d\n", TestConstantValue)

	x := 1
	fmt.Fprintf(out, "x = %d\n", x)
	{
		x := 2 // shadows the outer x for the rest of this block
		fmt.Fprintf(out, "x = %d\n", x)
		{
			x := x + 1 // initialized from the enclosing x
			fmt.Fprintf(out, "x = %d\n", x)
		}
		fmt.Fprintf(out, "x = %d\n", x)
	}

	spaces := "   "
	{
		spaces := len(spaces) // same name, now an int
		fmt.Fprintf(out, "spaces %d\n", spaces)
	}

	fmt.Fprintf(out, "SUM: %d\n", WidenAndAdd(23, 1298473))

	return nil
}

// WidenAndAdd converts a to int32 before adding it to b.
func WidenAndAdd(a int8, b int32) int32 {
	return int32(a) + b
}
