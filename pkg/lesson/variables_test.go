package lesson

import (
	"dominicbreuker/primer/pkg/config"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVariables(t *testing.T) {
	t.Parallel()

	got, err := run(t, Variables, "", config.PromptAlways)
	if err != nil {
		t.Fatalf("Variables() unexpected error: %v", err)
	}

	want := `TEST_CONSTANT_VALUE 50
x = 1
x = 2
x = 3
x = 2
spaces 3
SUM: 1298496
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Variables() output mismatch (-want +got):\n%s", diff)
	}
}

func TestWidenAndAdd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    int8
		b    int32
		want int32
	}{
		{a: 23, b: 1298473, want: 1298496},
		{a: -128, b: 0, want: -128},
		{a: 127, b: 1 << 20, want: 127 + 1<<20},
		{a: -1, b: 1, want: 0},
	}

	for _, tt := range tests {
		if got := WidenAndAdd(tt.a, tt.b); got != tt.want {
			t.Errorf("WidenAndAdd(%d, %d) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
