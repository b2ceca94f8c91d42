package text

import (
	"strings"
	"testing"
	"testing/quick"
	"unsafe"
)

func TestFirstWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "hello world", want: "hello"},
		{input: "rust", want: "rust"},
		{input: "", want: ""},
		{input: " leading", want: ""},
		{input: "trailing ", want: "trailing"},
		{input: "a b c", want: "a"},
		{input: "two  spaces", want: "two"},
		{input: "tab\tseparated words", want: "tab\tseparated"},
		{input: "new\nline here", want: "new\nline"},
		{input: "héllo wörld", want: "héllo"},
		{input: " ", want: ""},
	}

	for _, tt := range tests {
		if got := FirstWord(tt.input); got != tt.want {
			t.Errorf("FirstWord(%q) = %q; want %q", tt.input, got, tt.want)
		}
		if got := string(FirstWordBytes([]byte(tt.input))); got != tt.want {
			t.Errorf("FirstWordBytes(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestFirstWord_Properties(t *testing.T) {
	t.Parallel()

	prop := func(s string) bool {
		got := FirstWord(s)

		i := strings.IndexByte(s, ' ')
		if i < 0 {
			return got == s
		}
		return got == s[:i] && !strings.Contains(got, " ")
	}

	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestFirstWord_JoinedWords(t *testing.T) {
	t.Parallel()

	// words may themselves contain spaces; the first one in the joined text wins
	prop := func(first string, rest []string) bool {
		s := strings.Join(append([]string{first}, rest...), " ")
		got := FirstWord(s)

		i := strings.IndexByte(s, ' ')
		if i < 0 {
			return len(rest) == 0 && got == s
		}
		if !strings.Contains(first, " ") && got != first {
			return false
		}
		return got == s[:i] && !strings.Contains(got, " ") && len(got) < len(s)
	}

	if err := quick.Check(prop, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestFirstWord_SharesMemory(t *testing.T) {
	t.Parallel()

	s := "hello world"
	got := FirstWord(s)

	if unsafe.StringData(got) != unsafe.StringData(s) {
		t.Error("FirstWord should return a substring of its input, not a copy")
	}

	b := []byte("hello world")
	gotBytes := FirstWordBytes(b)
	gotBytes[0] = 'j'
	if b[0] != 'j' {
		t.Error("FirstWordBytes should alias its input")
	}
}
