package shared

import (
	"dominicbreuker/primer/pkg/config"
	"testing"
)

func TestParsePromptMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		mode  config.PromptMode
		err   bool
	}{
		{input: "always", mode: config.PromptAlways},
		{input: "auto", mode: config.PromptAuto},
		{input: "never", mode: config.PromptNever},
		{input: "AUTO", mode: config.PromptAuto},
		{input: " never ", mode: config.PromptNever},

		// error cases
		{input: "", err: true},
		{input: "sometimes", err: true},
		{input: "alway", err: true},
	}

	for _, tt := range tests {
		mode, err := ParsePromptMode(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParsePromptMode(%q) expected err=%t but was %t", tt.input, tt.err, err != nil)
		}
		if err != nil || tt.err {
			continue
		}

		if mode != tt.mode {
			t.Errorf("ParsePromptMode(%q) = %s but want %s", tt.input, mode, tt.mode)
		}
	}
}
