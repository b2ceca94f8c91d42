package config

import (
	"testing"
	"time"
)

func TestPromptMode_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode PromptMode
		want string
	}{
		{"Always", PromptAlways, "always"},
		{"Auto", PromptAuto, "auto"},
		{"Never", PromptNever, "never"},
		{"Zero", PromptMode(0), ""},
		{"Invalid", PromptMode(999), ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.mode.String(); got != tc.want {
				t.Errorf("PromptMode.String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestShared_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      *Shared
		wantErrs int
	}{
		{
			name:     "valid config",
			cfg:      &Shared{Prompt: PromptAlways},
			wantErrs: 0,
		},
		{
			name:     "valid config with timeout",
			cfg:      &Shared{Prompt: PromptAuto, Timeout: 5 * time.Second, Verbose: true},
			wantErrs: 0,
		},
		{
			name:     "negative timeout",
			cfg:      &Shared{Prompt: PromptNever, Timeout: -1},
			wantErrs: 1,
		},
		{
			name:     "missing prompt mode",
			cfg:      &Shared{},
			wantErrs: 1,
		},
		{
			name:     "everything wrong",
			cfg:      &Shared{Prompt: PromptMode(42), Timeout: -time.Second},
			wantErrs: 2,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if errs := Validate(tc.cfg); len(errs) != tc.wantErrs {
				t.Errorf("Validate() returned %d errors (%v), want %d", len(errs), errs, tc.wantErrs)
			}
		})
	}
}

func TestShared_ShowPrompt(t *testing.T) {
	t.Parallel()

	terminal := &Dependencies{IsTerminal: func() bool { return true }}
	pipe := &Dependencies{IsTerminal: func() bool { return false }}

	tests := []struct {
		name string
		cfg  *Shared
		want bool
	}{
		{"always on pipe", &Shared{Prompt: PromptAlways, Deps: pipe}, true},
		{"auto on terminal", &Shared{Prompt: PromptAuto, Deps: terminal}, true},
		{"auto on pipe", &Shared{Prompt: PromptAuto, Deps: pipe}, false},
		{"never on terminal", &Shared{Prompt: PromptNever, Deps: terminal}, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cfg.ShowPrompt(); got != tc.want {
				t.Errorf("ShowPrompt() = %t, want %t", got, tc.want)
			}
		})
	}
}
