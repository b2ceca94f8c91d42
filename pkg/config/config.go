// Package config holds the settings shared by all lessons and the
// dependencies they read from and write to.
package config

import (
	"fmt"
	"time"
)

// PromptMode controls whether a lesson prints its input prompt.
type PromptMode int

const (
	// PromptAlways prints the prompt unconditionally.
	PromptAlways PromptMode = iota + 1
	// PromptAuto prints the prompt only when stdin is a terminal.
	PromptAuto
	// PromptNever suppresses the prompt.
	PromptNever
)

func (m PromptMode) String() string {
	switch m {
	case PromptAlways:
		return "always"
	case PromptAuto:
		return "auto"
	case PromptNever:
		return "never"
	default:
		return ""
	}
}

// Shared contains the configuration common to every lesson.
type Shared struct {
	Verbose bool
	Timeout time.Duration // zero waits forever for input
	Prompt  PromptMode

	Deps *Dependencies
}

// Validate checks the configuration and returns all problems found.
func (c *Shared) Validate() []error {
	var errors []error

	if c.Timeout < 0 {
		errors = append(errors, fmt.Errorf("'--timeout' must not be negative, got %s", c.Timeout))
	}

	if c.Prompt.String() == "" {
		errors = append(errors, fmt.Errorf("'--prompt' has unknown mode %d", c.Prompt))
	}

	return errors
}

// ShowPrompt reports whether the prompt should be printed under the configured mode.
func (c *Shared) ShowPrompt() bool {
	switch c.Prompt {
	case PromptAlways:
		return true
	case PromptAuto:
		return GetIsTerminalFunc(c.Deps)()
	default:
		return false
	}
}
