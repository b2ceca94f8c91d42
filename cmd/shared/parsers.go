package shared

import (
	"dominicbreuker/primer/pkg/config"
	"fmt"
	"strings"
)

// ParsePromptMode parses a prompt mode name, ignoring case and surrounding whitespace.
func ParsePromptMode(s string) (config.PromptMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always":
		return config.PromptAlways, nil
	case "auto":
		return config.PromptAuto, nil
	case "never":
		return config.PromptNever, nil
	default:
		return 0, fmt.Errorf("parsing %q: prompt mode should be one of always|auto|never", s)
	}
}
