// Package shared provides common CLI flag definitions and utility functions
// used across primer's command-line interface.
package shared

import (
	"context"
	"dominicbreuker/primer/pkg/config"
	"dominicbreuker/primer/pkg/lesson"
	"dominicbreuker/primer/pkg/log"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// TimeoutFlag is the name of the flag to specify the input timeout in milliseconds.
const TimeoutFlag = "timeout"

// PromptFlag is the name of the flag to control when the input prompt is shown.
const PromptFlag = "prompt"

// GetInputDescription returns the description text for lessons that read stdin.
func GetInputDescription() string {
	return strings.Join([]string{
		"Reads a single line from standard input.",
		"Use --prompt auto to hide the prompt when input is piped.",
	}, "\n")
}

// GetCommonFlags returns the CLI flags used by every lesson.
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.IntFlag{
			Name:     TimeoutFlag,
			Aliases:  []string{"t"},
			Usage:    "Input timeout in milliseconds, 0 waits forever",
			Category: categoryCommon,
			Value:    0,
			Required: false,
		},
		&cli.StringFlag{
			Name:     PromptFlag,
			Aliases:  []string{"p"},
			Usage:    "When to show the input prompt: always|auto|never",
			Category: categoryCommon,
			Value:    config.PromptAlways.String(),
			Required: false,
		},
	}
}

// NewConfig builds the shared configuration from the parsed flags of cmd.
// Validation problems are logged one per line and reported as a single error.
func NewConfig(cmd *cli.Command) (*config.Shared, error) {
	prompt, err := ParsePromptMode(cmd.String(PromptFlag))
	if err != nil {
		return nil, fmt.Errorf("parsing prompt mode: %s", err)
	}

	cfg := &config.Shared{
		Verbose: cmd.Bool(VerboseFlag),
		Timeout: time.Duration(cmd.Int(TimeoutFlag)) * time.Millisecond,
		Prompt:  prompt,
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		log.ErrorMsg("Argument validation errors:\n")
		for _, err := range errs {
			log.ErrorMsg(" - %s\n", err)
		}
		return nil, fmt.Errorf("exiting")
	}

	return cfg, nil
}

// GetLessonAction returns a CLI action that configures and runs l.
func GetLessonAction(l lesson.Func) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() > 0 {
			return fmt.Errorf("takes no arguments, got %d (%s)", cmd.Args().Len(), strings.Join(cmd.Args().Slice(), ", "))
		}

		cfg, err := NewConfig(cmd)
		if err != nil {
			return err
		}

		return l(ctx, cfg)
	}
}
