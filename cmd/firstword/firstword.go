// Package firstword provides the firstword command, which reads a line and
// prints the text before its first space.
package firstword

import (
	"dominicbreuker/primer/cmd/shared"
	"dominicbreuker/primer/pkg/lesson"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the firstword lesson.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "firstword",
		Usage:       "Print the first word of a line read from stdin",
		Description: shared.GetInputDescription(),
		Action:      shared.GetLessonAction(lesson.FirstWord),
		Flags:       getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)

	return flags
}
