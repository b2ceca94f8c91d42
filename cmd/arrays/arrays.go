// Package arrays provides the arrays command, which indexes a five element
// array with a number read from stdin.
package arrays

import (
	"dominicbreuker/primer/cmd/shared"
	"dominicbreuker/primer/pkg/lesson"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the arrays lesson.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:        "arrays",
		Usage:       "Print the element of a fixed-size array at an index read from stdin",
		Description: shared.GetInputDescription(),
		Action:      shared.GetLessonAction(lesson.Arrays),
		Flags:       getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)

	return flags
}
