// Package functions provides the functions command.
package functions

import (
	"dominicbreuker/primer/cmd/shared"
	"dominicbreuker/primer/pkg/lesson"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the functions lesson.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "functions",
		Usage:  "Show functions with parameters and return values",
		Action: shared.GetLessonAction(lesson.Functions),
		Flags:  getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)

	return flags
}
