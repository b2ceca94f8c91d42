// Package variables provides the variables command, which demonstrates
// constants, shadowing and integer conversions.
package variables

import (
	"dominicbreuker/primer/cmd/shared"
	"dominicbreuker/primer/pkg/lesson"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for the variables lesson.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:   "variables",
		Usage:  "Show constants, shadowing and integer widening",
		Action: shared.GetLessonAction(lesson.Variables),
		Flags:  getFlags(),
	}
}

func getFlags() []cli.Flag {
	flags := []cli.Flag{}

	flags = append(flags, shared.GetCommonFlags()...)

	return flags
}
