// Command primer runs small lessons on language basics: reading input,
// constants and shadowing, fixed-size arrays and functions.
package main

import (
	"context"
	"dominicbreuker/primer/cmd/arrays"
	"dominicbreuker/primer/cmd/firstword"
	"dominicbreuker/primer/cmd/functions"
	"dominicbreuker/primer/cmd/shared"
	"dominicbreuker/primer/cmd/variables"
	"dominicbreuker/primer/cmd/version"
	"dominicbreuker/primer/pkg/log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shared.SetupSignalHandling(cancel)

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		cancel()
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "primer",
		Usage: "lessons on language basics",
		Commands: []*cli.Command{
			firstword.GetCommand(),
			variables.GetCommand(),
			arrays.GetCommand(),
			functions.GetCommand(),
			version.GetCommand(),
		},
	}
}
