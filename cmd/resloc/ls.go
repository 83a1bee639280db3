package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/resloc/resloc"
	"github.com/urfave/cli"
)

var lsOpts = struct {
	long bool
}{}

var ls = cli.Command{
	Name:  "ls",
	Usage: "List resources matching a glob pattern",
	Description: `Expand a glob-style location into the filesystem
	resources it matches, e.g.

	  resloc ls 'conf/*.yml'

	Patterns are matched per path segment, so * never crosses a
	separator.  A location without metacharacters lists at most
	itself.`,
	ArgsUsage: "pattern",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:        "long, l",
			Usage:       "Show length and modification time",
			Destination: &lsOpts.long,
		},
	},
	Action: func(c *cli.Context) error {
		return lsAction(c.Args())
	},
}

func lsAction(args []string) error {
	if len(args) != 1 {
		return errors.New("expected exactly one pattern")
	}

	matches, err := resloc.ResolvePattern(newLoader(), args[0])
	if err != nil {
		return errors.Wrapf(err, "could not expand %s", args[0])
	}

	for _, r := range matches {
		if lsOpts.long {
			fmt.Println(statLine(r))
			continue
		}
		fmt.Println(r.Description())
	}
	return nil
}
