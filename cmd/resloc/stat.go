package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/resloc/resloc"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"
)

var stat = cli.Command{
	Name:  "stat",
	Usage: "Describe resources",
	Description: `Resolve each location and print its description,
	existence, length and modification time.  Locations are probed
	concurrently; output keeps the argument order.`,
	ArgsUsage: "location ...",
	Action: func(c *cli.Context) error {
		return statAction(c.Args())
	},
}

func statAction(args []string) error {
	if len(args) == 0 {
		return errors.New("no locations given")
	}

	loader := newLoader()
	lines := make([]string, len(args))

	var g errgroup.Group
	for i, loc := range args {
		i, loc := i, loc
		g.Go(func() error {
			r, err := loader.Resolve(loc)
			if err != nil {
				return errors.Wrapf(err, "could not resolve %s", loc)
			}
			lines[i] = statLine(r)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}

func statLine(r resloc.Resource) string {
	if !r.Exists() {
		return r.Description() + "    absent"
	}

	length := "-"
	if n, err := r.ContentLength(); err == nil {
		length = strconv.FormatInt(n, 10)
	}

	modified := "-"
	if t, err := r.LastModified(); err == nil {
		modified = t.Format("2006-01-02 15:04:05")
	}

	return fmt.Sprintf("%s    %s    %s", r.Description(), length, modified)
}
