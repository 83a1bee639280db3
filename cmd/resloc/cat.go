package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/resloc/resloc"
	"github.com/urfave/cli"
)

var cat = cli.Command{
	Name:  "cat",
	Usage: "Print the content of resources",
	Description: `Resolve each location and copy its content to stdout.

	Locations may be plain paths (relative to the working directory),
	classpath: paths into the --assets directory, vfs: paths into the
	--vfs mount, or file/http/https URLs, e.g.

	  resloc cat conf/app.yml
	  resloc --assets /srv/static cat classpath:logo.svg
	  resloc cat https://example.org/robots.txt`,
	ArgsUsage: "location ...",
	Action: func(c *cli.Context) error {
		return catAction(c.Args())
	},
}

func catAction(args []string) error {
	if len(args) == 0 {
		return errors.New("no locations given")
	}

	loader := newLoader()
	for _, loc := range args {
		if err := catOne(loader, loc); err != nil {
			return err
		}
	}
	return nil
}

func catOne(loader resloc.Loader, loc string) (err error) {
	r, err := loader.Resolve(loc)
	if err != nil {
		return errors.Wrapf(err, "could not resolve %s", loc)
	}

	content, err := r.Open()
	if err != nil {
		return errors.Wrapf(err, "could not open %s", r.Description())
	}
	defer func() {
		if e := content.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "error closing %s", r.Description())
		}
	}()

	_, err = io.Copy(os.Stdout, content)
	return errors.Wrapf(err, "error reading %s", r.Description())
}
