package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/resloc/resloc"
	billyfs "github.com/resloc/resloc/drivers/billy"
	"github.com/urfave/cli"
)

var mainOpts = struct {
	assets string
	vfs    string
}{}

func main() {
	app := cli.NewApp()
	app.Name = "resloc"
	app.Usage = "resource location utilities"
	app.EnableBashCompletion = true
	app.Commands = []cli.Command{
		cat,
		ls,
		stat,
	}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:        "assets, a",
			Usage:       "Directory serving classpath: locations",
			EnvVar:      "RESLOC_ASSETS",
			Destination: &mainOpts.assets,
		},
		cli.StringFlag{
			Name:        "vfs",
			Usage:       "Directory mounted as a vfs: filesystem",
			EnvVar:      "RESLOC_VFS",
			Destination: &mainOpts.vfs,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

// newLoader builds the filesystem-rooted loader used by all commands,
// wiring in the optional asset and vfs mounts.
func newLoader() *resloc.DefaultLoader {
	cfg := resloc.Config{Path: resloc.FileSystemPath}
	if mainOpts.assets != "" {
		cfg.FS = os.DirFS(mainOpts.assets)
	}

	l := resloc.New(cfg)
	if mainOpts.vfs != "" {
		l.AddResolver(billyfs.New(osfs.New(mainOpts.vfs)).Resolver())
	}
	return l
}
