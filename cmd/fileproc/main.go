package main

import (
	"os"

	"github.com/nmeilick/fileproc/common"
	"github.com/nmeilick/fileproc/interactive"
	"github.com/nmeilick/fileproc/setup"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    common.AppName,
		Usage:   "Compress or encrypt " + common.InputFile + " into " + common.OutputFile,
		Version: common.VersionString(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{common.EnvPrefix + "CONFIG"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: interactive.Action,
		Commands: []*cli.Command{
			setup.Commands(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		common.ExitWithError(err)
	}
}
