package setup

import (
	"fmt"
	"io"

	"github.com/nmeilick/fileproc"
	"github.com/nmeilick/fileproc/config"
	"github.com/urfave/cli/v2"
)

// Commands returns the CLI commands for setup tasks
func Commands() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Perform setup tasks",
		Subcommands: []*cli.Command{
			{
				Name:   "sample-config",
				Usage:  "Print a sample configuration file to stdout",
				Action: runSampleConfig,
			},
			{
				Name:   "embedded-config",
				Usage:  "Print the embedded configuration to stdout",
				Action: runEmbeddedConfig,
			},
		},
	}
}

func runSampleConfig(c *cli.Context) error {
	return writeSampleConfig(c.App.Writer)
}

func runEmbeddedConfig(c *cli.Context) error {
	return writeEmbeddedConfig(c.App.Writer, fileproc.EmbeddedConfig)
}

func writeSampleConfig(w io.Writer) error {
	_, err := fmt.Fprint(w, config.SampleConfig())
	return err
}

func writeEmbeddedConfig(w io.Writer, embedded []byte) error {
	if len(embedded) == 0 {
		return fmt.Errorf("no embedded configuration available")
	}
	_, err := w.Write(embedded)
	return err
}
