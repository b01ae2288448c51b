package setup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestSampleConfig(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(writeSampleConfig(&buf))
	r.Contains(buf.String(), "log {")
	r.Contains(buf.String(), "max_backups")
}

func TestEmbeddedConfig(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.NoError(writeEmbeddedConfig(&buf, []byte("log {}\n")))
	r.Equal("log {}\n", buf.String())

	r.Error(writeEmbeddedConfig(&buf, nil))
}

func TestCommands_SampleConfig(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	app := &cli.App{
		Name:     "fileproc",
		Writer:   &buf,
		Commands: []*cli.Command{Commands()},
	}
	r.NoError(app.Run([]string{"fileproc", "setup", "sample-config"}))
	r.Contains(buf.String(), "# fileproc configuration")
}
