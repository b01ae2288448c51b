package fileproc

import (
	_ "embed" // Import the embed package
)

// EmbeddedConfig is used when no configuration file is found
//
//go:embed embedded.hcl
var EmbeddedConfig []byte
