package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/nmeilick/fileproc"
	"github.com/nmeilick/fileproc/common"
	logconfig "github.com/nmeilick/fileproc/config/log"
	"github.com/urfave/cli/v2"
)

// EmbeddedSource is reported as the path when the embedded config is used
const EmbeddedSource = "<embedded>"

// Config holds the application configuration
type Config struct {
	Log *logconfig.LogConfig `hcl:"log,block"`
}

// DefaultConfig returns a configuration with all sections set to their defaults
func DefaultConfig() *Config {
	return &Config{
		Log: logconfig.DefaultConfig(),
	}
}

// Normalize fills in missing sections and defaults
func (cfg *Config) Normalize() error {
	if cfg.Log == nil {
		cfg.Log = logconfig.DefaultConfig()
	}
	if err := cfg.Log.Normalize(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// getConfigLocations returns all standard locations where config files are searched
func getConfigLocations() []string {
	var locations []string
	appName := common.AppName

	// Get executable path to check for config in same directory
	execPath, err := os.Executable()
	if err == nil {
		execDir := filepath.Dir(execPath)
		locations = append(locations, filepath.Join(execDir, appName+".hcl"))
	}

	// User config locations (cross-platform)
	userConfigFile, err := xdg.ConfigFile(appName + ".hcl")
	if err == nil {
		locations = append(locations, userConfigFile)
	}

	// Also check for config in XDG subdirectory
	userConfigDir, err := xdg.ConfigFile(appName)
	if err == nil {
		locations = append(locations, filepath.Join(userConfigDir, "config.hcl"))
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		locations = append(locations,
			filepath.Join(homeDir, "."+appName, "config.hcl"),
			filepath.Join(homeDir, "."+appName+".hcl"),
		)
	}

	// System-wide locations (OS-specific)
	switch runtime.GOOS {
	case "windows":
		programData := os.Getenv("ProgramData")
		if programData != "" {
			locations = append(locations,
				filepath.Join(programData, appName, "config.hcl"),
			)
		}
	case "darwin":
		locations = append(locations,
			"/Library/Application Support/"+appName+"/config.hcl",
			"/etc/"+appName+"/config.hcl",
			"/etc/"+appName+".hcl",
		)
	default:
		locations = append(locations,
			"/etc/"+appName+"/config.hcl",
			"/etc/"+appName+".hcl",
		)
	}

	return locations
}

// FindConfigFile looks for the configuration file in standard locations
func FindConfigFile() string {
	for _, loc := range getConfigLocations() {
		if stat, err := os.Stat(loc); err == nil && stat.Mode().IsRegular() {
			return loc
		}
	}
	return ""
}

// LoadFile parses and normalizes the configuration file at path
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("config has problems: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and normalizes configuration from memory. The filename
// only selects the syntax and appears in error messages.
func Decode(filename string, src []byte) (*Config, error) {
	cfg := &Config{}
	if err := hclsimple.Decode(filename, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, fmt.Errorf("config has problems: %s: %w", filename, err)
	}
	return cfg, nil
}

// LoadConfig loads the configuration from the file given with --config, a
// standard location or the embedded default. When none exists the built-in
// defaults are returned with an empty path.
func LoadConfig(c *cli.Context) (*Config, string, error) {
	path := c.String("config")
	if path == "" {
		path = FindConfigFile()
	}

	if path != "" {
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}

	if len(strings.TrimSpace(string(fileproc.EmbeddedConfig))) > 0 {
		cfg, err := Decode("embedded_config.hcl", fileproc.EmbeddedConfig)
		if err != nil {
			return nil, EmbeddedSource, err
		}
		return cfg, EmbeddedSource, nil
	}

	cfg := DefaultConfig()
	return cfg, "", cfg.Normalize()
}

// SampleConfig returns a commented sample configuration file
func SampleConfig() string {
	return strings.Join([]string{
		"# " + common.AppName + " configuration",
		"",
		logconfig.GetSampleConfig(),
		"",
	}, "\n")
}
