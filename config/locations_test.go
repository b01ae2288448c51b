package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) (home, configHome string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("home and XDG locations are resolved differently on windows")
	}

	t.Cleanup(xdg.Reload)
	home = t.TempDir()
	configHome = filepath.Join(home, "xdg-config")
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	return home, configHome
}

func TestGetConfigLocations(t *testing.T) {
	r := require.New(t)
	home, configHome := setHome(t)

	locs := getConfigLocations()

	userFile := filepath.Join(configHome, "fileproc.hcl")
	userDirFile := filepath.Join(configHome, "fileproc", "config.hcl")
	homeDirFile := filepath.Join(home, ".fileproc", "config.hcl")
	homeFile := filepath.Join(home, ".fileproc.hcl")

	r.Contains(locs, userFile)
	r.Contains(locs, userDirFile)
	r.Contains(locs, homeDirFile)
	r.Contains(locs, homeFile)
	r.Contains(locs, "/etc/fileproc.hcl")

	// User locations are searched before system-wide ones
	index := func(s string) int {
		for i, l := range locs {
			if l == s {
				return i
			}
		}
		return -1
	}
	r.Less(index(userFile), index(userDirFile))
	r.Less(index(userDirFile), index(homeDirFile))
	r.Less(index(homeDirFile), index(homeFile))
	r.Less(index(homeFile), index("/etc/fileproc.hcl"))
}

func TestFindConfigFile(t *testing.T) {
	r := require.New(t)
	home, configHome := setHome(t)

	if found := FindConfigFile(); found != "" {
		r.NotContains(found, home, "unexpected config in a fresh home")
	}

	homeFile := filepath.Join(home, ".fileproc.hcl")
	r.NoError(os.WriteFile(homeFile, []byte(`log { level = "warn" }`), 0644))
	r.Equal(homeFile, FindConfigFile())

	// The XDG file takes precedence
	userFile := filepath.Join(configHome, "fileproc.hcl")
	r.NoError(os.MkdirAll(configHome, 0755))
	r.NoError(os.WriteFile(userFile, []byte(`log { level = "error" }`), 0644))
	r.Equal(userFile, FindConfigFile())

	cfg, err := LoadFile(FindConfigFile())
	r.NoError(err)
	r.Equal("error", cfg.Log.Level)
}

func TestFindConfigFile_IgnoresDirectories(t *testing.T) {
	r := require.New(t)
	home, _ := setHome(t)

	r.NoError(os.Mkdir(filepath.Join(home, ".fileproc.hcl"), 0755))
	r.NotEqual(filepath.Join(home, ".fileproc.hcl"), FindConfigFile())
}
