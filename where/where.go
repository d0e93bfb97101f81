// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/cinemind-cli/cinemind/constant"
	"github.com/cinemind-cli/cinemind/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "CINEMIND_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding the config file and the user's lists.
// CINEMIND_CONFIG_PATH overrides the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the directory for disposable catalog and analysis caches.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Analyses is the directory of cached query analyses, one file per query.
func Analyses() string {
	return ensureDir(filepath.Join(Cache(), "analyses"))
}

// Logs resolves the directory used for daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Library is the file storing favorites and the watchlist.
func Library() string {
	return filepath.Join(Config(), "library.json")
}

// History is the file storing recently viewed titles.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file storing previous search queries used for suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
