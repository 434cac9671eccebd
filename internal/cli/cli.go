// Package cli implements the packista command-line interface.
//
// This package provides commands for resolving Composer package releases
// from a Packagist-style registry, inspecting package metadata, running the
// JSON API server, and managing the HTTP response cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - latest: Resolve the latest release of a package
//   - version: Look up one exact version of a package
//   - versions: List (or interactively browse) all versions
//   - info: Show repository-level package metadata
//   - serve: Run the JSON API server
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/packista/packista/pkg/buildinfo"
	"github.com/packista/packista/pkg/cache"
	"github.com/packista/packista/pkg/integrations/packagist"
	"github.com/packista/packista/pkg/release"
)

// appName is the application name used for directories and display.
const appName = "packista"

// cacheTTL is how long registry responses are cached for CLI usage.
const cacheTTL = 12 * time.Hour

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	registryURL string
	noCache     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "packista",
		Short:        "Packista resolves Composer package releases from Packagist",
		Long:         `Packista queries a Packagist-style registry, expands its minified version metadata, and resolves latest or exact releases for a package.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.registryURL, "registry", "", "registry base URL (default: repo.packagist.org)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the HTTP response cache")

	// Register all subcommands
	root.AddCommand(c.latestCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newService creates a release service for CLI use.
func (c *CLI) newService() *release.Service {
	client := packagist.NewClient(c.newCache(), c.registryURL, cacheTTL)
	return release.NewService(client, nil, c.Logger)
}

func (c *CLI) newCache() cache.Cache {
	if c.noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/packista/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
