// Package cli implements the stackbar command-line interface.
//
// # Commands
//
//   - render: Render snapshot transitions to SVG or JSON frames
//   - play: Play snapshot transitions in the terminal
//   - validate: Decode and check snapshots
//   - cache: Inspect and prune the frame cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the [CLI] value and is also attached to the command context.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbar/pkg/buildinfo"
	"github.com/matzehuels/stackbar/pkg/cache"
	"github.com/matzehuels/stackbar/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "stackbar"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Env    Env
}

// New creates a new CLI instance with a default logger. Environment
// defaults that fail to parse are logged and replaced by built-in values.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	env, err := LoadEnv()
	if err != nil {
		c.Logger.Warn("ignoring environment", "err", err)
		env = defaultEnv()
	}
	c.Env = env
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackbar renders animated stacked bar charts",
		Long:         `Stackbar renders sequences of stacked bar chart snapshots, animating bars and segments between them as keyed enter, update and exit transitions.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys are scoped by
// build version so frames rendered by another release are never reused.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+"/")
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Debug("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns STACKBAR_CACHE_DIR when set, otherwise the XDG cache
// location (~/.cache/stackbar/).
func (c *CLI) cacheDir() (string, error) {
	if c.Env.CacheDir != "" {
		return c.Env.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
