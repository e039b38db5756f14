package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsdispatch/internal/git"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
// Build is the default command, so a zero-argument invocation queries the
// current branch and dispatches.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsdispatch.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build    BuildCmd    `cmd:"" default:"withargs" help:"Build versioned documentation for the current branch"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve a branch name to its docs version without building"`
	Mappings MappingsCmd `cmd:"" help:"Print the active branch-to-version mapping table"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// resolveBranch returns the branch to operate on: an explicit override when
// given, otherwise the branch checked out in the working directory. The
// empty string (detached HEAD, not a repository) flows through and resolves
// to the noop path.
func resolveBranch(override string) string {
	if override != "" {
		return override
	}
	return git.CurrentBranch(".")
}
