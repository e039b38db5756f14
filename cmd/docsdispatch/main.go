package main

import (
	"errors"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docsdispatch/cmd/docsdispatch/commands"
	"git.home.luguber.info/inful/docsdispatch/internal/builder"
	"git.home.luguber.info/inful/docsdispatch/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docsdispatch"),
		kong.Description("Builds versioned documentation for the currently checked-out branch."),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()})
	if err == nil {
		return
	}

	// The generator's exit status propagates as our own; its output has
	// already passed through, so no extra reporting for that case.
	var exitErr *builder.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	slog.Error("Command failed", "error", err)
	os.Exit(1)
}
