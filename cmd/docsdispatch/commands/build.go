package commands

import (
	"context"
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docsdispatch/internal/builder"
	"git.home.luguber.info/inful/docsdispatch/internal/config"
	"git.home.luguber.info/inful/docsdispatch/internal/metrics"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Branch      string `short:"b" help:"Branch name override; skips querying git"`
	DryRun      bool   `name:"dry-run" help:"Print the planned generator invocation without running it"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile-collector metrics to this path" type:"path"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	branch := resolveBranch(b.Branch)

	dispatcher := builder.NewDispatcher(cfg).WithDryRun(b.DryRun)

	var recorder *metrics.PrometheusRecorder
	if b.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder()
		dispatcher = dispatcher.WithRecorder(recorder)
	}

	dispatchErr := dispatcher.Dispatch(context.Background(), branch)

	if recorder != nil {
		if err := recorder.WriteTextfile(b.MetricsFile); err != nil {
			// Metrics are best-effort; never mask the build outcome.
			slog.Warn("Failed to write metrics textfile", "path", b.MetricsFile, "error", err)
		}
	}

	return dispatchErr
}
