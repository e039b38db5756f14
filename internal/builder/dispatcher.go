// Package builder dispatches documentation builds. Given the current
// branch it resolves a docs version label and either invokes the external
// generator once, with the version exported in its environment and baked
// into its output directory, or reports a noop when no mapping applies.
package builder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsdispatch/internal/config"
	"git.home.luguber.info/inful/docsdispatch/internal/logfields"
	"git.home.luguber.info/inful/docsdispatch/internal/metrics"
	"git.home.luguber.info/inful/docsdispatch/internal/versioning"
	"github.com/google/uuid"
)

// NoopNotice is printed to stdout when the branch has no docs version.
const NoopNotice = "No docs version for this branch, noop!"

// Dispatcher resolves a branch and runs at most one generator invocation.
type Dispatcher struct {
	cfg      *config.Config
	resolver versioning.Resolver
	runner   Runner
	recorder metrics.Recorder
	out      io.Writer
	dryRun   bool
}

// NewDispatcher creates a dispatcher with the binary runner and no metrics.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		resolver: cfg.Resolver(),
		runner:   &BinaryRunner{},
		recorder: metrics.NoopRecorder{},
		out:      os.Stdout,
	}
}

// WithRunner injects a custom runner (fluent helper).
func (d *Dispatcher) WithRunner(r Runner) *Dispatcher {
	if r != nil {
		d.runner = r
	}
	return d
}

// WithRecorder injects a metrics recorder (fluent helper).
func (d *Dispatcher) WithRecorder(r metrics.Recorder) *Dispatcher {
	if r != nil {
		d.recorder = r
	}
	return d
}

// WithOutput redirects the human-facing notices away from stdout.
func (d *Dispatcher) WithOutput(w io.Writer) *Dispatcher {
	if w != nil {
		d.out = w
	}
	return d
}

// WithDryRun makes Dispatch print the planned invocation instead of running it.
func (d *Dispatcher) WithDryRun(dryRun bool) *Dispatcher {
	d.dryRun = dryRun
	return d
}

// Resolve resolves a branch without dispatching. Exposed for the resolve
// subcommand; absence of a mapping is not an error.
func (d *Dispatcher) Resolve(branch string) versioning.Resolution {
	version, found := d.resolver.Resolve(branch)
	d.recorder.RecordResolve(branch, found)
	return versioning.Resolution{Branch: branch, Version: version, Found: found}
}

// Dispatch performs the resolve-then-build flow for branch. A branch with
// no docs version is a successful noop. A generator failure is returned
// unwrapped (an *ExitError when the generator exited non-zero) so the exit
// status can propagate to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, branch string) error {
	start := time.Now()
	buildID := uuid.NewString()

	res := d.Resolve(branch)
	if !res.Found {
		slog.Info("No docs version mapped for branch",
			logfields.BuildID(buildID), logfields.Branch(branch))
		fmt.Fprintln(d.out, NoopNotice)
		d.recorder.RecordDispatch(metrics.OutcomeNoop, time.Since(start))
		return nil
	}

	outputDir := d.cfg.OutputDir(res.Version)
	inv := Invocation{
		Command: d.cfg.Command,
		Args:    append(append([]string{}, d.cfg.Args...), d.cfg.SourceDir, outputDir),
		Env:     []string{d.cfg.EnvVar + "=" + res.Version},
	}

	fmt.Fprintf(d.out, "Building docs for branch %s as version %s\n", branch, res.Version)
	slog.Info("Dispatching documentation build",
		logfields.BuildID(buildID),
		logfields.Branch(branch),
		logfields.Version(res.Version),
		logfields.Command(inv.Command),
		logfields.SourceDir(d.cfg.SourceDir),
		logfields.OutputDir(outputDir))

	if d.dryRun {
		fmt.Fprintf(d.out, "dry-run: %s %s %s\n", inv.Env[0], inv.Command, strings.Join(inv.Args, " "))
		d.recorder.RecordDispatch(metrics.OutcomeNoop, time.Since(start))
		return nil
	}

	if err := d.runner.Run(ctx, inv); err != nil {
		slog.Error("Documentation build failed",
			logfields.BuildID(buildID),
			logfields.Branch(branch),
			logfields.Version(res.Version),
			logfields.Error(err))
		d.recorder.RecordDispatch(metrics.OutcomeError, time.Since(start))
		return err
	}

	duration := time.Since(start)
	slog.Info("Documentation build completed",
		logfields.BuildID(buildID),
		logfields.Version(res.Version),
		logfields.OutputDir(outputDir),
		logfields.DurationMS(float64(duration.Milliseconds())))
	d.recorder.RecordDispatch(metrics.OutcomeBuilt, duration)
	return nil
}
