package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/hypha/chaos-agent/pkg/catalog"
	chaoserrors "github.com/hypha/chaos-agent/pkg/errors"
	"github.com/hypha/chaos-agent/pkg/logging"
	"github.com/hypha/chaos-agent/pkg/recommendation"
	"github.com/hypha/chaos-agent/pkg/seed"
	"github.com/hypha/chaos-agent/pkg/serializer"
)

const name = "chaos-agent"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// runtime carries the process boundaries so tests can replace them.
type runtime struct {
	stdout io.Writer
	stderr io.Writer
	source seed.Source
}

// Execute runs the CLI against os.Args and exits with the mapped code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, &runtime{stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

// run executes the root command and returns the process exit code.
func run(ctx context.Context, args []string, rt *runtime) int {
	cmd := newRootCmd(rt)

	err := cmd.Run(ctx, args)
	if err == nil {
		return chaoserrors.ExitOK
	}

	fmt.Fprintf(rt.stderr, "Error: %v\n", err)
	if chaoserrors.CodeOf(err) == chaoserrors.ErrCodeInvalidArgument {
		fmt.Fprintf(rt.stderr, "\nUsage: %s\nRun '%s --help' for details.\n", cmd.UsageText, name)
	}
	return chaoserrors.ExitCode(err)
}

func newRootCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:            name,
		Version:         fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Usage:           "Recommend a reproducible network fault-injection run for a failure intent",
		UsageText:       fmt.Sprintf("%s [options] <intent>", name),
		ArgsUsage:       "<intent>",
		HideHelpCommand: true,
		Writer:          rt.stdout,
		ErrWriter:       rt.stderr,
		Description: `Maps a high-level failure intent to the exact netns_chaos.sh invocation that
exercises it, and prints the invariant under test alongside the command.

Intents:
  stall   massive network stall (80% drop) requiring Spike recovery
  flap    rapid link flapping (up/down) every 500ms
  churn   process churn: kill/restart relay mid-run
  storm   combined stress: high jitter + flapping + churn

Every recommendation carries a seed. Pass it back with --seed to replay
the same fault pattern.

# Examples

Recommend a stall run on a two-node pair over TCP:
  chaos-agent --topology pair --transport tcp stall

Replay a previous run:
  chaos-agent --seed 42 storm

Emit the recommendation as YAML:
  chaos-agent --format yaml flap`,
		Flags: rootFlags(),
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return chaoserrors.Wrap(chaoserrors.ErrCodeInvalidArgument, "invalid usage", err)
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.SetDefaultLogger(rt.stderr, logging.Options{
				Name:    name,
				Version: version,
				Debug:   cmd.Bool(flagDebug),
				JSON:    cmd.Bool(flagLogJSON),
			})

			if path := cmd.String(flagMetricsFile); path != "" {
				defer writeMetrics(path)
			}

			// Refuses to start on an incomplete catalog.
			cat, err := catalog.Load(ctx)
			if err != nil {
				return err
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if cmd.Bool(flagListIntents) {
				return serialize(ctx, rt, outFormat, cmd.String(flagOutput), cat.Document())
			}

			req, err := buildRequestFromCmd(cmd)
			if err != nil {
				return err
			}

			builder := recommendation.NewBuilder(
				recommendation.WithVersion(version),
				recommendation.WithToolPath(cmd.String(flagTool)),
				recommendation.WithCatalog(cat),
				recommendation.WithSeedResolver(seed.NewResolver(seed.WithSource(rt.source))),
			)

			rec, err := builder.Build(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to generate recommendation: %w", err)
			}

			return serialize(ctx, rt, outFormat, cmd.String(flagOutput), rec)
		},
	}
}

// serialize writes v to the output path, or to the runtime stdout when the
// path is empty or "-".
func serialize(ctx context.Context, rt *runtime, format serializer.Format, output string, v any) error {
	var ser serializer.Serializer
	if p := strings.TrimSpace(output); p == "" || p == serializer.StdoutURI {
		ser = serializer.NewWriter(format, rt.stdout)
	} else {
		fw, err := serializer.NewFileWriterOrStdout(format, p)
		if err != nil {
			return chaoserrors.Wrap(chaoserrors.ErrCodeInternal, "failed to open output", err)
		}
		ser = fw
	}

	if closer, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
	}

	if err := ser.Serialize(ctx, v); err != nil {
		return chaoserrors.Wrap(chaoserrors.ErrCodeInternal, "failed to write output", err)
	}
	return nil
}

// writeMetrics dumps the default registry for the node-exporter textfile
// collector. Failures are logged, never fatal: the recommendation has
// already been printed.
func writeMetrics(path string) {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		slog.Warn("failed to write metrics file", "path", path, "error", err)
		return
	}
	slog.Debug("wrote metrics file", "path", path)
}
