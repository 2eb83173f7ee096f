package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/kubuskotak/ulid/config"
	"github.com/kubuskotak/ulid/server"
	"github.com/kubuskotak/ulid/signal"
	"github.com/kubuskotak/ulid/tracer"
	"github.com/kubuskotak/ulid/ulid"
)

// telemetryStart installs exporters for the run and returns their flush.
type telemetryStart func(ctx context.Context, cfg *config.Config, w io.Writer) (func(context.Context) error, error)

func startTelemetry(ctx context.Context, cfg *config.Config, w io.Writer) (func(context.Context) error, error) {
	return tracer.NewProvider(ctx, tracer.ProviderOptions{Endpoint: cfg.OTLPEndpoint, Writer: w})
}

// cli holds what one invocation shares between the root command and its
// subcommands.
type cli struct {
	stdout, stderr io.Writer
	telemetry      telemetryStart

	cfgPath  string
	cfg      *config.Config
	shutdown func(context.Context) error
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{stdout: stdout, stderr: stderr, telemetry: startTelemetry}
}

// run executes args and flushes telemetry afterwards, also when the
// command failed.
func (c *cli) run(ctx context.Context, args []string) error {
	cmd := c.rootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if c.shutdown != nil {
		err = errors.Join(err, c.shutdown(context.WithoutCancel(ctx)))
		c.shutdown = nil
	}
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and inspect sortable 128-bit identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if c.cfg, err = config.Load(c.cfgPath); err != nil {
				return err
			}
			if err := tracer.SetupLogger(c.stderr, c.cfg.Log.Level, c.cfg.Log.Format); err != nil {
				return err
			}
			if c.cfg.Trace {
				if c.shutdown, err = c.telemetry(cmd.Context(), c.cfg, c.stderr); err != nil {
					return err
				}
			}
			return nil
		},
	}
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)
	rootCmd.PersistentFlags().StringVar(&c.cfgPath, "config", os.Getenv("ULID_CONFIG"), "YAML config file (environment variables override it)")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newBenchCmd(),
		newInspectCmd(),
		c.serveCmd(),
	)
	return rootCmd
}

func newGenerateCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print new identifiers, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			ctx, span, l := tracer.StartSpanLogTrace(cmd.Context(), "ulid.generate")
			defer span.End()

			start := time.Now()
			w := bufio.NewWriter(cmd.OutOrStdout())
			g := ulid.NewGenerator()
			line := make([]byte, 0, ulid.EncodedLen+1)
			for i := 0; i < count; i++ {
				id, err := g.New()
				if err != nil {
					return err
				}
				line, _ = id.AppendText(line[:0])
				_, _ = w.Write(append(line, '\n'))
			}
			recordGenerate(ctx, "cli", count, time.Since(start))
			l.Debug().Int("count", count).Msg("generated ulids")
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure generate+encode throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations < 1 {
				return fmt.Errorf("--iterations must be positive, got %d", iterations)
			}
			res, err := bench(iterations)
			if err != nil {
				return err
			}
			recordGenerate(cmd.Context(), "bench", res.Iterations, res.Duration)
			log.Info().
				Int("iterations", res.Iterations).
				Dur("duration", res.Duration).
				Float64("ns_per_op", res.NsPerOp()).
				Msg("benchmark finished")
			fmt.Fprintf(cmd.OutOrStdout(), "%d ids in %s (%.1f ns/op)\n",
				res.Iterations, res.Duration, res.NsPerOp())
			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1_000_000, "Number of identifiers to generate")
	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID...",
		Short: "Show the timestamp and binary forms of identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				id, err := ulid.Parse(arg)
				if err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\t%s\n",
					id, id.Timestamp(), id.Time().Format(time.RFC3339Nano), id.UUID())
			}
			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve identifiers over HTTP",
		Long:  "Serve identifiers over HTTP. Batch limits are reloaded when the --config file changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run(c.cfg, c.cfgPath, signal.Notify())
		},
	}
}

// recordGenerate reports a batch on the global meter provider, which is a
// no-op unless telemetry is enabled.
func recordGenerate(ctx context.Context, source string, n int, d time.Duration) {
	m, err := tracer.NewMetrics(otel.GetMeterProvider())
	if err != nil {
		log.Warn().Err(err).Msg("generate metrics disabled")
		return
	}
	m.RecordGenerate(ctx, source, n, d)
}
