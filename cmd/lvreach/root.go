package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/lvreach/internal/config"
	"github.com/katalvlaran/lvreach/internal/telemetry"
)

const defaultConfigFile = "lvreach.yaml"

// app carries state shared by subcommands once the root pre-run has
// loaded configuration.
type app struct {
	flags  GlobalFlags
	cfg    *config.Config
	logger *slog.Logger
	tp     *sdktrace.TracerProvider

	// shutdown flushes tp once the command has returned.
	shutdown func(context.Context, *sdktrace.TracerProvider) error
}

func newApp() *app {
	return &app{shutdown: telemetry.ShutdownTracing}
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context, args []string) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := newApp()
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	return a.execute(ctx, cmd)
}

// execute runs cmd and then shuts tracing down, whether or not the command
// failed. cobra skips post-run hooks after a RunE error.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) (err error) {
	defer func() {
		if a.tp == nil {
			return
		}
		if serr := a.shutdown(context.WithoutCancel(ctx), a.tp); err == nil {
			err = serr
		}
	}()

	return cmd.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvreach",
		Short: "lvreach - button press-count solver",
		Long: `lvreach finds how many times to press each button so that the
pressed effects add up exactly to a target vector.

Each input line reads: [indicator] (button) (button) ... {target}
for example: [.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	RegisterGlobalFlags(cmd, &a.flags)

	cmd.AddCommand(
		newSolveCmd(a),
		newVerifyCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
	)

	return cmd
}

// setup loads configuration, applies global flag overrides and builds the
// logger and tracer provider.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.flags.Validate(); err != nil {
		return err
	}

	path := a.flags.ConfigFile
	loader := config.NewConfigLoader(config.NewValidator())
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = loader.Load(path)
	} else {
		cfg, err = loader.LoadWithDefaults(defaultConfigFile)
	}
	if err != nil {
		return err
	}

	switch {
	case a.flags.Verbose:
		cfg.Logging.Level = "debug"
	case a.flags.Quiet:
		cfg.Logging.Level = "error"
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = a.flags.OutputFormat
	}
	if a.flags.NoColor {
		cfg.Output.Color = false
	}
	color.NoColor = color.NoColor || !cfg.Output.Color

	a.cfg = cfg
	a.logger = newLogger(cfg.Logging, cmd.ErrOrStderr())

	tp, err := telemetry.InitTracing(cmd.Context(), cfg.Tracing, version)
	if err != nil {
		return err
	}
	a.tp = tp

	return nil
}
