package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/algorithms"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/internal/telemetry"
)

const version = "0.1.0"

// app holds what the subcommands share once the config is loaded.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	out     io.Writer
	errOut  io.Writer
	logger  *slog.Logger
	tp      *sdktrace.TracerProvider
	reg     *algorithm.Registry
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "graphty",
		Short:         "Run graph algorithms and derive suggested styles",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.shutdown(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./graphty.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("otlp-endpoint", "", "OTLP/HTTP trace endpoint; traces are discarded when empty")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("telemetry.endpoint", pf.Lookup("otlp-endpoint"))

	root.AddCommand(newListCmd(a), newRunCmd(a), newStylesCmd(a))

	return root
}

func (a *app) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logger, err = newLogger(a.errOut, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	a.tp, err = telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "graphty",
		ServiceVersion: version,
		Endpoint:       cfg.Telemetry.Endpoint,
	})
	if err != nil {
		return err
	}
	a.reg = algorithm.NewRegistry()

	return algorithms.RegisterBuiltins(a.reg)
}

func (a *app) shutdown(ctx context.Context) error {
	if a.tp == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return a.tp.Shutdown(ctx)
}

// runner returns a Runner over the app registry with the configured logger
// and parallelism.
func (a *app) runner(g *core.Graph, parallelism int) *algorithm.Runner {
	if parallelism < 1 {
		parallelism = a.cfg.Parallelism
	}

	return algorithm.NewRunner(g,
		algorithm.WithRegistry(a.reg),
		algorithm.WithLogger(a.logger),
		algorithm.WithParallelism(parallelism),
		algorithm.WithTracerProvider(a.tp),
	)
}
