package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/ingest"
	"github.com/katalvlaran/graphty/internal/ctxlog"
)

// runFlags selects the algorithms to run.
type runFlags struct {
	algorithms  []string
	options     map[string]string
	template    string
	parallelism int
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&f.algorithms, "algorithm", "a", nil, "algorithm ID to run; repeatable")
	fs.StringToStringVarP(&f.options, "option", "o", nil, "option key=value passed to every -a algorithm")
	fs.StringVar(&f.template, "template", "", "YAML list of {algorithm, options} invocations")
	fs.IntVar(&f.parallelism, "parallelism", 0, "concurrent runs (default from config)")
}

// invocations resolves -a, then --template, then the config's algorithms.
func (f *runFlags) invocations(cfg Config) ([]algorithm.Invocation, error) {
	if len(f.algorithms) > 0 {
		opts := make(algorithm.Options, len(f.options))
		for k, v := range f.options {
			opts[k] = v
		}
		invs := make([]algorithm.Invocation, len(f.algorithms))
		for i, id := range f.algorithms {
			invs[i] = algorithm.Invocation{Algorithm: id, Options: opts}
		}

		return invs, nil
	}
	if f.template != "" {
		data, err := os.ReadFile(f.template)
		if err != nil {
			return nil, err
		}
		var invs []algorithm.Invocation
		if err := yaml.Unmarshal(data, &invs); err != nil {
			return nil, fmt.Errorf("template %s: %w", f.template, err)
		}

		return invs, nil
	}
	if len(cfg.Algorithms) > 0 {
		return cfg.Algorithms, nil
	}

	return nil, fmt.Errorf("no algorithms: use -a, --template or the config's algorithms list")
}

// execute loads the graph and runs every invocation on it.
func (a *app) execute(ctx context.Context, gf *graphFlags, rf *runFlags) (*core.Graph, *algorithm.Runner, *algorithm.BatchReport, error) {
	g, err := gf.load()
	if err != nil {
		return nil, nil, nil, err
	}
	invs, err := rf.invocations(a.cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	r := a.runner(g, rf.parallelism)
	report := r.RunTemplate(ctxlog.WithLogger(ctx, a.logger), invs)

	return g, r, report, nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		gf     graphFlags
		rf     runFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run algorithms and print the graph with their results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, _, report, err := a.execute(cmd.Context(), &gf, &rf)
			if err != nil {
				return err
			}
			if err := write(a.out, output, ingest.FromGraph(g, true)); err != nil {
				return err
			}

			return report.Err()
		},
	}
	gf.register(cmd.Flags())
	rf.register(cmd.Flags())
	cmd.Flags().StringVar(&output, "output", "yaml", "output format: yaml or json")

	return cmd
}

// write renders v as YAML or indented JSON.
func write(w io.Writer, format string, v any) error {
	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
