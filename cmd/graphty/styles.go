package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphty/style"
)

// styleOutput is what the styles command prints.
type styleOutput struct {
	Layers []layerOutput             `yaml:"layers" json:"layers"`
	Nodes  map[string]map[string]any `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Edges  map[string]map[string]any `yaml:"edges,omitempty" json:"edges,omitempty"`
}

type layerOutput struct {
	Source string `yaml:"source" json:"source"`
	Name   string `yaml:"name" json:"name"`
	Target string `yaml:"target" json:"target"`
	Output string `yaml:"output" json:"output"`
}

func newStylesCmd(a *app) *cobra.Command {
	var (
		gf     graphFlags
		rf     runFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Run algorithms and evaluate their suggested styles plus the configured ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, r, report, err := a.execute(cmd.Context(), &gf, &rf)
			if err != nil {
				return err
			}
			if err := report.Err(); err != nil {
				return err
			}

			ids := make([]string, 0, len(report.Entries))
			for _, e := range report.Entries {
				ids = append(ids, e.Algorithm)
			}
			sources, err := r.SuggestedSources(ids...)
			if err != nil {
				return err
			}
			if len(a.cfg.Styles) > 0 {
				custom := style.Source{Name: "config"}
				for _, sc := range a.cfg.Styles {
					d, err := sc.Descriptor()
					if err != nil {
						return err
					}
					custom.Descriptors = append(custom.Descriptors, d)
				}
				sources = append(sources, custom)
			}

			layers := style.Compose(sources...)
			vals, err := style.Evaluate(r.Graph(), layers)
			if err != nil {
				return err
			}

			res := styleOutput{Nodes: vals.Nodes, Edges: vals.Edges}
			for _, l := range layers {
				res.Layers = append(res.Layers, layerOutput{
					Source: l.Source,
					Name:   l.Name,
					Target: string(l.Target),
					Output: l.Output,
				})
			}

			return write(a.out, output, res)
		},
	}
	gf.register(cmd.Flags())
	rf.register(cmd.Flags())
	cmd.Flags().StringVar(&output, "output", "yaml", "output format: yaml or json")

	return cmd
}
