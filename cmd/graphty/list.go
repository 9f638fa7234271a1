package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphty/algorithm"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := a.reg.RegisteredTypes()
			width := 0
			for _, id := range ids {
				width = max(width, len(id))
			}
			for _, id := range ids {
				alg, err := a.reg.New(id)
				if err != nil {
					return err
				}
				desc := ""
				if d, ok := alg.(algorithm.Describer); ok {
					desc = d.Description()
				}
				fmt.Fprintf(a.out, "%-*s  %s\n", width, id, desc)
			}

			return nil
		},
	}
}
