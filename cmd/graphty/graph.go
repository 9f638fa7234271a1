package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphty/builder"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/ingest"
)

// graphFlags selects the input graph: a document file or a generator spec.
type graphFlags struct {
	file     string
	generate string
	directed bool
	weighted bool
	seed     int64
}

func (f *graphFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "graph", "g", "", "graph document (YAML or JSON)")
	fs.StringVar(&f.generate, "generate", "", "generate a graph instead, e.g. cycle:6, grid:3,4, random:20,0.1")
	fs.BoolVar(&f.directed, "directed", false, "generated graph is directed")
	fs.BoolVar(&f.weighted, "weighted", false, "generated graph gets random integer weights 1..9")
	fs.Int64Var(&f.seed, "seed", 1, "seed for generated graphs")
}

func (f *graphFlags) load() (*core.Graph, error) {
	switch {
	case f.file != "" && f.generate != "":
		return nil, errors.New("--graph and --generate are mutually exclusive")
	case f.file != "":
		doc, err := ingest.Load(f.file)
		if err != nil {
			return nil, err
		}

		return doc.Build()
	case f.generate != "":
		c, err := builder.Parse(f.generate)
		if err != nil {
			return nil, err
		}
		gopts := []core.GraphOption{core.WithDirected(f.directed)}
		bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
		if f.weighted {
			gopts = append(gopts, core.WithWeighted())
			bopts = append(bopts, builder.WithUniformWeight(1, 9))
		}

		return builder.BuildGraph(gopts, bopts, c)
	default:
		return nil, fmt.Errorf("one of --graph or --generate is required")
	}
}
