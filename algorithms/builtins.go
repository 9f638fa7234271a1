package algorithms

import (
	"context"

	"github.com/katalvlaran/graphty/algorithm"
	"github.com/katalvlaran/graphty/core"
	"github.com/katalvlaran/graphty/style"
)

// Namespace is the identifier prefix of every built-in algorithm.
const Namespace = "graphty"

// runFunc fills rs from g. It must not mutate g.
type runFunc func(ctx context.Context, g *core.Graph, opts algorithm.Options, rs *algorithm.ResultSet) error

// adapter implements algorithm.Algorithm, StyleSuggester and Describer
// for one built-in.
type adapter struct {
	id     string
	desc   string
	styles func() []style.Descriptor
	run    runFunc
}

func (a *adapter) ID() string          { return a.id }
func (a *adapter) Description() string { return a.desc }

func (a *adapter) SuggestedStyles() []style.Descriptor {
	if a.styles == nil {
		return nil
	}

	return a.styles()
}

func (a *adapter) Run(ctx context.Context, g *core.Graph, opts algorithm.Options) (*algorithm.ResultSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	rs := algorithm.NewResultSet(a.id)
	if err := a.run(ctx, g, opts, rs); err != nil {
		return nil, err
	}

	return rs, nil
}

// builtins lists every adapter in registration order.
func builtins() []*adapter {
	return []*adapter{
		degreeAdapter(),
		bfsAdapter(),
		dfsAdapter(),
		topoAdapter(),
		dijkstraAdapter(),
		bellmanFordAdapter(),
		floydWarshallAdapter(),
		betweennessAdapter(),
		closenessAdapter(),
		eigenvectorAdapter(),
		pageRankAdapter(),
		hitsAdapter(),
		katzAdapter(),
		louvainAdapter(),
		leidenAdapter(),
		girvanNewmanAdapter(),
		labelPropagationAdapter(),
		mstAdapter(),
		componentsAdapter(),
		sccAdapter(),
		maxFlowAdapter(),
		minCutAdapter(),
		matchingAdapter(),
	}
}

// RegisterBuiltins registers every built-in algorithm in reg.
func RegisterBuiltins(reg *algorithm.Registry) error {
	for _, a := range builtins() {
		if err := reg.Register(a.id, func() algorithm.Algorithm { return a }); err != nil {
			return err
		}
	}

	return nil
}

// IDs returns the identifiers RegisterBuiltins adds, in registration order.
func IDs() []string {
	list := builtins()
	ids := make([]string, len(list))
	for i, a := range list {
		ids[i] = a.id
	}

	return ids
}

func id(name string) string { return Namespace + ":" + name }

// hook returns the step hook attached to ctx by the runner, if any.
func hook(ctx context.Context) core.StepHook { return algorithm.StepHookFromContext(ctx) }
