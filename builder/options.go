// SPDX-License-Identifier: MIT
// Package: graphty/builder
//
// options.go - functional options, ID schemes, weight distributions and
// sentinel errors.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/graphty/core"
)

// Sentinel errors. Parameter errors wrap core.ErrStructural.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrStructural)

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrStructural)

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = fmt.Errorf("builder: rng is required: %w", core.ErrStructural)

	// ErrConstructFailed indicates a nil constructor or an unusable spec.
	ErrConstructFailed = fmt.Errorf("builder: construction failed: %w", core.ErrStructural)

	// ErrNilGraph is returned by Apply for a nil target graph.
	ErrNilGraph = fmt.Errorf("builder: graph is nil: %w", core.ErrStructural)
)

// DefaultEdgeWeight is the weight drawn by the default WeightFn.
const DefaultEdgeWeight = core.DefaultWeight

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// IDFn maps a vertex index to its ID.
type IDFn func(int) string

// WeightFn draws an edge weight; rng may be nil.
type WeightFn func(*rand.Rand) float64

// DefaultIDFn renders indices in base 10: "0", "1", "2", …
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// ExcelColumnIDFn renders indices as spreadsheet columns: "A".."Z", "AA", …
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var buf []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}

	return string(buf)
}

// SymbolNumberIDFn prefixes decimal indices: prefix+"0", prefix+"1", …
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ConstantWeightFn always returns w.
func ConstantWeightFn(w float64) WeightFn {
	return func(*rand.Rand) float64 { return w }
}

// UniformWeightFn draws integers uniformly from [lo, hi]; without an RNG it
// returns lo. Integer weights keep fixtures readable.
func UniformWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn(%d, %d): hi < lo", lo, hi))
	}

	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}

		return float64(lo + r.Intn(hi-lo+1))
	}
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithExcelColumnIDs names vertices "A", "B", …
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb names vertices prefix+index.
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConstantWeight assigns w to every edge.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws integer weights from [lo, hi].
func WithUniformWeight(lo, hi int) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }

// WithPartitionPrefix sets the bipartite side prefixes; empty means default ("L"/"R").
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}
