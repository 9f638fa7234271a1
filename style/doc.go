// Package style turns algorithm results into visual style values.
//
// A Descriptor says: for every node (or edge) that has all of Inputs
// (result paths such as "graphty.degree.degreePct"), compute Output
// (a style path such as "node.size") with Mapping. Descriptors never touch
// the graph; they only read results.
//
// Compose folds several Sources (usually one per algorithm) into an ordered
// layer list. Layers are keyed by (Target, Output): when two sources write
// the same key, the later source wins and its descriptor takes the earlier
// one's position. Evaluate applies a layer list to a graph.
//
// Mapping helpers:
//
//	LinearScale(d0, d1, r0, r1)   numeric input → numeric range, clamped
//	ColorRamp("#f00", "#00f")     input in [0,1] → interpolated hex colour
//	Constant(v)                   ignores inputs
//	Palette("#a", "#b")           integer category → colour, cycling
//	Ratio(next)                   |inputs[0]|/|inputs[1]| → next
//	CELMapping("value * 2.0")     CEL expression over value and inputs
//
// An input path prefixed with "graph:" reads a graph-level result, e.g.
// "graph:graphty.degree.maxDegree".
package style
