// Package core defines the central Graph, Vertex, and Edge types,
// and provides primitives for building, querying, and cloning graphs.
//
// A single sync.RWMutex guards the vertex catalog, the edge catalog, the
// adjacency maps and the result store, so readers never observe a torn update.
// Mutating a graph while an algorithm runs over it is still undefined: callers
// that need concurrent mutation clone first.
package core

import "sync"

// DefaultWeight is the weight of an edge added without WithWeight.
const DefaultWeight = 1.0

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Data stores arbitrary caller payload; Clone copies the map, not the values.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Data stores arbitrary user data.
	Data map[string]any

	// results[namespace][field] = value, written by algorithms.
	results resultMap
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID and endpoints From→To. On undirected graphs the
// same Edge is reachable from both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost or capacity of the edge. DefaultWeight unless set.
	Weight float64

	// Data stores arbitrary user data.
	Data map[string]any

	results resultMap
}

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows edge weights other than DefaultWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex on insertion.
type VertexOption func(*Vertex)

// WithVertexData attaches payload to a newly created vertex.
// On an existing vertex AddVertex is a no-op and the option is ignored.
func WithVertexData(data map[string]any) VertexOption {
	return func(v *Vertex) { v.Data = copyData(data) }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithWeight sets the edge weight. Unweighted graphs only accept DefaultWeight.
func WithWeight(w float64) EdgeOption {
	return func(e *Edge) { e.Weight = w }
}

// WithEdgeData attaches payload to the edge.
func WithEdgeData(data map[string]any) EdgeOption {
	return func(e *Edge) { e.Data = copyData(data) }
}

// Graph is the core in-memory graph data structure.
//
// out[from][to] holds the ID of the single logical edge between the pair.
// For undirected graphs the mapping is mirrored (out[to][from] == out[from][to])
// and in aliases out. For directed graphs in[to][from] mirrors out[from][to].
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool
	weighted   bool
	allowLoops bool

	// Storage
	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	out map[string]map[string]string
	in  map[string]map[string]string

	results resultMap
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string]map[string]string),
		results:  make(resultMap),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.in = make(map[string]map[string]string)
	} else {
		g.in = g.out
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-default edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Weight returns the effective weight of e: e.Weight on weighted graphs,
// DefaultWeight otherwise.
func (g *Graph) Weight(e *Edge) float64 {
	if !g.weighted {
		return DefaultWeight
	}

	return e.Weight
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	SelfLoops   int
}

// Stats produces a snapshot of flags and counts.
// Complexity: O(E) for the self-loop scan.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		if e.From == e.To {
			s.SelfLoops++
		}
	}

	return s
}

func copyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}

	return out
}
