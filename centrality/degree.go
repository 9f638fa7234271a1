package centrality

import "github.com/katalvlaran/graphty/core"

// DegreeResult holds raw and max-normalized degrees.
//
// Pct fields divide by the corresponding maximum; a maximum of 0 (edgeless
// graph) yields 0 rather than NaN. In and Out equal Degree on undirected graphs.
type DegreeResult struct {
	Degree map[string]int
	In     map[string]int
	Out    map[string]int

	Pct    map[string]float64
	InPct  map[string]float64
	OutPct map[string]float64

	Max    int
	MaxIn  int
	MaxOut int
}

// Degree computes degree centrality for every vertex.
// Complexity: O(V).
func Degree(g *core.Graph) (*DegreeResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Vertices()
	r := &DegreeResult{
		Degree: make(map[string]int, len(ids)),
		In:     make(map[string]int, len(ids)),
		Out:    make(map[string]int, len(ids)),
		Pct:    make(map[string]float64, len(ids)),
		InPct:  make(map[string]float64, len(ids)),
		OutPct: make(map[string]float64, len(ids)),
	}
	for _, id := range ids {
		d, err := g.Degree(id)
		if err != nil {
			return nil, err
		}
		in, _ := g.InDegree(id)
		out, _ := g.OutDegree(id)
		r.Degree[id], r.In[id], r.Out[id] = d, in, out
		r.Max = max(r.Max, d)
		r.MaxIn = max(r.MaxIn, in)
		r.MaxOut = max(r.MaxOut, out)
	}
	for _, id := range ids {
		r.Pct[id] = ratio(r.Degree[id], r.Max)
		r.InPct[id] = ratio(r.In[id], r.MaxIn)
		r.OutPct[id] = ratio(r.Out[id], r.MaxOut)
	}

	return r, nil
}

func ratio(v, m int) float64 {
	if m == 0 {
		return 0
	}

	return float64(v) / float64(m)
}
