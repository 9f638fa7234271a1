package centrality

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/graphty/core"
)

// pred is one shortest-path predecessor arc into a vertex.
type pred struct {
	from int
	edge *core.Edge
}

// spTree is the single-source shortest-path DAG Brandes accumulates over.
type spTree struct {
	order []int // vertices in non-decreasing distance
	sigma []float64
	dist  []float64
	preds [][]pred
}

func newSPTree(n int) *spTree {
	t := &spTree{
		sigma: make([]float64, n),
		dist:  make([]float64, n),
		preds: make([][]pred, n),
	}

	return t
}

func (t *spTree) reset(s int) {
	t.order = t.order[:0]
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.sigma[i] = 0
		t.preds[i] = t.preds[i][:0]
	}
	t.dist[s] = 0
	t.sigma[s] = 1
}

// bfs fills t with hop-count shortest paths from s.
func (t *spTree) bfs(ix *core.Indexed, s int) {
	t.reset(s)
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		t.order = append(t.order, v)
		for _, a := range ix.Out[v] {
			w := a.To
			if w == v {
				continue
			}
			if math.IsInf(t.dist[w], 1) {
				t.dist[w] = t.dist[v] + 1
				queue = append(queue, w)
			}
			if t.dist[w] == t.dist[v]+1 {
				t.sigma[w] += t.sigma[v]
				t.preds[w] = append(t.preds[w], pred{from: v, edge: a.Edge})
			}
		}
	}
}

// dijkstra fills t with weighted shortest paths from s. Weights must be
// non-negative; ties are exact float equality.
func (t *spTree) dijkstra(ix *core.Indexed, s int) {
	t.reset(s)
	done := make([]bool, len(t.dist))
	pq := &arcHeap{}
	heap.Push(pq, &hItem{v: s, d: 0})
	var seq int
	for pq.Len() > 0 {
		it := heap.Pop(pq).(*hItem)
		v := it.v
		if done[v] || it.d > t.dist[v] {
			continue
		}
		done[v] = true
		t.order = append(t.order, v)
		for _, a := range ix.Out[v] {
			w := a.To
			if w == v || done[w] {
				continue
			}
			alt := t.dist[v] + a.Weight
			switch {
			case alt < t.dist[w]:
				t.dist[w] = alt
				t.sigma[w] = t.sigma[v]
				t.preds[w] = append(t.preds[w][:0], pred{from: v, edge: a.Edge})
				seq++
				heap.Push(pq, &hItem{v: w, d: alt, seq: seq})
			case alt == t.dist[w]:
				t.sigma[w] += t.sigma[v]
				t.preds[w] = append(t.preds[w], pred{from: v, edge: a.Edge})
			}
		}
	}
}

// run picks hop counts or weights by the snapshot's weighted flag.
func (t *spTree) run(ix *core.Indexed, s int) {
	if ix.Weighted {
		t.dijkstra(ix, s)
		return
	}
	t.bfs(ix, s)
}

func checkWeights(ix *core.Indexed) error {
	if !ix.Weighted {
		return nil
	}
	for _, arcs := range ix.Out {
		for _, a := range arcs {
			if a.Weight < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}

type hItem struct {
	v   int
	d   float64
	seq int
}

// arcHeap orders by distance, then insertion sequence.
type arcHeap []*hItem

func (h arcHeap) Len() int { return len(h) }
func (h arcHeap) Less(i, j int) bool {
	if h[i].d != h[j].d {
		return h[i].d < h[j].d
	}

	return h[i].seq < h[j].seq
}
func (h arcHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *arcHeap) Push(x any)   { *h = append(*h, x.(*hItem)) }
func (h *arcHeap) Pop() any {
	old := *h
	it := old[len(old)-1]
	*h = old[:len(old)-1]

	return it
}
