// SPDX-License-Identifier: MIT
// Package: graphty/builder
//
// topology.go - deterministic topology constructors.
//
// Every constructor adds vertices via cfg.idFn in ascending index order and
// emits edges in a fixed order, so edge IDs are stable for a given call.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphty/core"
)

// Constructor names used as error prefixes.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinWheelNodes = 4
	MinGridDim    = 1
)

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Path builds P_n: edges (i-1)→i for i = 1..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, "n", n, MinPathNodes)
		}
		ids, err := addVertices(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path edges plus (n-1)→0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, "n", n, MinCycleNodes)
		}
		ids, err := addVertices(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves; edges point outward.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, "n", n, MinStarNodes)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		leaves, err := addVertices(g, cfg, MethodStar, n-1)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds C_{n-1} plus spokes from CenterVertexID.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, "n", n, MinWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodWheel, CenterVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n. Directed graphs get both orientations of every pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(MethodComplete, "n", n, 1)
		}
		ids, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed() {
					if err = addEdge(g, cfg, MethodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with IDs leftPrefix+i and rightPrefix+j;
// edges point left to right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 {
			return tooFew(MethodCompleteBipartite, "n1", n1, 1)
		}
		if n2 < 1 {
			return tooFew(MethodCompleteBipartite, "n2", n2, 1)
		}
		left, err := addVertices(g, builderConfig{idFn: SymbolNumberIDFn(cfg.leftPrefix)}, MethodCompleteBipartite, n1)
		if err != nil {
			return err
		}
		right, err := addVertices(g, builderConfig{idFn: SymbolNumberIDFn(cfg.rightPrefix)}, MethodCompleteBipartite, n2)
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GridID names the grid cell at row r, column c.
func GridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid builds a rows×cols 4-neighbour lattice with IDs GridID(r, c), emitting
// the right then the down edge of each cell in row-major order.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim {
			return tooFew(MethodGrid, "rows", rows, MinGridDim)
		}
		if cols < MinGridDim {
			return tooFew(MethodGrid, "cols", cols, MinGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, GridID(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph: every admissible pair becomes an
// edge with probability p. Undirected graphs try pairs i<j; directed graphs
// try ordered pairs, with loops only when g allows them. An RNG is required
// unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(MethodRandomSparse, "n", n, 1)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			if cfg.rng == nil {
				return p == 1
			}

			return cfg.rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !keep() {
					continue
				}
				if err = addEdge(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
