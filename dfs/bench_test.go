package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphty/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain of 10,000 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

// BenchmarkTopologicalSort_Chain10000 measures the sort on the same chain.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
