// SPDX-License-Identifier: MIT
package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N+1 nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewMultigraph[int, int]()
	for i := 0; i <= N; i++ {
		g.AddNode(i)
	}
	for i := 0; i < N; i++ {
		g.AddDirectedEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const nodes = (1 << 10) - 1
	g := core.NewMultigraph[int, int]()
	for i := 0; i < nodes; i++ {
		g.AddNode(i)
	}
	for i := 0; 2*i+2 < nodes; i++ {
		g.AddDirectedEdge(i, 2*i+1, 1)
		g.AddDirectedEdge(i, 2*i+2, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
