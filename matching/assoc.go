// SPDX-License-Identifier: MIT
//
// File: assoc.go
// Role: Association graph for MCS: nodes are (query element, target element)
// pairs, edges mark pairs that may coexist in one common substructure.
//
// Nodes and data-carrying edges live in arenas that are reset before every
// target. Node ids equal arena slot indices, so after a reset they are dense
// and start at zero. Adjacency is one bitset per node over node ids.

package matching

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/molmatch/internal/arena"
)

// agNode is one candidate assignment.
type agNode struct {
	id     int
	row    int // index into assocGraph.rows
	elem   int // query atom or bond
	target int // target atom or bond
	adj    *bitset.BitSet
}

// agEdge carries the element pair implied by two adjacent nodes: a bond pair
// for atom rows, the shared atom pair for bond rows.
type agEdge struct {
	a, b int
	pair elemPair
}

type assocGraph struct {
	nodes arena.Arena[agNode]
	edges arena.Arena[agEdge]

	byID     []arena.Handle
	rows     [][]int // node ids per row
	data     map[uint64]arena.Handle
	numEdges int
}

func (g *assocGraph) reset(numRows int) {
	g.nodes.Reset()
	g.edges.Reset()
	g.byID = g.byID[:0]
	if cap(g.rows) < numRows {
		g.rows = make([][]int, numRows)
	}
	g.rows = g.rows[:numRows]
	for i := range g.rows {
		g.rows[i] = g.rows[i][:0]
	}
	if g.data == nil {
		g.data = make(map[uint64]arena.Handle)
	} else {
		clear(g.data)
	}
	g.numEdges = 0
}

// addNode appends a node to row.
func (g *assocGraph) addNode(row, elem, target int) *agNode {
	h, n := g.nodes.Alloc()
	n.id = h.Index()
	n.row, n.elem, n.target = row, elem, target
	if n.adj == nil {
		n.adj = bitset.New(0)
	} else {
		n.adj.ClearAll()
	}
	if n.id != len(g.byID) {
		panic("matching: association graph node ids out of order")
	}
	g.byID = append(g.byID, h)
	g.rows[row] = append(g.rows[row], n.id)

	return n
}

func (g *assocGraph) node(id int) *agNode { return g.nodes.MustGet(g.byID[id]) }

func (g *assocGraph) numNodes() int { return len(g.byID) }

// link makes a and b adjacent; withData attaches pair to the edge.
func (g *assocGraph) link(a, b *agNode, pair elemPair, withData bool) {
	a.adj.Set(uint(b.id))
	b.adj.Set(uint(a.id))
	g.numEdges++
	if !withData {
		return
	}
	h, e := g.edges.Alloc()
	e.a, e.b, e.pair = a.id, b.id, pair
	g.data[edgeKey(a.id, b.id)] = h
}

// edgeData returns the pair carried by the edge between nodes a and b.
func (g *assocGraph) edgeData(a, b int) (elemPair, bool) {
	h, ok := g.data[edgeKey(a, b)]
	if !ok {
		return elemPair{}, false
	}

	return g.edges.MustGet(h).pair, true
}

func edgeKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(a)<<32 | uint64(uint32(b))
}
