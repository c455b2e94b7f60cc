// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Breadth-first traversal of the visible part of a Graph.
//
// Every component is walked in turn, each rooted at its lowest visible atom
// index, so the result covers all visible atoms and bonds and is
// deterministic for a given graph.

package molgraph

import "github.com/bits-and-blooms/bitset"

// BFSResult is the outcome of BFS.
type BFSResult struct {
	// Order lists visible atoms in visit order.
	Order []int

	// Bonds lists visible bonds in the order they were first reached.
	Bonds []int

	// Depth and Parent are indexed by atom; -1 for hidden atoms and, for
	// Parent, for component roots.
	Depth  []int
	Parent []int

	// Components counts connected components of the visible subgraph.
	Components int
}

// walker holds mutable traversal state.
type walker struct {
	g        Graph
	queue    []int
	seenAtom *bitset.BitSet
	seenBond *bitset.BitSet
	res      *BFSResult
}

// BFS walks every visible component of g. A bond is visible when it and
// both of its endpoints are.
//
// Complexity: O(V + E) time and memory.
func BFS(g Graph) *BFSResult {
	na, nb := g.NumAtoms(), g.NumBonds()
	w := &walker{
		g:        g,
		queue:    make([]int, 0, na),
		seenAtom: bitset.New(uint(na)),
		seenBond: bitset.New(uint(nb)),
		res: &BFSResult{
			Order:  make([]int, 0, na),
			Bonds:  make([]int, 0, nb),
			Depth:  make([]int, na),
			Parent: make([]int, na),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i], w.res.Parent[i] = -1, -1
	}

	for root := 0; root < na; root++ {
		if !g.ContainsAtom(root) || w.seenAtom.Test(uint(root)) {
			continue
		}
		w.res.Components++
		w.enqueue(root, 0, -1)
		w.loop()
	}

	return w.res
}

func (w *walker) enqueue(atom, depth, parent int) {
	w.seenAtom.Set(uint(atom))
	w.res.Depth[atom] = depth
	w.res.Parent[atom] = parent
	w.queue = append(w.queue, atom)
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		a := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, a)

		for _, nb := range w.g.Neighbors(a) {
			if !w.g.ContainsBond(nb.Bond) || !w.g.ContainsAtom(nb.Atom) {
				continue
			}
			if !w.seenBond.Test(uint(nb.Bond)) {
				w.seenBond.Set(uint(nb.Bond))
				w.res.Bonds = append(w.res.Bonds, nb.Bond)
			}
			if !w.seenAtom.Test(uint(nb.Atom)) {
				w.enqueue(nb.Atom, w.res.Depth[a]+1, a)
			}
		}
	}
}
