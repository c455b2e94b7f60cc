// SPDX-License-Identifier: MIT
//
// File: clique.go
// Role: Durand–Pasari clique enumeration over the association graph, shared
// by atom rows and bond rows.
//
// Algorithm:
//   - One level per row. At each level the search either takes a node of
//     that row adjacent to every clique member (and accepted by the row
//     kind's extend), or skips the row as a null node.
//   - bestNulls bounds the null nodes of a useful branch. It starts at
//     rows - MinSubstructureSize and shrinks whenever a larger clique is
//     accepted, which discards the stored mappings.
//   - Past the last row the clique is turned into a mapping, filtered by the
//     mapping-dependent predicates and the signature set, and stored.
//
// Every push (clique member, clique bit, row-kind pairs, null counter) is
// popped before the next sibling is tried.
//
// Complexity:
//   - Worst case O((k+1)^r) branches for r rows of at most k nodes each.
//     The null budget cuts every branch that cannot reach the best size.
//   - Per level: O(k) candidate tests, each one bitset AND over the node
//     adjacency.
//   - Memory: O(N^2/64) words of adjacency for N association nodes, O(r)
//     for the clique stack.

package matching

// rowKind is the strategy that distinguishes atom rows from bond rows.
type rowKind interface {
	// reset clears per-target state.
	reset(s *MCSearch)

	// addNodes adds the nodes of row r, whose query element is q.
	addNodes(s *MCSearch, r, q int)

	// connect decides whether a and b (different rows, different targets)
	// may coexist, and the element pair their edge carries.
	connect(s *MCSearch, a, b *agNode) (pair elemPair, withData bool, ok bool)

	// extend records what adding n to the clique implies. On false it has
	// already undone its own changes.
	extend(s *MCSearch, n *agNode) bool

	// retract undoes extend(n); mark is len(s.pairs) before extend.
	retract(s *MCSearch, n *agNode, mark int)

	// fill writes the clique into m.
	fill(s *MCSearch, m *Mapping)

	// secondary is the tie-breaking size: bonds for atom rows, atoms for bond rows.
	secondary(s *MCSearch) int
}

// budget returns how many null nodes a branch may still reach a useful leaf with.
func (s *MCSearch) budget() int {
	if s.mode == modeAll && s.capReached() {
		// only strictly larger cliques can change the result
		return s.bestNulls - 1
	}

	return s.bestNulls
}

// search explores row level; true ends the whole search.
func (s *MCSearch) search(level int) bool {
	if s.stop.Load() {
		return true
	}
	s.stats.States++
	if level == len(s.rowElems) {
		return s.acceptClique()
	}

	for _, id := range s.ag.rows[level] {
		n := s.ag.node(id)
		if !n.adj.IsSuperSet(s.cliqueSet) {
			continue
		}
		mark := len(s.pairs)
		if !s.rk.extend(s, n) {
			continue
		}
		s.clique = append(s.clique, id)
		s.cliqueSet.Set(uint(id))

		stop := s.search(level + 1)

		s.cliqueSet.Clear(uint(id))
		s.clique = s.clique[:len(s.clique)-1]
		s.rk.retract(s, n, mark)
		if stop {
			return true
		}
		s.stats.Backtracks++
	}

	if s.nulls+1 > s.budget() {
		return false
	}
	s.nulls++
	stop := s.search(level + 1)
	s.nulls--

	return stop
}

// acceptClique handles a completed clique.
func (s *MCSearch) acceptClique() bool {
	if s.nulls > s.budget() || len(s.clique) < s.opts.MinSubstructureSize {
		return false
	}
	secondary := -1
	if s.mode == modeMaxSecondary {
		secondary = s.rk.secondary(s)
		if s.nulls == s.bestNulls && secondary < s.bestSecondary {
			return false
		}
	}

	h, m := s.newMapping()
	s.rk.fill(s, m)
	if s.checkPost && !s.postMatch(m) {
		s.pool.Free(h)
		return false
	}
	if s.mode == modeExists {
		s.pool.Free(h)
		s.found = true
		return true
	}

	if s.nulls < s.bestNulls || secondary > s.bestSecondary {
		s.discardStored()
		s.bestNulls = s.nulls
		s.bestSecondary = secondary
	} else if s.capReached() {
		s.pool.Free(h)
		return false
	}
	if !s.isNew(m) {
		s.pool.Free(h)
		return false
	}
	s.stored = append(s.stored, h)
	s.found = true

	return false
}
