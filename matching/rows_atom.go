// SPDX-License-Identifier: MIT
//
// File: rows_atom.go
// Role: Atom rows. Nodes pair compatible atoms; an edge between two nodes
// whose query atoms are bonded carries the matching target bond.

package matching

type atomRows struct{}

func (atomRows) reset(*MCSearch) {}

func (atomRows) addNodes(s *MCSearch, r, q int) {
	row := s.atomEquiv.rows[q]
	for t, ok := row.NextSet(0); ok; t, ok = row.NextSet(t + 1) {
		s.ag.addNode(r, q, int(t))
	}
}

// connect links two atom assignments. If the query atoms share a visible
// bond, the target atoms must share a visible compatible bond; otherwise
// the nodes are linked without data.
func (atomRows) connect(s *MCSearch, a, b *agNode) (elemPair, bool, bool) {
	qb, bonded := s.query.BondBetween(a.elem, b.elem)
	if !bonded || !bondVisible(s.query, qb) {
		return elemPair{}, false, true
	}
	tb, ok := s.target.BondBetween(a.target, b.target)
	if !ok || !bondVisible(s.target, tb) || !s.bondEquiv.test(qb, tb) {
		return elemPair{}, false, false
	}

	return elemPair{q: qb, t: tb}, true, true
}

// extend appends the bond pairs of n's edges into the clique.
func (atomRows) extend(s *MCSearch, n *agNode) bool {
	for _, c := range s.clique {
		if p, ok := s.ag.edgeData(n.id, c); ok {
			s.pairs = append(s.pairs, p)
		}
	}

	return true
}

func (atomRows) retract(s *MCSearch, _ *agNode, mark int) { s.pairs = s.pairs[:mark] }

func (atomRows) fill(s *MCSearch, m *Mapping) {
	for _, id := range s.clique {
		n := s.ag.node(id)
		m.atoms.set(n.elem, n.target)
	}
	for _, p := range s.pairs {
		m.bonds.set(p.q, p.t)
	}
}

func (atomRows) secondary(s *MCSearch) int { return len(s.pairs) }
