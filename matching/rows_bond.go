// SPDX-License-Identifier: MIT
//
// File: rows_bond.go
// Role: Bond rows. Nodes pair compatible bonds; edges require that query
// bonds share an atom exactly when their target bonds do.
//
// Edge tests are pairwise and cannot tell a triangle from a star: every two
// bonds of K3 and of K1,3 share an atom. extend therefore keeps an explicit
// atom correspondence, derived from the shared atoms of the clique edges,
// and rejects a node whose edges contradict it.

package matching

import "github.com/katalvlaran/molmatch/molgraph"

type bondRows struct {
	qToT []int // query atom -> target atom
	tToQ []int
	refs []int // bindings holding each query atom
}

func (r *bondRows) reset(s *MCSearch) {
	r.qToT = resizeFill(r.qToT, s.query.NumAtoms())
	r.tToQ = resizeFill(r.tToQ, s.target.NumAtoms())
	if cap(r.refs) < len(r.qToT) {
		r.refs = make([]int, len(r.qToT))
	}
	r.refs = r.refs[:len(r.qToT)]
	clear(r.refs)
}

// addNodes adds a node for every compatible target bond whose endpoints
// match the query bond's endpoints in at least one orientation.
func (r *bondRows) addNodes(s *MCSearch, row, q int) {
	qb := s.query.Bond(q)
	cands := s.bondEquiv.rows[q]
	for t, ok := cands.NextSet(0); ok; t, ok = cands.NextSet(t + 1) {
		tb := s.target.Bond(int(t))
		straight := s.atomEquiv.test(qb.Begin, tb.Begin) && s.atomEquiv.test(qb.End, tb.End)
		swapped := s.atomEquiv.test(qb.Begin, tb.End) && s.atomEquiv.test(qb.End, tb.Begin)
		if straight || swapped {
			s.ag.addNode(row, q, int(t))
		}
	}
}

// connect links two bond assignments. Adjacent query bonds need adjacent
// target bonds with the shared atoms and both far atoms compatible; the
// edge then carries the shared atom pair.
func (r *bondRows) connect(s *MCSearch, a, b *agNode) (elemPair, bool, bool) {
	qa, qb := s.query.Bond(a.elem), s.query.Bond(b.elem)
	ta, tb := s.target.Bond(a.target), s.target.Bond(b.target)
	qs, ts := qa.Shared(qb), ta.Shared(tb)
	if (qs < 0) != (ts < 0) {
		return elemPair{}, false, false
	}
	if qs < 0 {
		return elemPair{}, false, true
	}
	if !s.atomEquiv.test(qs, ts) ||
		!s.atomEquiv.test(qa.Other(qs), ta.Other(ts)) ||
		!s.atomEquiv.test(qb.Other(qs), tb.Other(ts)) {
		return elemPair{}, false, false
	}

	return elemPair{q: qs, t: ts}, true, true
}

// extend binds the atoms implied by every data edge between n and the
// clique: the shared pair and the far pair of each bond.
func (r *bondRows) extend(s *MCSearch, n *agNode) bool {
	mark := len(s.pairs)
	qn, tn := s.query.Bond(n.elem), s.target.Bond(n.target)
	for _, id := range s.clique {
		p, ok := s.ag.edgeData(n.id, id)
		if !ok {
			continue
		}
		c := s.ag.node(id)
		qc, tc := s.query.Bond(c.elem), s.target.Bond(c.target)
		if !r.bind(s, p.q, p.t) ||
			!r.bind(s, qn.Other(p.q), tn.Other(p.t)) ||
			!r.bind(s, qc.Other(p.q), tc.Other(p.t)) {
			r.retract(s, n, mark)
			return false
		}
	}

	return true
}

// bind records q -> t, or confirms an existing identical binding. Every
// successful call logs the pair so retract can release it.
func (r *bondRows) bind(s *MCSearch, q, t int) bool {
	switch {
	case r.qToT[q] == t:
	case r.qToT[q] == unmapped && r.tToQ[t] == unmapped:
		r.qToT[q], r.tToQ[t] = t, q
	default:
		return false
	}
	r.refs[q]++
	s.pairs = append(s.pairs, elemPair{q: q, t: t})

	return true
}

func (r *bondRows) retract(s *MCSearch, _ *agNode, mark int) {
	for i := len(s.pairs) - 1; i >= mark; i-- {
		p := s.pairs[i]
		if r.refs[p.q]--; r.refs[p.q] == 0 {
			r.qToT[p.q], r.tToQ[p.t] = unmapped, unmapped
		}
	}
	s.pairs = s.pairs[:mark]
}

// fill maps the clique's bonds and the bound atoms. A bond with no adjacent
// clique member has unbound endpoints; its orientation is straight when the
// atoms allow it.
func (r *bondRows) fill(s *MCSearch, m *Mapping) {
	for _, id := range s.clique {
		n := s.ag.node(id)
		m.bonds.set(n.elem, n.target)
		qb, tb := s.query.Bond(n.elem), s.target.Bond(n.target)
		if r.qToT[qb.Begin] != unmapped {
			continue
		}
		begin, end := orient(s, qb, tb)
		m.atoms.set(qb.Begin, begin)
		m.atoms.set(qb.End, end)
	}
	for q, t := range r.qToT {
		if t != unmapped {
			m.atoms.set(q, t)
		}
	}
}

// orient returns the target atoms of qb's begin and end.
func orient(s *MCSearch, qb, tb molgraph.Bond) (begin, end int) {
	if s.atomEquiv.test(qb.Begin, tb.Begin) && s.atomEquiv.test(qb.End, tb.End) {
		return tb.Begin, tb.End
	}

	return tb.End, tb.Begin
}

// secondary counts mapped atoms: bound atoms plus both ends of every
// unbound bond.
func (r *bondRows) secondary(s *MCSearch) int {
	n := 0
	for _, t := range r.qToT {
		if t != unmapped {
			n++
		}
	}
	for _, id := range s.clique {
		if r.qToT[s.query.Bond(s.ag.node(id).elem).Begin] == unmapped {
			n += 2
		}
	}

	return n
}
