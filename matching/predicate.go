// SPDX-License-Identifier: MIT
//
// File: predicate.go
// Role: Compatibility predicates supplied by callers, plus stock implementations.
//
// Evaluation protocol:
//   - Every predicate is first called with m == nil while the equivalence
//     matrices are built. It must answer the local question (could these two
//     elements ever correspond?) and treat anything that depends on the
//     mapping as satisfied.
//   - If RequiresMapping reports true, the predicate is called again with the
//     completed mapping, and a false result rejects that mapping.

package matching

import "github.com/katalvlaran/molmatch/molgraph"

// WildcardElement is the query element symbol accepted by ElementAtom for any target atom.
const WildcardElement = "*"

// AtomMatcher decides whether query atom qAtom of q may correspond to target
// atom tAtom of t.
type AtomMatcher interface {
	MatchAtom(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, m *Mapping) bool
	RequiresMapping() bool
}

// BondMatcher decides whether query bond qBond of q may correspond to target
// bond tBond of t.
type BondMatcher interface {
	MatchBond(qBond int, q molgraph.Graph, tBond int, t molgraph.Graph, m *Mapping) bool
	RequiresMapping() bool
}

// GraphMatcher is a whole-graph predicate. With m == nil it is checked once
// before searching a target; a false result skips the target entirely.
type GraphMatcher interface {
	MatchGraph(q, t molgraph.Graph, m *Mapping) bool
	RequiresMapping() bool
}

// AnyAtom accepts every atom pair.
type AnyAtom struct{}

func (AnyAtom) MatchAtom(int, molgraph.Graph, int, molgraph.Graph, *Mapping) bool { return true }
func (AnyAtom) RequiresMapping() bool                                             { return false }

// AnyBond accepts every bond pair.
type AnyBond struct{}

func (AnyBond) MatchBond(int, molgraph.Graph, int, molgraph.Graph, *Mapping) bool { return true }
func (AnyBond) RequiresMapping() bool                                             { return false }

// ElementAtom compares element symbols, formal charges and aromaticity.
// A query element of WildcardElement or "" matches any element.
type ElementAtom struct {
	IgnoreCharge      bool
	IgnoreAromaticity bool
}

func (e ElementAtom) MatchAtom(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, _ *Mapping) bool {
	qa, ta := q.Atom(qAtom), t.Atom(tAtom)
	if qa.Element != WildcardElement && qa.Element != "" && qa.Element != ta.Element {
		return false
	}
	if !e.IgnoreCharge && qa.Charge != ta.Charge {
		return false
	}
	if !e.IgnoreAromaticity && qa.Aromatic != ta.Aromatic {
		return false
	}

	return true
}

func (ElementAtom) RequiresMapping() bool { return false }

// OrderBond compares bond orders. A query bond of UnspecifiedOrder matches
// any order; IgnoreOrder accepts every pair.
type OrderBond struct {
	IgnoreOrder bool
}

func (o OrderBond) MatchBond(qBond int, q molgraph.Graph, tBond int, t molgraph.Graph, _ *Mapping) bool {
	if o.IgnoreOrder {
		return true
	}
	qo := q.Bond(qBond).Order

	return qo == molgraph.UnspecifiedOrder || qo == t.Bond(tBond).Order
}

func (OrderBond) RequiresMapping() bool { return false }

// AtomMatchFunc adapts a local function to AtomMatcher.
type AtomMatchFunc func(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph) bool

func (f AtomMatchFunc) MatchAtom(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, _ *Mapping) bool {
	return f(qAtom, q, tAtom, t)
}

func (AtomMatchFunc) RequiresMapping() bool { return false }

// BondMatchFunc adapts a local function to BondMatcher.
type BondMatchFunc func(qBond int, q molgraph.Graph, tBond int, t molgraph.Graph) bool

func (f BondMatchFunc) MatchBond(qBond int, q molgraph.Graph, tBond int, t molgraph.Graph, _ *Mapping) bool {
	return f(qBond, q, tBond, t)
}

func (BondMatchFunc) RequiresMapping() bool { return false }

// MappedAtomFunc adapts a mapping-dependent function to AtomMatcher.
// The function also sees m == nil during prefiltering.
type MappedAtomFunc func(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, m *Mapping) bool

func (f MappedAtomFunc) MatchAtom(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, m *Mapping) bool {
	return f(qAtom, q, tAtom, t, m)
}

func (MappedAtomFunc) RequiresMapping() bool { return true }

// GraphMatchFunc adapts a function to GraphMatcher. It requires the mapping,
// so it is called once with m == nil and once per candidate mapping.
type GraphMatchFunc func(q, t molgraph.Graph, m *Mapping) bool

func (f GraphMatchFunc) MatchGraph(q, t molgraph.Graph, m *Mapping) bool { return f(q, t, m) }
func (GraphMatchFunc) RequiresMapping() bool                             { return true }

// AllAtoms requires every matcher to accept. It requires the mapping if any
// member does.
func AllAtoms(ms ...AtomMatcher) AtomMatcher { return atomConj(ms) }

type atomConj []AtomMatcher

func (c atomConj) MatchAtom(qAtom int, q molgraph.Graph, tAtom int, t molgraph.Graph, m *Mapping) bool {
	for _, am := range c {
		if m != nil && !am.RequiresMapping() {
			continue // already checked while prefiltering
		}
		if !am.MatchAtom(qAtom, q, tAtom, t, m) {
			return false
		}
	}

	return true
}

func (c atomConj) RequiresMapping() bool {
	for _, am := range c {
		if am.RequiresMapping() {
			return true
		}
	}

	return false
}

// AllBonds requires every matcher to accept.
func AllBonds(ms ...BondMatcher) BondMatcher { return bondConj(ms) }

type bondConj []BondMatcher

func (c bondConj) MatchBond(qBond int, q molgraph.Graph, tBond int, t molgraph.Graph, m *Mapping) bool {
	for _, bm := range c {
		if m != nil && !bm.RequiresMapping() {
			continue
		}
		if !bm.MatchBond(qBond, q, tBond, t, m) {
			return false
		}
	}

	return true
}

func (c bondConj) RequiresMapping() bool {
	for _, bm := range c {
		if bm.RequiresMapping() {
			return true
		}
	}

	return false
}

// MinMappedAtoms is a GraphMatcher that rejects mappings covering fewer than n query atoms.
type MinMappedAtoms int

func (n MinMappedAtoms) MatchGraph(_, _ molgraph.Graph, m *Mapping) bool {
	return m == nil || m.Atoms().Len() >= int(n)
}

func (MinMappedAtoms) RequiresMapping() bool { return true }
