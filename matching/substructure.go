// SPDX-License-Identifier: MIT
//
// File: substructure.go
// Role: Exact matcher producing injective, bond-preserving embeddings of a query into a target.
//
// Search:
//   - Next query atom: top of the terminal stack (unmapped atoms adjacent to
//     the partial mapping), else the unmapped atom with the fewest candidates.
//   - Candidates: equivalence row minus used target atoms.
//   - mapBonds: every mapped query neighbour needs a compatible target bond,
//     and the candidate needs at least as many unused neighbours as the query
//     atom has unmapped ones.
//   - Every push (assignment, used bit, terminal entries, bond pairs) is
//     undone before the next sibling is tried.
//
// Complexity:
//   - Worst case O(m^n) branches for n query and m target atoms; the
//     equivalence rows and the neighbour-count check prune most of them.
//   - Per branch: O(deg) bond checks plus O(deg) terminal-stack updates.
//   - Memory: O(n*m) bits for the atom matrix, O(qb*tb) for the bond matrix,
//     O(n) for the search stacks.

package matching

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/molmatch/molgraph"
)

// SubstructureSearch enumerates embeddings of a query graph in target graphs.
// A SubstructureSearch is not safe for concurrent use; run one instance per
// goroutine.
type SubstructureSearch struct {
	searchBase

	// query-side tables, rebuilt lazily after SetQuery
	queryReady bool
	qAtoms     []int                 // visible query atoms
	qNbrs      [][]molgraph.Neighbor // visible neighbours per query atom

	atomEquiv equivMatrix
	bondEquiv equivMatrix

	// search state
	qToT   []int
	tUsed  *bitset.BitSet
	term   []int
	inTerm []bool
	bonds  []elemPair // (query bond, target bond) of mapped query bonds
	mapped int

	save      bool
	found     bool
	checkPost bool
}

// elemPair is a (query element, target element) pair.
type elemPair struct {
	q, t int
}

// NewSubstructureSearch returns an exact matcher configured by opts.
func NewSubstructureSearch(opts ...Option) *SubstructureSearch {
	s := &SubstructureSearch{tUsed: bitset.New(0)}
	s.init(opts)

	return s
}

// SetQuery installs q as the query and releases every stored mapping.
// Query-side tables are rebuilt on the next search; call SetQuery again after
// changing the visibility of query elements.
func (s *SubstructureSearch) SetQuery(q molgraph.Graph) error {
	if q == nil {
		return ErrNilGraph
	}
	s.query = q
	s.queryReady = false
	s.releaseAll()

	return nil
}

// MappingExists reports whether the query embeds in target. No mapping is stored.
// Complexity: as FindMappings, but the search ends at the first embedding.
func (s *SubstructureSearch) MappingExists(target molgraph.Graph) (bool, error) {
	return s.run(target, false)
}

// FindMappings stores every embedding of the query in target, subject to
// MaxNumMappings and UniqueMappingsOnly, and reports whether any was found.
//
// Complexity: exponential in the query size in the worst case; the number
// of stored mappings alone can reach m!/(m-n)!.
func (s *SubstructureSearch) FindMappings(target molgraph.Graph) (bool, error) {
	return s.run(target, true)
}

func (s *SubstructureSearch) prepareQuery() {
	if s.queryReady {
		return
	}
	q := s.query
	s.qAtoms = s.qAtoms[:0]
	if cap(s.qNbrs) < q.NumAtoms() {
		s.qNbrs = make([][]molgraph.Neighbor, q.NumAtoms())
	}
	s.qNbrs = s.qNbrs[:q.NumAtoms()]
	for a := 0; a < q.NumAtoms(); a++ {
		s.qNbrs[a] = s.qNbrs[a][:0]
		if !q.ContainsAtom(a) {
			continue
		}
		s.qAtoms = append(s.qAtoms, a)
		for _, nb := range q.Neighbors(a) {
			if q.ContainsAtom(nb.Atom) && q.ContainsBond(nb.Bond) {
				s.qNbrs[a] = append(s.qNbrs[a], nb)
			}
		}
	}
	s.queryReady = true
}

func (s *SubstructureSearch) run(target molgraph.Graph, save bool) (bool, error) {
	if err := s.beginSearch(target); err != nil {
		return false, err
	}
	s.prepareQuery()
	s.save = save
	s.found = false
	s.checkPost = s.needsPostMatch()

	defer s.logSearch()

	if len(s.qAtoms) == 0 {
		s.storeEmpty(save)
		s.found = true
		return true, nil
	}
	if !s.preMatchGraph() {
		return false, nil
	}
	if !s.initMatrices() {
		return false, nil
	}
	s.initState()
	s.match()
	s.stats.Stopped = s.stop.Load()

	return s.found, nil
}

// initMatrices builds both equivalence matrices; false means some visible
// query element has no candidate.
func (s *SubstructureSearch) initMatrices() bool {
	q, t := s.query, s.target
	if t.NumAtoms() < len(s.qAtoms) {
		return false
	}
	if !s.atomEquiv.build(q.NumAtoms(), t.NumAtoms(), s.queryAtomPresent, s.targetAtomVisible, s.matchAtom, s.atomPins, true) {
		return false
	}

	return s.bondEquiv.build(q.NumBonds(), t.NumBonds(), s.queryBondPresent, s.targetBondVisible, s.matchBond, s.bondPins, true)
}

func (s *SubstructureSearch) initState() {
	nq := s.query.NumAtoms()
	s.qToT = resizeFill(s.qToT, nq)
	if cap(s.inTerm) < nq {
		s.inTerm = make([]bool, nq)
	}
	s.inTerm = s.inTerm[:nq]
	clear(s.inTerm)
	s.tUsed.ClearAll()
	s.term = s.term[:0]
	s.bonds = s.bonds[:0]
	s.mapped = 0
}

// match extends the partial mapping by one query atom. It returns true when
// the whole search must end (stop flag, existence found, or cap reached).
func (s *SubstructureSearch) match() bool {
	if s.stop.Load() {
		return true
	}
	s.stats.States++
	if s.mapped == len(s.qAtoms) {
		return s.accept()
	}

	var qa int
	fromTerm := false
	if n := len(s.term); n > 0 {
		qa = s.term[n-1]
		s.term = s.term[:n-1]
		fromTerm = true
	} else {
		qa = s.pickAtom()
	}

	stop := false
	row := s.atomEquiv.rows[qa]
	for c, ok := row.NextSet(0); ok; c, ok = row.NextSet(c + 1) {
		if s.tUsed.Test(c) {
			continue
		}
		ta := int(c)
		mark := len(s.bonds)
		if !s.mapBonds(qa, ta) {
			s.bonds = s.bonds[:mark]
			continue
		}

		s.qToT[qa] = ta
		s.tUsed.Set(c)
		s.mapped++
		pushed := s.pushTerminals(qa)

		stop = s.match()

		s.popTerminals(pushed)
		s.mapped--
		s.tUsed.Clear(c)
		s.qToT[qa] = unmapped
		s.bonds = s.bonds[:mark]

		if stop {
			break
		}
		s.stats.Backtracks++
	}

	if fromTerm {
		s.term = append(s.term, qa)
	}

	return stop
}

// pickAtom returns the unmapped visible query atom with the smallest row.
func (s *SubstructureSearch) pickAtom() int {
	best, bestCount := -1, 0
	for _, a := range s.qAtoms {
		if s.qToT[a] != unmapped {
			continue
		}
		if c := s.atomEquiv.counts[a]; best < 0 || c < bestCount {
			best, bestCount = a, c
		}
	}

	return best
}

// mapBonds checks local consistency of qa -> ta and appends the bond pairs it
// implies. The caller truncates s.bonds on failure.
func (s *SubstructureSearch) mapBonds(qa, ta int) bool {
	t := s.target
	openQuery := 0
	for _, nb := range s.qNbrs[qa] {
		tn := s.qToT[nb.Atom]
		if tn == unmapped {
			openQuery++
			continue
		}
		tb, ok := t.BondBetween(ta, tn)
		if !ok || !t.ContainsBond(tb) || !s.bondEquiv.test(nb.Bond, tb) {
			return false
		}
		s.bonds = append(s.bonds, elemPair{q: nb.Bond, t: tb})
	}
	if openQuery == 0 {
		return true
	}

	openTarget := 0
	for _, nb := range t.Neighbors(ta) {
		if t.ContainsAtom(nb.Atom) && t.ContainsBond(nb.Bond) && !s.tUsed.Test(uint(nb.Atom)) {
			openTarget++
		}
	}

	return openTarget >= openQuery
}

func (s *SubstructureSearch) pushTerminals(qa int) int {
	n := 0
	for _, nb := range s.qNbrs[qa] {
		if s.qToT[nb.Atom] == unmapped && !s.inTerm[nb.Atom] {
			s.inTerm[nb.Atom] = true
			s.term = append(s.term, nb.Atom)
			n++
		}
	}

	return n
}

func (s *SubstructureSearch) popTerminals(n int) {
	for ; n > 0; n-- {
		last := len(s.term) - 1
		s.inTerm[s.term[last]] = false
		s.term = s.term[:last]
	}
}

// accept turns the complete assignment into a mapping and decides whether
// the search goes on.
func (s *SubstructureSearch) accept() bool {
	h, m := s.newMapping()
	for _, qa := range s.qAtoms {
		m.atoms.set(qa, s.qToT[qa])
	}
	for _, p := range s.bonds {
		m.bonds.set(p.q, p.t)
	}

	if s.checkPost && !s.postMatch(m) {
		s.pool.Free(h)
		return false
	}
	if !s.save {
		s.pool.Free(h)
		s.found = true
		return true
	}
	if !s.isNew(m) {
		s.pool.Free(h)
		return false
	}
	s.stored = append(s.stored, h)
	s.found = true

	return s.capReached()
}

func (s *SubstructureSearch) logSearch() {
	s.opts.Logger.Debug("substructure search finished",
		"queryAtoms", len(s.qAtoms),
		"targetAtoms", s.target.NumAtoms(),
		"found", s.found,
		"mappings", len(s.stored),
		"states", s.stats.States,
		"backtracks", s.stats.Backtracks,
		"stopped", s.stats.Stopped,
	)
}
