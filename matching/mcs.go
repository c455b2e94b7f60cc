// SPDX-License-Identifier: MIT
//
// File: mcs.go
// Role: MCSearch public API. One searcher type serves atom-rowed and
// bond-rowed maximum common substructure search.

package matching

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/molmatch/molgraph"
)

// RowKind selects what the rows of the clique search are.
type RowKind int

const (
	// AtomRows rows the search by query atoms; size is the number of matched atoms.
	AtomRows RowKind = iota

	// BondRows rows the search by query bonds; size is the number of matched bonds.
	BondRows
)

// String implements fmt.Stringer.
func (k RowKind) String() string {
	switch k {
	case AtomRows:
		return "atoms"
	case BondRows:
		return "bonds"
	default:
		return fmt.Sprintf("RowKind(%d)", int(k))
	}
}

// searchMode selects what a clique search keeps.
type searchMode int

const (
	modeExists       searchMode = iota // stop at the first admissible clique
	modeAll                            // every clique of maximum size
	modeMaxSecondary                   // maximum size, then most secondary elements
)

// MCSearch finds maximum common substructures of a query and a target by
// enumerating cliques of their association graph with the Durand–Pasari
// null-node bound.
//
// With AtomRows the association graph has one node per compatible (query
// atom, target atom) pair; with BondRows one per compatible (query bond,
// target bond) pair whose endpoints are compatible in some orientation.
//
// An MCSearch is not safe for concurrent use.
type MCSearch struct {
	searchBase

	kind RowKind
	rk   rowKind

	queryReady bool
	rowElems   []int // query element of each row

	atomEquiv equivMatrix
	bondEquiv equivMatrix
	ag        assocGraph

	// clique state
	clique    []int
	cliqueSet *bitset.BitSet
	pairs     []elemPair
	nulls     int

	mode          searchMode
	bestNulls     int
	bestSecondary int
	found         bool
	checkPost     bool
}

// NewMCSearch returns an MCS searcher rowed by kind. It panics on an unknown kind.
func NewMCSearch(kind RowKind, opts ...Option) *MCSearch {
	s := &MCSearch{kind: kind, cliqueSet: bitset.New(0)}
	s.init(opts)
	switch kind {
	case AtomRows:
		s.rk = &atomRows{}
	case BondRows:
		s.rk = &bondRows{}
	default:
		panic(fmt.Sprintf("matching: NewMCSearch: unknown %v", kind))
	}

	return s
}

// NewAtomMCS is shorthand for NewMCSearch(AtomRows, opts...).
func NewAtomMCS(opts ...Option) *MCSearch { return NewMCSearch(AtomRows, opts...) }

// NewBondMCS is shorthand for NewMCSearch(BondRows, opts...).
func NewBondMCS(opts ...Option) *MCSearch { return NewMCSearch(BondRows, opts...) }

// Kind returns the row kind.
func (s *MCSearch) Kind() RowKind { return s.kind }

// SetQuery installs q as the query and releases every stored mapping.
func (s *MCSearch) SetQuery(q molgraph.Graph) error {
	if q == nil {
		return ErrNilGraph
	}
	s.query = q
	s.queryReady = false
	s.releaseAll()

	return nil
}

// SetMinSubstructureSize sets the smallest clique (in rows) worth reporting.
func (s *MCSearch) SetMinSubstructureSize(n int) {
	if n < 0 {
		n = 0
	}
	s.opts.MinSubstructureSize = n
}

// MinSubstructureSize returns the current minimum clique size.
func (s *MCSearch) MinSubstructureSize() int { return s.opts.MinSubstructureSize }

// MappingExists reports whether a common substructure of at least
// MinSubstructureSize rows exists. No mapping is stored.
// Complexity: same bound as FindAllMappings, but the search ends at the
// first clique of the minimum size.
func (s *MCSearch) MappingExists(target molgraph.Graph) (bool, error) {
	return s.run(target, modeExists)
}

// FindAllMappings stores every common substructure of maximum size.
//
// Complexity: building the association graph is O(N^2) for N compatible
// row pairs; the clique search is exponential in the row count.
func (s *MCSearch) FindAllMappings(target molgraph.Graph) (bool, error) {
	return s.run(target, modeAll)
}

// FindMaxBondMappings stores the maximum common substructures that, among
// those with the most atoms, have the most bonds. It requires AtomRows.
// Complexity: as FindAllMappings plus O(qb) per accepted clique to count bonds.
func (s *MCSearch) FindMaxBondMappings(target molgraph.Graph) (bool, error) {
	if s.kind != AtomRows {
		return false, fmt.Errorf("matching: FindMaxBondMappings on %v rows: %w", s.kind, ErrWrongRowKind)
	}

	return s.run(target, modeMaxSecondary)
}

// FindMaxAtomMappings stores the maximum common substructures that, among
// those with the most bonds, cover the most atoms. It requires BondRows.
// Complexity: as FindAllMappings plus O(qa) per accepted clique to count atoms.
func (s *MCSearch) FindMaxAtomMappings(target molgraph.Graph) (bool, error) {
	if s.kind != BondRows {
		return false, fmt.Errorf("matching: FindMaxAtomMappings on %v rows: %w", s.kind, ErrWrongRowKind)
	}

	return s.run(target, modeMaxSecondary)
}

// prepareQuery lays the rows out in breadth-first order, so rows of bonded
// query elements are close and edge constraints prune early.
func (s *MCSearch) prepareQuery() {
	if s.queryReady {
		return
	}
	walk := molgraph.BFS(s.query)
	if s.kind == AtomRows {
		s.rowElems = append(s.rowElems[:0], walk.Order...)
	} else {
		s.rowElems = append(s.rowElems[:0], walk.Bonds...)
	}
	s.queryReady = true
}

func (s *MCSearch) run(target molgraph.Graph, mode searchMode) (bool, error) {
	if err := s.beginSearch(target); err != nil {
		return false, err
	}
	s.prepareQuery()
	s.mode = mode
	s.found = false
	s.checkPost = s.needsPostMatch()

	defer s.logSearch()

	rows := len(s.rowElems)
	minSize := s.opts.MinSubstructureSize
	if rows == 0 {
		s.storeEmpty(mode != modeExists)
		s.found = true
		return true, nil
	}
	if minSize > rows || !s.preMatchGraph() {
		return false, nil
	}

	s.buildMatrices()
	s.buildAssocGraph()
	s.stats.Nodes, s.stats.Edges = s.ag.numNodes(), s.ag.numEdges

	s.clique = s.clique[:0]
	s.cliqueSet.ClearAll()
	s.pairs = s.pairs[:0]
	s.nulls = 0
	s.bestNulls = rows - minSize
	s.bestSecondary = -1
	s.rk.reset(s)

	s.search(0)
	s.stats.Stopped = s.stop.Load()

	return s.found, nil
}

// buildMatrices fills both equivalence matrices leniently; a row without
// candidates only forces a null node.
func (s *MCSearch) buildMatrices() {
	q, t := s.query, s.target
	s.atomEquiv.build(q.NumAtoms(), t.NumAtoms(), s.queryAtomPresent, s.targetAtomVisible, s.matchAtom, s.atomPins, false)
	s.bondEquiv.build(q.NumBonds(), t.NumBonds(), s.queryBondPresent, s.targetBondVisible, s.matchBond, s.bondPins, false)
}

// buildAssocGraph creates the nodes row by row and links every compatible
// pair of nodes from different rows.
func (s *MCSearch) buildAssocGraph() {
	s.ag.reset(len(s.rowElems))
	for r, q := range s.rowElems {
		s.rk.addNodes(s, r, q)
	}

	n := s.ag.numNodes()
	for i := 0; i < n; i++ {
		a := s.ag.node(i)
		for j := i + 1; j < n; j++ {
			b := s.ag.node(j)
			if a.row == b.row || a.target == b.target {
				continue
			}
			if pair, withData, ok := s.rk.connect(s, a, b); ok {
				s.ag.link(a, b, pair, withData)
			}
		}
	}
}

func (s *MCSearch) logSearch() {
	s.opts.Logger.Debug("mcs search finished",
		"rows", s.kind.String(),
		"queryRows", len(s.rowElems),
		"targetAtoms", s.target.NumAtoms(),
		"nodes", s.stats.Nodes,
		"edges", s.stats.Edges,
		"found", s.found,
		"mappings", len(s.stored),
		"states", s.stats.States,
		"stopped", s.stats.Stopped,
	)
}
