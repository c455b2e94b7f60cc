// SPDX-License-Identifier: MIT
//
// File: base.go
// Role: State and API shared by SubstructureSearch and MCSearch: options,
// query handle, pinning constraints, pooled results, stop flag, statistics.

package matching

import (
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/molmatch/internal/arena"
	"github.com/katalvlaran/molmatch/molgraph"
)

// Stats describes the most recent search of a searcher.
type Stats struct {
	// States counts recursive search calls.
	States int

	// Backtracks counts candidates undone after their subtree was explored.
	Backtracks int

	// Nodes and Edges are the association graph sizes (MCS only); Edges
	// counts adjacent node pairs.
	Nodes, Edges int

	// Stopped reports that Stop ended the search early.
	Stopped bool
}

// searchBase is embedded by both searchers.
type searchBase struct {
	opts Options

	query  molgraph.Graph
	target molgraph.Graph

	atomPins pinSet
	bondPins pinSet

	// results
	pool   arena.Arena[Mapping]
	stored []arena.Handle
	sigs   signatureSet
	sigBuf *bitset.BitSet

	stop  atomic.Bool
	stats Stats
}

func (b *searchBase) init(opts []Option) {
	b.opts = resolveOptions(opts)
	b.atomPins = make(pinSet)
	b.bondPins = make(pinSet)
}

// Query returns the current query graph, or nil.
func (b *searchBase) Query() molgraph.Graph { return b.query }

// SetUniqueMappingsOnly toggles deduplication by covered target atoms and bonds.
//
// The signature holds the target atoms as well as the target bonds. For a
// connected query this is the same as keying on bonds alone. For a query with
// isolated atoms (or no bonds at all) mappings that differ only in where an
// isolated atom lands stay distinct: two unbonded query atoms in a three-atom
// target give three unique mappings, one per covered atom pair.
func (b *searchBase) SetUniqueMappingsOnly(unique bool) { b.opts.UniqueMappingsOnly = unique }

// UniqueMappingsOnly reports whether deduplication is enabled.
func (b *searchBase) UniqueMappingsOnly() bool { return b.opts.UniqueMappingsOnly }

// SetMaxNumMappings caps the number of stored mappings; n <= 0 removes the cap.
func (b *searchBase) SetMaxNumMappings(n int) {
	if n < 0 {
		n = 0
	}
	b.opts.MaxNumMappings = n
}

// MaxNumMappings returns the mapping cap (0 = unlimited).
func (b *searchBase) MaxNumMappings() int { return b.opts.MaxNumMappings }

// AddAtomMappingConstraint restricts query atom q to target atom t. Several
// constraints on q allow any of the listed targets.
func (b *searchBase) AddAtomMappingConstraint(q, t int) error {
	if q < 0 || t < 0 {
		return fmt.Errorf("matching: AddAtomMappingConstraint(%d,%d): %w", q, t, ErrBadConstraint)
	}
	b.atomPins.add(q, t)

	return nil
}

// AddBondMappingConstraint restricts query bond q to target bond t.
func (b *searchBase) AddBondMappingConstraint(q, t int) error {
	if q < 0 || t < 0 {
		return fmt.Errorf("matching: AddBondMappingConstraint(%d,%d): %w", q, t, ErrBadConstraint)
	}
	b.bondPins.add(q, t)

	return nil
}

// ClearAtomMappingConstraints removes all atom pins.
func (b *searchBase) ClearAtomMappingConstraints() { clear(b.atomPins) }

// ClearBondMappingConstraints removes all bond pins.
func (b *searchBase) ClearBondMappingConstraints() { clear(b.bondPins) }

// Stop asks a running search to return at its next recursion step. It is
// safe to call from another goroutine. The flag is cleared when a search starts.
func (b *searchBase) Stop() { b.stop.Store(true) }

// Stats returns statistics of the last search.
func (b *searchBase) Stats() Stats { return b.stats }

// NumMappings returns the number of stored mappings.
func (b *searchBase) NumMappings() int { return len(b.stored) }

// Mapping returns stored mapping i. Like slice indexing, it panics if i is
// out of range. The mapping is valid until the next search or SetQuery.
func (b *searchBase) Mapping(i int) *Mapping { return b.pool.MustGet(b.stored[i]) }

// Mappings yields the stored mappings in discovery order.
func (b *searchBase) Mappings() iter.Seq2[int, *Mapping] {
	return func(yield func(int, *Mapping) bool) {
		for i, h := range b.stored {
			if !yield(i, b.pool.MustGet(h)) {
				return
			}
		}
	}
}

// beginSearch validates inputs and resets per-target state.
func (b *searchBase) beginSearch(target molgraph.Graph) error {
	if b.query == nil {
		return ErrNoQuery
	}
	if target == nil {
		return ErrNilGraph
	}
	b.target = target
	b.releaseAll()
	b.stop.Store(false)
	b.stats = Stats{}

	return nil
}

// releaseAll returns every pooled mapping and forgets signatures.
func (b *searchBase) releaseAll() {
	b.pool.Reset()
	b.stored = b.stored[:0]
	b.sigs.reset()
}

// discardStored frees the stored mappings only (MCS incumbent replacement).
func (b *searchBase) discardStored() {
	for _, h := range b.stored {
		b.pool.Free(h)
	}
	b.stored = b.stored[:0]
	b.sigs.reset()
}

// newMapping borrows a cleared mapping sized for the current query and target.
func (b *searchBase) newMapping() (arena.Handle, *Mapping) {
	h, m := b.pool.Alloc()
	m.reset(b.query, b.target)

	return h, m
}

// capReached reports whether MaxNumMappings mappings are stored.
func (b *searchBase) capReached() bool {
	return b.opts.MaxNumMappings > 0 && len(b.stored) >= b.opts.MaxNumMappings
}

// preMatchGraph evaluates the graph predicate before searching.
func (b *searchBase) preMatchGraph() bool {
	gm := b.opts.GraphMatcher
	return gm == nil || gm.MatchGraph(b.query, b.target, nil)
}

// postMatch evaluates every mapping-dependent predicate against m.
func (b *searchBase) postMatch(m *Mapping) bool {
	if am := b.opts.AtomMatcher; am.RequiresMapping() {
		for q, t := range m.atoms.Pairs() {
			if !am.MatchAtom(q, b.query, t, b.target, m) {
				return false
			}
		}
	}
	if bm := b.opts.BondMatcher; bm.RequiresMapping() {
		for q, t := range m.bonds.Pairs() {
			if !bm.MatchBond(q, b.query, t, b.target, m) {
				return false
			}
		}
	}
	if gm := b.opts.GraphMatcher; gm != nil && gm.RequiresMapping() {
		return gm.MatchGraph(b.query, b.target, m)
	}

	return true
}

// needsPostMatch reports whether postMatch can reject anything.
func (b *searchBase) needsPostMatch() bool {
	gm := b.opts.GraphMatcher
	return b.opts.AtomMatcher.RequiresMapping() || b.opts.BondMatcher.RequiresMapping() ||
		(gm != nil && gm.RequiresMapping())
}

// isNew checks m against the signature set when deduplication is on.
func (b *searchBase) isNew(m *Mapping) bool {
	if !b.opts.UniqueMappingsOnly {
		return true
	}
	b.sigBuf = mappingSignature(b.sigBuf, m, b.target.NumAtoms(), b.target.NumBonds())

	return b.sigs.insert(b.sigBuf)
}

// storeEmpty records the single empty mapping of a query without rows.
func (b *searchBase) storeEmpty(save bool) {
	if !save {
		return
	}
	h, _ := b.newMapping()
	b.stored = append(b.stored, h)
}

// queryAtomPresent and friends close over the current graphs for equivMatrix.build.
func (b *searchBase) queryAtomPresent(i int) bool  { return b.query.ContainsAtom(i) }
func (b *searchBase) targetAtomVisible(i int) bool { return b.target.ContainsAtom(i) }

func (b *searchBase) matchAtom(q, t int) bool {
	return b.opts.AtomMatcher.MatchAtom(q, b.query, t, b.target, nil)
}

func (b *searchBase) matchBond(q, t int) bool {
	return b.opts.BondMatcher.MatchBond(q, b.query, t, b.target, nil)
}

// queryBondPresent reports a visible query bond with visible endpoints.
func (b *searchBase) queryBondPresent(i int) bool { return bondVisible(b.query, i) }

// targetBondVisible reports a visible target bond with visible endpoints.
func (b *searchBase) targetBondVisible(i int) bool { return bondVisible(b.target, i) }

func bondVisible(g molgraph.Graph, i int) bool {
	if !g.ContainsBond(i) {
		return false
	}
	bd := g.Bond(i)

	return g.ContainsAtom(bd.Begin) && g.ContainsAtom(bd.End)
}
