// SPDX-License-Identifier: MIT
//
// File: mapping.go
// Role: Bidirectional partial injective index maps and the Mapping result type.

package matching

import (
	"iter"

	"github.com/katalvlaran/molmatch/molgraph"
)

const unmapped = -1

// IndexMap is a partial injective map from query indices to target indices,
// readable in both directions in O(1).
type IndexMap struct {
	fwd []int // query -> target, unmapped if absent
	rev []int // target -> query, unmapped if absent
	n   int
}

// reset sizes the map for nq query and nt target indices and clears it.
func (im *IndexMap) reset(nq, nt int) {
	im.fwd = resizeFill(im.fwd, nq)
	im.rev = resizeFill(im.rev, nt)
	im.n = 0
}

func resizeFill(s []int, n int) []int {
	if cap(s) < n {
		s = make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = unmapped
	}

	return s
}

// set records q -> t. Both sides must be unmapped.
func (im *IndexMap) set(q, t int) {
	im.fwd[q] = t
	im.rev[t] = q
	im.n++
}

// Target returns the target index mapped from query index q.
func (im *IndexMap) Target(q int) (int, bool) {
	if q < 0 || q >= len(im.fwd) || im.fwd[q] == unmapped {
		return unmapped, false
	}

	return im.fwd[q], true
}

// Source returns the query index mapped onto target index t.
func (im *IndexMap) Source(t int) (int, bool) {
	if t < 0 || t >= len(im.rev) || im.rev[t] == unmapped {
		return unmapped, false
	}

	return im.rev[t], true
}

// Len returns the number of mapped pairs.
func (im *IndexMap) Len() int { return im.n }

// Pairs yields (query, target) pairs in ascending query order.
func (im *IndexMap) Pairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for q, t := range im.fwd {
			if t == unmapped {
				continue
			}
			if !yield(q, t) {
				return
			}
		}
	}
}

// AsMap copies the pairs into a Go map.
func (im *IndexMap) AsMap() map[int]int {
	out := make(map[int]int, im.n)
	for q, t := range im.Pairs() {
		out[q] = t
	}

	return out
}

// Clone returns an independent copy.
func (im *IndexMap) Clone() *IndexMap {
	return &IndexMap{
		fwd: append([]int(nil), im.fwd...),
		rev: append([]int(nil), im.rev...),
		n:   im.n,
	}
}

// Mapping is one atom and bond correspondence between a query and a target.
//
// Mappings returned by a searcher are pooled: they stay valid until the next
// SetQuery or search call on the same searcher. Use Clone to keep one longer.
type Mapping struct {
	atoms IndexMap
	bonds IndexMap
}

// Atoms returns the atom correspondence.
func (m *Mapping) Atoms() *IndexMap { return &m.atoms }

// Bonds returns the bond correspondence.
func (m *Mapping) Bonds() *IndexMap { return &m.bonds }

// Clone returns a copy that is not owned by any searcher pool.
func (m *Mapping) Clone() *Mapping {
	return &Mapping{atoms: *m.atoms.Clone(), bonds: *m.bonds.Clone()}
}

func (m *Mapping) reset(q, t molgraph.Graph) {
	m.atoms.reset(q.NumAtoms(), t.NumAtoms())
	m.bonds.reset(q.NumBonds(), t.NumBonds())
}
