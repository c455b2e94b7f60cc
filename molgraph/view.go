// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating restriction of a Graph to a subset of atoms and bonds.
// Determinism:
//   - Preserves atom and bond indices of the source graph.

package molgraph

import "github.com/bits-and-blooms/bitset"

// View restricts a source Graph to the atoms and bonds selected by two masks.
// An element is visible in the view only if it is visible in the source and
// selected by the mask. The source is never mutated.
type View struct {
	src   Graph
	atoms *bitset.BitSet
	bonds *bitset.BitSet
}

// NewView returns a View of g limited to atoms and bonds. A nil mask selects
// every element of that kind. The masks are cloned.
func NewView(g Graph, atoms, bonds *bitset.BitSet) *View {
	v := &View{src: g}
	if atoms != nil {
		v.atoms = atoms.Clone()
	}
	if bonds != nil {
		v.bonds = bonds.Clone()
	}

	return v
}

// InducedView returns the subgraph of g induced by atoms: every selected atom
// and every source-visible bond whose endpoints are both selected.
//
// Complexity: O(NumBonds).
func InducedView(g Graph, atoms []int) *View {
	am := bitset.New(uint(g.NumAtoms()))
	for _, a := range atoms {
		if a >= 0 && a < g.NumAtoms() {
			am.Set(uint(a))
		}
	}
	bm := bitset.New(uint(g.NumBonds()))
	for i := 0; i < g.NumBonds(); i++ {
		b := g.Bond(i)
		if am.Test(uint(b.Begin)) && am.Test(uint(b.End)) {
			bm.Set(uint(i))
		}
	}

	return &View{src: g, atoms: am, bonds: bm}
}

// Source returns the underlying graph.
func (v *View) Source() Graph { return v.src }

func (v *View) NumAtoms() int              { return v.src.NumAtoms() }
func (v *View) NumBonds() int              { return v.src.NumBonds() }
func (v *View) Atom(i int) Atom            { return v.src.Atom(i) }
func (v *View) Bond(i int) Bond            { return v.src.Bond(i) }
func (v *View) Neighbors(a int) []Neighbor { return v.src.Neighbors(a) }

// ContainsAtom reports whether atom i is visible in both the source and the view.
func (v *View) ContainsAtom(i int) bool {
	if !v.src.ContainsAtom(i) {
		return false
	}

	return v.atoms == nil || v.atoms.Test(uint(i))
}

// ContainsBond reports whether bond i is visible in both the source and the view.
func (v *View) ContainsBond(i int) bool {
	if !v.src.ContainsBond(i) {
		return false
	}

	return v.bonds == nil || v.bonds.Test(uint(i))
}

// BondBetween delegates to the source; callers check ContainsBond.
func (v *View) BondBetween(a, b int) (int, bool) { return v.src.BondBetween(a, b) }

// CountVisible returns the number of visible atoms and bonds of g.
// A bond counts only when it and both its endpoints are visible.
func CountVisible(g Graph) (atoms, bonds int) {
	for i := 0; i < g.NumAtoms(); i++ {
		if g.ContainsAtom(i) {
			atoms++
		}
	}
	for i := 0; i < g.NumBonds(); i++ {
		if !g.ContainsBond(i) {
			continue
		}
		b := g.Bond(i)
		if g.ContainsAtom(b.Begin) && g.ContainsAtom(b.End) {
			bonds++
		}
	}

	return atoms, bonds
}
