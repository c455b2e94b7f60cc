// SPDX-License-Identifier: MIT
//
// File: molecule.go
// Role: Mutable in-memory Graph with visibility masks.
//
// Determinism:
//   - Atoms and bonds are numbered in insertion order.
//   - Neighbors(a) lists incident bonds in insertion order.

package molgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Molecule is an undirected simple graph of atoms and bonds.
//
// hiddenAtoms/hiddenBonds record elements excluded from the visible
// subgraph; a hidden element keeps its index.
type Molecule struct {
	atoms []Atom
	bonds []Bond
	adj   [][]Neighbor // adj[a] = incident (atom, bond) pairs of atom a

	hiddenAtoms *bitset.BitSet
	hiddenBonds *bitset.BitSet
}

// NewMolecule returns an empty Molecule with capacity hints for atoms and bonds.
func NewMolecule(atomHint, bondHint int) *Molecule {
	if atomHint < 0 {
		atomHint = 0
	}
	if bondHint < 0 {
		bondHint = 0
	}

	return &Molecule{
		atoms:       make([]Atom, 0, atomHint),
		bonds:       make([]Bond, 0, bondHint),
		adj:         make([][]Neighbor, 0, atomHint),
		hiddenAtoms: bitset.New(0),
		hiddenBonds: bitset.New(0),
	}
}

// AddAtom appends a visible atom and returns its index. Complexity O(1) amortized.
func (m *Molecule) AddAtom(a Atom) int {
	m.atoms = append(m.atoms, a)
	m.adj = append(m.adj, nil)

	return len(m.atoms) - 1
}

// AddElement is shorthand for AddAtom(Atom{Element: element}).
func (m *Molecule) AddElement(element string) int {
	return m.AddAtom(Atom{Element: element})
}

// AddBond joins atoms a and b with a visible bond of the given order and
// returns its index.
//
// Errors:
//   - ErrAtomNotFound if a or b is outside the atom index space.
//   - ErrSelfBond if a == b.
//   - ErrDuplicateBond if a and b are already bonded.
//
// Complexity: O(min(deg a, deg b)).
func (m *Molecule) AddBond(a, b int, order BondOrder) (int, error) {
	if !m.validAtom(a) || !m.validAtom(b) {
		return -1, fmt.Errorf("molgraph: AddBond(%d,%d): %w", a, b, ErrAtomNotFound)
	}
	if a == b {
		return -1, fmt.Errorf("molgraph: AddBond(%d,%d): %w", a, b, ErrSelfBond)
	}
	if _, ok := m.BondBetween(a, b); ok {
		return -1, fmt.Errorf("molgraph: AddBond(%d,%d): %w", a, b, ErrDuplicateBond)
	}

	idx := len(m.bonds)
	m.bonds = append(m.bonds, Bond{Begin: a, End: b, Order: order})
	m.adj[a] = append(m.adj[a], Neighbor{Atom: b, Bond: idx})
	m.adj[b] = append(m.adj[b], Neighbor{Atom: a, Bond: idx})

	return idx, nil
}

// MustAddBond is AddBond for fixtures; it panics on error.
func (m *Molecule) MustAddBond(a, b int, order BondOrder) int {
	idx, err := m.AddBond(a, b, order)
	if err != nil {
		panic(err)
	}

	return idx
}

// SetAtom replaces the record of atom i, keeping its bonds.
func (m *Molecule) SetAtom(i int, a Atom) error {
	if !m.validAtom(i) {
		return fmt.Errorf("molgraph: SetAtom(%d): %w", i, ErrAtomNotFound)
	}
	m.atoms[i] = a

	return nil
}

// NumAtoms returns the size of the atom index space, hidden atoms included.
func (m *Molecule) NumAtoms() int { return len(m.atoms) }

// NumBonds returns the size of the bond index space, hidden bonds included.
func (m *Molecule) NumBonds() int { return len(m.bonds) }

// Atom returns the record of atom i. It panics if i is out of range.
func (m *Molecule) Atom(i int) Atom { return m.atoms[i] }

// Bond returns the record of bond i. It panics if i is out of range.
func (m *Molecule) Bond(i int) Bond { return m.bonds[i] }

// ContainsAtom reports whether atom i exists and is visible.
func (m *Molecule) ContainsAtom(i int) bool {
	return m.validAtom(i) && !m.hiddenAtoms.Test(uint(i))
}

// ContainsBond reports whether bond i exists and is visible.
// Visibility of the endpoint atoms is not consulted.
func (m *Molecule) ContainsBond(i int) bool {
	return i >= 0 && i < len(m.bonds) && !m.hiddenBonds.Test(uint(i))
}

// Neighbors returns the adjacency of atom, or nil if atom is out of range.
func (m *Molecule) Neighbors(atom int) []Neighbor {
	if !m.validAtom(atom) {
		return nil
	}

	return m.adj[atom]
}

// BondBetween scans the smaller adjacency of a and b for a joining bond.
// Hidden bonds are reported too; callers check ContainsBond.
func (m *Molecule) BondBetween(a, b int) (int, bool) {
	if !m.validAtom(a) || !m.validAtom(b) {
		return -1, false
	}
	from, to := a, b
	if len(m.adj[b]) < len(m.adj[a]) {
		from, to = b, a
	}
	for _, nb := range m.adj[from] {
		if nb.Atom == to {
			return nb.Bond, true
		}
	}

	return -1, false
}

// HideAtom removes atom i from the visible subgraph. Incident bonds keep their
// own visibility; the engine skips them because the endpoint is not contained.
func (m *Molecule) HideAtom(i int) error {
	if !m.validAtom(i) {
		return fmt.Errorf("molgraph: HideAtom(%d): %w", i, ErrAtomNotFound)
	}
	m.hiddenAtoms.Set(uint(i))

	return nil
}

// ShowAtom restores atom i to the visible subgraph.
func (m *Molecule) ShowAtom(i int) error {
	if !m.validAtom(i) {
		return fmt.Errorf("molgraph: ShowAtom(%d): %w", i, ErrAtomNotFound)
	}
	m.hiddenAtoms.Clear(uint(i))

	return nil
}

// HideBond removes bond i from the visible subgraph.
func (m *Molecule) HideBond(i int) error {
	if i < 0 || i >= len(m.bonds) {
		return fmt.Errorf("molgraph: HideBond(%d): %w", i, ErrBondNotFound)
	}
	m.hiddenBonds.Set(uint(i))

	return nil
}

// ShowBond restores bond i to the visible subgraph.
func (m *Molecule) ShowBond(i int) error {
	if i < 0 || i >= len(m.bonds) {
		return fmt.Errorf("molgraph: ShowBond(%d): %w", i, ErrBondNotFound)
	}
	m.hiddenBonds.Clear(uint(i))

	return nil
}

// ShowAll clears both visibility masks.
func (m *Molecule) ShowAll() {
	m.hiddenAtoms.ClearAll()
	m.hiddenBonds.ClearAll()
}

// Clone returns a deep copy, visibility masks included.
func (m *Molecule) Clone() *Molecule {
	out := &Molecule{
		atoms:       append([]Atom(nil), m.atoms...),
		bonds:       append([]Bond(nil), m.bonds...),
		adj:         make([][]Neighbor, len(m.adj)),
		hiddenAtoms: m.hiddenAtoms.Clone(),
		hiddenBonds: m.hiddenBonds.Clone(),
	}
	for i, nbs := range m.adj {
		out.adj[i] = append([]Neighbor(nil), nbs...)
	}

	return out
}

func (m *Molecule) validAtom(i int) bool { return i >= 0 && i < len(m.atoms) }
