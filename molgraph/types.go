// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph contract, value records and sentinel errors.

package molgraph

import "errors"

// Sentinel errors for molecule construction.
var (
	// ErrAtomNotFound indicates an operation referenced an atom index outside the graph.
	ErrAtomNotFound = errors.New("molgraph: atom not found")

	// ErrBondNotFound indicates an operation referenced a bond index outside the graph.
	ErrBondNotFound = errors.New("molgraph: bond not found")

	// ErrSelfBond indicates a bond whose two endpoints are the same atom.
	ErrSelfBond = errors.New("molgraph: bond endpoints must differ")

	// ErrDuplicateBond indicates a second bond between an already bonded atom pair.
	ErrDuplicateBond = errors.New("molgraph: atoms are already bonded")
)

// BondOrder is the formal order of a bond.
type BondOrder uint8

const (
	// UnspecifiedOrder on a query bond matches any target order under OrderBond.
	UnspecifiedOrder BondOrder = iota
	Single
	Double
	Triple
	// AromaticOrder marks a delocalized bond.
	AromaticOrder
)

// String returns the SMILES-like symbol of the order.
func (o BondOrder) String() string {
	switch o {
	case Single:
		return "-"
	case Double:
		return "="
	case Triple:
		return "#"
	case AromaticOrder:
		return ":"
	default:
		return "~"
	}
}

// Atom is the value record of a graph vertex.
type Atom struct {
	// Element is the element symbol ("C", "N", ...). "*" is conventionally a wildcard.
	Element string

	// Charge is the formal charge.
	Charge int

	// Aromatic flags atoms perceived as aromatic by the caller.
	Aromatic bool

	// Label is free-form caller data (for example an atom-map number).
	Label string
}

// Bond is the value record of an undirected graph edge.
type Bond struct {
	// Begin and End are the endpoint atom indices (Begin != End).
	Begin, End int

	// Order is the formal bond order.
	Order BondOrder
}

// Other returns the endpoint of b opposite to atom, or -1 if atom is not an endpoint.
func (b Bond) Other(atom int) int {
	switch atom {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	default:
		return -1
	}
}

// Shared returns the atom common to b and c, or -1 if they share none.
// Two distinct bonds in a simple graph share at most one atom.
func (b Bond) Shared(c Bond) int {
	if b.Begin == c.Begin || b.Begin == c.End {
		return b.Begin
	}
	if b.End == c.Begin || b.End == c.End {
		return b.End
	}

	return -1
}

// Neighbor pairs an adjacent atom with the bond leading to it.
type Neighbor struct {
	Atom int
	Bond int
}

// Graph is the read-only view of a molecular graph consumed by the matcher.
//
// Indices are dense and stable for the lifetime of the graph: atoms are
// numbered 0..NumAtoms()-1 and bonds 0..NumBonds()-1. ContainsAtom and
// ContainsBond report whether an index is currently visible.
type Graph interface {
	NumAtoms() int
	NumBonds() int

	// Atom and Bond return the records at index i. Behavior for an index
	// outside the index space is implementation defined (Molecule panics).
	Atom(i int) Atom
	Bond(i int) Bond

	ContainsAtom(i int) bool
	ContainsBond(i int) bool

	// Neighbors returns the (atom, bond) pairs adjacent to atom, including
	// hidden ones. The returned slice must not be modified.
	Neighbors(atom int) []Neighbor

	// BondBetween returns the index of the bond joining a and b.
	BondBetween(a, b int) (int, bool)
}
