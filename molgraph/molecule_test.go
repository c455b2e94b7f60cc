package molgraph_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/molgraph"
)

// buildEthanol returns C-C-O with indices 0,1,2 and bonds 0 (C-C), 1 (C-O).
func buildEthanol(t *testing.T) *molgraph.Molecule {
	t.Helper()
	m := molgraph.NewMolecule(3, 2)
	c1 := m.AddElement("C")
	c2 := m.AddElement("C")
	o := m.AddElement("O")
	_, err := m.AddBond(c1, c2, molgraph.Single)
	require.NoError(t, err)
	_, err = m.AddBond(c2, o, molgraph.Single)
	require.NoError(t, err)

	return m
}

func TestMolecule_AddBondErrors(t *testing.T) {
	m := buildEthanol(t)

	_, err := m.AddBond(0, 7, molgraph.Single)
	assert.ErrorIs(t, err, molgraph.ErrAtomNotFound)

	_, err = m.AddBond(1, 1, molgraph.Single)
	assert.ErrorIs(t, err, molgraph.ErrSelfBond)

	_, err = m.AddBond(1, 0, molgraph.Double)
	assert.ErrorIs(t, err, molgraph.ErrDuplicateBond)

	assert.Equal(t, 3, m.NumAtoms())
	assert.Equal(t, 2, m.NumBonds())
}

func TestMolecule_NeighborsAndBondBetween(t *testing.T) {
	m := buildEthanol(t)

	assert.Equal(t, []molgraph.Neighbor{{Atom: 0, Bond: 0}, {Atom: 2, Bond: 1}}, m.Neighbors(1))
	assert.Nil(t, m.Neighbors(-1))

	b, ok := m.BondBetween(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, b)

	_, ok = m.BondBetween(0, 2)
	assert.False(t, ok)

	bond := m.Bond(1)
	assert.Equal(t, 2, bond.Other(1))
	assert.Equal(t, -1, bond.Other(0))
	assert.Equal(t, 1, bond.Shared(m.Bond(0)))
}

func TestMolecule_Visibility(t *testing.T) {
	m := buildEthanol(t)

	require.NoError(t, m.HideAtom(2))
	require.NoError(t, m.HideBond(1))
	assert.False(t, m.ContainsAtom(2))
	assert.False(t, m.ContainsBond(1))
	assert.True(t, m.ContainsAtom(0))

	// Indices are stable while hidden.
	assert.Equal(t, "O", m.Atom(2).Element)

	atoms, bonds := molgraph.CountVisible(m)
	assert.Equal(t, 2, atoms)
	assert.Equal(t, 1, bonds)

	require.NoError(t, m.ShowAtom(2))
	require.NoError(t, m.ShowBond(1))
	assert.True(t, m.ContainsAtom(2))
	assert.True(t, m.ContainsBond(1))

	assert.ErrorIs(t, m.HideAtom(9), molgraph.ErrAtomNotFound)
	assert.ErrorIs(t, m.HideBond(9), molgraph.ErrBondNotFound)
}

func TestMolecule_Clone(t *testing.T) {
	m := buildEthanol(t)
	require.NoError(t, m.HideAtom(0))

	c := m.Clone()
	c.AddElement("N")
	require.NoError(t, c.ShowAtom(0))

	assert.Equal(t, 3, m.NumAtoms())
	assert.False(t, m.ContainsAtom(0), "clone must not share visibility masks")
	assert.Equal(t, 4, c.NumAtoms())
}

func TestView_InducedAndMasked(t *testing.T) {
	m := buildEthanol(t)

	v := molgraph.InducedView(m, []int{0, 1})
	assert.True(t, v.ContainsAtom(1))
	assert.False(t, v.ContainsAtom(2))
	assert.True(t, v.ContainsBond(0))
	assert.False(t, v.ContainsBond(1))

	// Source visibility always wins.
	require.NoError(t, m.HideBond(0))
	assert.False(t, v.ContainsBond(0))

	bm := bitset.New(2).Set(1)
	w := molgraph.NewView(m, nil, bm)
	assert.True(t, w.ContainsAtom(2))
	assert.True(t, w.ContainsBond(1))
	assert.False(t, w.ContainsBond(0))
	assert.Same(t, m, w.Source())
}

func TestBondOrder_String(t *testing.T) {
	assert.Equal(t, "-", molgraph.Single.String())
	assert.Equal(t, "=", molgraph.Double.String())
	assert.Equal(t, "#", molgraph.Triple.String())
	assert.Equal(t, ":", molgraph.AromaticOrder.String())
	assert.Equal(t, "~", molgraph.UnspecifiedOrder.String())
}
