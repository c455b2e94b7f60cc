package matching_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/matching"
	"github.com/katalvlaran/molmatch/molgraph"
)

// mol builds a molecule from element symbols and single-bond atom pairs.
func mol(t testing.TB, elements []string, bonds ...[2]int) *molgraph.Molecule {
	t.Helper()
	m := molgraph.NewMolecule(len(elements), len(bonds))
	for _, e := range elements {
		m.AddElement(e)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b[0], b[1], molgraph.Single)
		require.NoError(t, err)
	}

	return m
}

func build(t testing.TB, cons ...builder.Constructor) *molgraph.Molecule {
	t.Helper()
	m, err := builder.BuildMolecule(nil, cons...)
	require.NoError(t, err)

	return m
}

func buildSeeded(t testing.TB, seed int64, cons ...builder.Constructor) *molgraph.Molecule {
	t.Helper()
	m, err := builder.BuildMolecule([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
	require.NoError(t, err)

	return m
}

// requireConsistent checks that every mapped query bond lands on a target
// bond joining the images of its endpoints, and that both maps are injective.
func requireConsistent(t testing.TB, q, tg molgraph.Graph, m *matching.Mapping) {
	t.Helper()
	seen := make(map[int]bool)
	for qa, ta := range m.Atoms().Pairs() {
		require.False(t, seen[ta], "target atom %d used twice", ta)
		seen[ta] = true
		back, ok := m.Atoms().Source(ta)
		require.True(t, ok)
		require.Equal(t, qa, back)
	}
	for qb, tb := range m.Bonds().Pairs() {
		qbd, tbd := q.Bond(qb), tg.Bond(tb)
		b, okB := m.Atoms().Target(qbd.Begin)
		e, okE := m.Atoms().Target(qbd.End)
		require.True(t, okB && okE, "query bond %d mapped without its atoms", qb)
		require.ElementsMatch(t, []int{tbd.Begin, tbd.End}, []int{b, e}, "query bond %d", qb)
	}
}

// signature renders the covered target atoms and bonds of m.
func signature(m *matching.Mapping) string {
	var atoms, bonds []int
	for _, t := range m.Atoms().Pairs() {
		atoms = append(atoms, t)
	}
	for _, t := range m.Bonds().Pairs() {
		bonds = append(bonds, t)
	}
	slices.Sort(atoms)
	slices.Sort(bonds)

	return fmt.Sprint(atoms, bonds)
}
