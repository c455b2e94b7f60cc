package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/builder"
	"github.com/katalvlaran/molmatch/matching"
	"github.com/katalvlaran/molmatch/molgraph"
)

func TestRowKind_String(t *testing.T) {
	assert.Equal(t, "atoms", matching.AtomRows.String())
	assert.Equal(t, "bonds", matching.BondRows.String())
	assert.Equal(t, "RowKind(7)", matching.RowKind(7).String())
	assert.Panics(t, func() { matching.NewMCSearch(matching.RowKind(7)) })
}

func TestAtomMCS_UnbondedPairWithOneCandidate(t *testing.T) {
	query := mol(t, []string{"C", "N"})
	target := mol(t, []string{"C", "O"}, [2]int{0, 1})

	s := matching.NewAtomMCS(matching.WithMinSubstructureSize(1))
	require.NoError(t, s.SetQuery(query))
	ok, err := s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, s.NumMappings())

	m := s.Mapping(0)
	assert.Equal(t, 1, m.Atoms().Len())
	ta, ok := m.Atoms().Target(0)
	require.True(t, ok)
	assert.Equal(t, 0, ta)
	_, ok = m.Atoms().Target(1)
	assert.False(t, ok)
}

func TestAtomMCS_FullEmbedding(t *testing.T) {
	query := build(t, builder.Cycle(3))
	target := build(t, builder.Cycle(3))

	s := matching.NewAtomMCS()
	require.NoError(t, s.SetQuery(query))
	ok, err := s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 6, s.NumMappings())
	for _, m := range s.Mappings() {
		assert.Equal(t, 3, m.Atoms().Len())
		assert.Equal(t, 3, m.Bonds().Len())
		requireConsistent(t, query, target, m)
	}
	st := s.Stats()
	assert.Equal(t, 9, st.Nodes)
	assert.Equal(t, 18, st.Edges)

	s.SetUniqueMappingsOnly(true)
	_, err = s.FindAllMappings(target)
	require.NoError(t, err)
	assert.Equal(t, 1, s.NumMappings())

	s.SetUniqueMappingsOnly(false)
	s.SetMaxNumMappings(2)
	_, err = s.FindAllMappings(target)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumMappings())
}

func TestAtomMCS_MinSubstructureSize(t *testing.T) {
	query := build(t, builder.Cycle(3))
	target := build(t, builder.Path(3))

	s := matching.NewAtomMCS()
	require.NoError(t, s.SetQuery(query))

	for _, tc := range []struct {
		min  int
		want bool
	}{{1, true}, {2, true}, {3, false}, {4, false}} {
		s.SetMinSubstructureSize(tc.min)
		assert.Equal(t, tc.min, s.MinSubstructureSize())
		ok, err := s.MappingExists(target)
		require.NoError(t, err)
		assert.Equal(t, tc.want, ok, "min %d", tc.min)
		assert.Zero(t, s.NumMappings(), "MappingExists stores nothing")
	}

	s.SetMinSubstructureSize(1)
	ok, err := s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	for _, m := range s.Mappings() {
		assert.Equal(t, 2, m.Atoms().Len(), "a triangle shares at most one bond with a path")
		requireConsistent(t, query, target, m)
	}
}

func TestAtomMCS_FindMaxBondMappings(t *testing.T) {
	// path 0-1-2 plus isolated atom 3
	query := mol(t, []string{"C", "C", "C", "C"}, [2]int{0, 1}, [2]int{1, 2})
	target := build(t, builder.Path(3))

	s := matching.NewAtomMCS()
	require.NoError(t, s.SetQuery(query))

	ok, err := s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	// {0,1,2}: 2, {0,1,3}: 4, {1,2,3}: 4, {0,2,3}: 6
	assert.Equal(t, 16, s.NumMappings())

	ok, err = s.FindMaxBondMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, s.NumMappings())
	for _, m := range s.Mappings() {
		assert.Equal(t, 3, m.Atoms().Len())
		assert.Equal(t, 2, m.Bonds().Len())
		_, ok := m.Atoms().Target(3)
		assert.False(t, ok)
		requireConsistent(t, query, target, m)
	}

	_, err = s.FindMaxAtomMappings(target)
	assert.ErrorIs(t, err, matching.ErrWrongRowKind)
}

func TestAtomMCS_MonotoneUnderTargetGrowth(t *testing.T) {
	query := buildSeeded(t, 100, builder.RandomSparse(5, 0.5))
	size := func(s *matching.MCSearch, target molgraph.Graph) int {
		ok, err := s.FindAllMappings(target)
		require.NoError(t, err)
		if !ok {
			return 0
		}
		requireConsistent(t, query, target, s.Mapping(0))
		return s.Mapping(0).Atoms().Len()
	}

	s := matching.NewAtomMCS(matching.WithMaxNumMappings(1))
	require.NoError(t, s.SetQuery(query))
	for seed := int64(1); seed <= 10; seed++ {
		small := buildSeeded(t, seed, builder.RandomSparse(6, 0.4))
		grown := small.Clone()
		extra := grown.AddElement("C")
		grown.MustAddBond(0, extra, molgraph.Single)
		grown.MustAddBond(grown.NumAtoms()-2, extra, molgraph.Single)

		a, b := size(s, small), size(s, grown)
		assert.GreaterOrEqual(t, b, a, "seed %d", seed)
	}
}

func TestAtomMCS_AgreesWithExactMatch(t *testing.T) {
	query := build(t, builder.Path(4))
	for seed := int64(1); seed <= 6; seed++ {
		target := buildSeeded(t, seed, builder.RandomSparse(9, 0.35))

		exact := matching.NewSubstructureSearch()
		require.NoError(t, exact.SetQuery(query))
		embeds, err := exact.MappingExists(target)
		require.NoError(t, err)

		mcs := matching.NewAtomMCS(matching.WithMaxNumMappings(1))
		require.NoError(t, mcs.SetQuery(query))
		ok, err := mcs.FindAllMappings(target)
		require.NoError(t, err)
		require.True(t, ok)
		full := mcs.Mapping(0).Atoms().Len() == query.NumAtoms()
		assert.Equal(t, embeds, full, "seed %d", seed)
	}
}

func TestAtomMCS_GraphPredicate(t *testing.T) {
	s := matching.NewAtomMCS(matching.WithGraphMatcher(matching.MinMappedAtoms(3)))
	require.NoError(t, s.SetQuery(build(t, builder.Cycle(3))))

	ok, err := s.FindAllMappings(build(t, builder.Path(3)))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, s.NumMappings())

	ok, err = s.FindAllMappings(build(t, builder.Wheel(5)))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAtomMCS_Constraints(t *testing.T) {
	s := matching.NewAtomMCS()
	require.NoError(t, s.SetQuery(build(t, builder.Path(2))))
	require.NoError(t, s.AddAtomMappingConstraint(0, 3))

	_, err := s.FindAllMappings(build(t, builder.Path(5)))
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumMappings())
	for _, m := range s.Mappings() {
		ta, _ := m.Atoms().Target(0)
		assert.Equal(t, 3, ta)
	}
}

func TestMCS_EmptyQuery(t *testing.T) {
	for _, kind := range []matching.RowKind{matching.AtomRows, matching.BondRows} {
		s := matching.NewMCSearch(kind)
		assert.Equal(t, kind, s.Kind())
		require.NoError(t, s.SetQuery(molgraph.NewMolecule(0, 0)))
		ok, err := s.MappingExists(build(t, builder.Path(3)))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.FindAllMappings(build(t, builder.Path(3)))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, s.NumMappings())
	}
}

func TestMCS_Errors(t *testing.T) {
	s := matching.NewBondMCS()
	_, err := s.FindAllMappings(build(t, builder.Path(2)))
	assert.ErrorIs(t, err, matching.ErrNoQuery)
	assert.ErrorIs(t, s.SetQuery(nil), matching.ErrNilGraph)

	require.NoError(t, s.SetQuery(build(t, builder.Path(2))))
	_, err = s.MappingExists(nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)
	_, err = s.FindMaxBondMappings(build(t, builder.Path(2)))
	assert.ErrorIs(t, err, matching.ErrWrongRowKind)
}

func TestMCS_Stop(t *testing.T) {
	var s *matching.MCSearch
	gm := matching.GraphMatchFunc(func(_, _ molgraph.Graph, m *matching.Mapping) bool {
		if m != nil {
			s.Stop()
		}
		return true
	})
	s = matching.NewAtomMCS(matching.WithGraphMatcher(gm))
	require.NoError(t, s.SetQuery(build(t, builder.Cycle(4))))

	ok, err := s.FindAllMappings(build(t, builder.Complete(6)))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, s.NumMappings())
	assert.True(t, s.Stats().Stopped)
}

func TestBondMCS_TriangleVersusStar(t *testing.T) {
	triangle := build(t, builder.Cycle(3))
	star := build(t, builder.Star(4))

	tests := []struct {
		name          string
		query, target *molgraph.Molecule
	}{
		{"triangle in star", triangle, star},
		{"star in triangle", star, triangle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := matching.NewBondMCS()
			require.NoError(t, s.SetQuery(tc.query))
			ok, err := s.FindAllMappings(tc.target)
			require.NoError(t, err)
			require.True(t, ok)
			// any two of the three bonds, onto any two of the three, in either order
			assert.Equal(t, 18, s.NumMappings())
			for _, m := range s.Mappings() {
				assert.Equal(t, 2, m.Bonds().Len(), "all three bonds would need K3 = K1,3")
				assert.Equal(t, 3, m.Atoms().Len())
				requireConsistent(t, tc.query, tc.target, m)
			}

			s.SetMinSubstructureSize(3)
			ok, err = s.MappingExists(tc.target)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBondMCS_SameGraph(t *testing.T) {
	for _, g := range []*molgraph.Molecule{
		build(t, builder.Cycle(3)),
		build(t, builder.Star(4)),
		build(t, builder.Path(4)),
	} {
		s := matching.NewBondMCS(matching.WithMinSubstructureSize(g.NumBonds()))
		require.NoError(t, s.SetQuery(g))
		ok, err := s.FindAllMappings(g)
		require.NoError(t, err)
		require.True(t, ok)
		for _, m := range s.Mappings() {
			assert.Equal(t, g.NumBonds(), m.Bonds().Len())
			assert.Equal(t, g.NumAtoms(), m.Atoms().Len())
			requireConsistent(t, g, g, m)
		}
	}
}

func TestBondMCS_FindMaxAtomMappings(t *testing.T) {
	// path 0-1-2 and a separate bond 3-4
	query := mol(t, []string{"C", "C", "C", "C", "C"}, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})
	target := build(t, builder.Path(4))

	s := matching.NewBondMCS()
	require.NoError(t, s.SetQuery(query))

	ok, err := s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, s.NumMappings())
	for _, m := range s.Mappings() {
		assert.Equal(t, 2, m.Bonds().Len())
		requireConsistent(t, query, target, m)
	}

	ok, err = s.FindMaxAtomMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, s.NumMappings())
	for _, m := range s.Mappings() {
		assert.Equal(t, 4, m.Atoms().Len(), "two disjoint bonds")
		requireConsistent(t, query, target, m)
	}
}

func TestBondMCS_EndpointCompatibility(t *testing.T) {
	// C-N never matches C-O even though both bonds are single
	query := mol(t, []string{"C", "N"}, [2]int{0, 1})
	target := mol(t, []string{"O", "C", "C"}, [2]int{0, 1}, [2]int{1, 2})

	s := matching.NewBondMCS()
	require.NoError(t, s.SetQuery(query))
	ok, err := s.MappingExists(target)
	require.NoError(t, err)
	assert.False(t, ok)

	// reversed orientation is accepted
	require.NoError(t, s.SetQuery(mol(t, []string{"C", "O"}, [2]int{0, 1})))
	ok, err = s.FindAllMappings(target)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, s.NumMappings())
	ta, _ := s.Mapping(0).Atoms().Target(1)
	assert.Equal(t, 0, ta, "query O lands on target O")
}
