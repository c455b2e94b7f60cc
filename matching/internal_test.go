package matching

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molmatch/molgraph"
)

func TestSignatureSet(t *testing.T) {
	var s signatureSet
	a := bitset.New(130).Set(1).Set(129)
	b := bitset.New(130).Set(1).Set(128)

	assert.True(t, s.insert(a))
	assert.False(t, s.insert(a.Clone()))
	assert.True(t, s.insert(b))

	// stored signatures are copies
	a.Set(5)
	assert.True(t, s.insert(a))

	s.reset()
	assert.True(t, s.insert(b))
}

func TestMappingSignature(t *testing.T) {
	var m Mapping
	m.atoms.reset(2, 4)
	m.bonds.reset(1, 3)
	m.atoms.set(0, 3)
	m.atoms.set(1, 1)
	m.bonds.set(0, 2)

	sig := mappingSignature(nil, &m, 4, 3)
	assert.Equal(t, []uint{1, 3, 6}, setBits(sig))

	// reused buffer is cleared
	m.bonds.reset(1, 3)
	sig = mappingSignature(sig, &m, 4, 3)
	assert.Equal(t, []uint{1, 3}, setBits(sig))
}

func setBits(b *bitset.BitSet) []uint {
	var out []uint
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, i)
	}

	return out
}

func TestEquivMatrix(t *testing.T) {
	var e equivMatrix
	present := func(q int) bool { return q != 1 }
	visible := func(t int) bool { return t != 0 }
	match := func(q, t int) bool { return (q+t)%2 == 0 }

	pins := pinSet{}
	pins.add(2, 4)
	pins.add(2, 4)
	pins.add(2, 5) // fails match
	require.Equal(t, []int{4, 5}, pins[2])

	require.True(t, e.build(3, 6, present, visible, match, pins, true))
	assert.Equal(t, []uint{2, 4}, setBits(e.rows[0]))
	assert.Empty(t, setBits(e.rows[1]))
	assert.Equal(t, -1, e.counts[1])
	assert.Equal(t, []uint{4}, setBits(e.rows[2]))
	assert.True(t, e.test(2, 4))
	assert.False(t, e.test(2, 2))
	assert.False(t, e.test(7, 2))

	// a present row without candidates
	pins.add(0, 1)
	assert.False(t, e.build(3, 6, present, visible, match, pins, true))
	assert.True(t, e.build(3, 6, present, visible, match, pins, false))
	assert.Zero(t, e.counts[0])
}

func TestIndexMap(t *testing.T) {
	var im IndexMap
	im.reset(3, 5)
	im.set(0, 4)
	im.set(2, 1)

	tg, ok := im.Target(2)
	assert.True(t, ok)
	assert.Equal(t, 1, tg)
	src, ok := im.Source(4)
	assert.True(t, ok)
	assert.Equal(t, 0, src)
	_, ok = im.Target(1)
	assert.False(t, ok)
	_, ok = im.Source(9)
	assert.False(t, ok)
	assert.Equal(t, 2, im.Len())
	assert.Equal(t, map[int]int{0: 4, 2: 1}, im.AsMap())

	c := im.Clone()
	im.reset(3, 5)
	assert.Zero(t, im.Len())
	assert.Equal(t, 2, c.Len())
}

// TestBondRowsBinding drives extend/retract directly: the third bond of a
// triangle cannot join two star bonds, and a failed extend leaves no trace.
func TestBondRowsBinding(t *testing.T) {
	tri := molgraph.NewMolecule(3, 3)
	star := molgraph.NewMolecule(4, 3)
	for i := 0; i < 3; i++ {
		tri.AddElement("C")
	}
	for i := 0; i < 4; i++ {
		star.AddElement("C")
	}
	tri.MustAddBond(0, 1, molgraph.Single)
	tri.MustAddBond(1, 2, molgraph.Single)
	tri.MustAddBond(2, 0, molgraph.Single)
	for i := 1; i < 4; i++ {
		star.MustAddBond(0, i, molgraph.Single)
	}

	s := NewBondMCS()
	require.NoError(t, s.SetQuery(tri))
	require.NoError(t, s.beginSearch(star))
	s.prepareQuery()
	s.buildMatrices()
	s.buildAssocGraph()
	s.rk.reset(s)
	rows := s.rk.(*bondRows)

	// node ids: row r, target bond k -> 3r+k
	push := func(id int) bool {
		n := s.ag.node(id)
		if !n.adj.IsSuperSet(s.cliqueSet) || !s.rk.extend(s, n) {
			return false
		}
		s.clique = append(s.clique, id)
		s.cliqueSet.Set(uint(id))
		return true
	}
	require.Equal(t, 9, s.ag.numNodes())
	require.True(t, push(0))
	require.True(t, push(4))
	before := append([]int(nil), rows.qToT...)
	refs := append([]int(nil), rows.refs...)
	mark := len(s.pairs)

	assert.False(t, push(8))
	assert.Equal(t, before, rows.qToT)
	assert.Equal(t, refs, rows.refs)
	assert.Len(t, s.pairs, mark)

	s.rk.retract(s, s.ag.node(4), 0)
	for _, v := range rows.qToT {
		assert.Equal(t, unmapped, v)
	}
	assert.Empty(t, s.pairs)
}
