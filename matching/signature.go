// SPDX-License-Identifier: MIT
//
// File: signature.go
// Role: Deduplication of mappings by the set of target atoms and bonds they cover.

package matching

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/zeebo/xxh3"
)

// signatureSet stores fixed-length bitsets. Lookups hash the words with
// xxh3 and confirm with an exact comparison, so collisions never drop a
// distinct mapping.
type signatureSet struct {
	buckets map[xxh3.Uint128][]*bitset.BitSet
	buf     []byte
}

func (s *signatureSet) reset() {
	if s.buckets == nil {
		s.buckets = make(map[xxh3.Uint128][]*bitset.BitSet)
		return
	}
	clear(s.buckets)
}

// insert adds sig and reports whether it was not present. sig is copied.
func (s *signatureSet) insert(sig *bitset.BitSet) bool {
	if s.buckets == nil {
		s.reset()
	}
	s.buf = s.buf[:0]
	for _, w := range sig.Bytes() {
		s.buf = binary.LittleEndian.AppendUint64(s.buf, w)
	}
	key := xxh3.Hash128(s.buf)
	for _, prev := range s.buckets[key] {
		if prev.Equal(sig) {
			return false
		}
	}
	s.buckets[key] = append(s.buckets[key], sig.Clone())

	return true
}

// mappingSignature writes into sig the target atoms of m at [0, nta) and the
// target bonds at [nta, nta+ntb).
func mappingSignature(sig *bitset.BitSet, m *Mapping, nta, ntb int) *bitset.BitSet {
	size := uint(nta + ntb)
	if sig == nil || sig.Len() != size {
		sig = bitset.New(size)
	} else {
		sig.ClearAll()
	}
	for _, t := range m.atoms.Pairs() {
		sig.Set(uint(t))
	}
	for _, t := range m.bonds.Pairs() {
		sig.Set(uint(nta + t))
	}

	return sig
}
