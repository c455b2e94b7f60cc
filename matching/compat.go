// SPDX-License-Identifier: MIT
//
// File: compat.go
// Role: Compatibility layer: equivalence matrices and pinning constraints.
//
// An equivalence matrix holds one bitset per query element over the target
// elements that pass the local predicate and any pin on that element. Rows of
// query elements that are not visible stay nil.

package matching

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// pinSet maps a query index to the target indices it is restricted to.
// Several pins on one query index form a union.
type pinSet map[int][]int

func (p pinSet) add(q, t int) {
	if !slices.Contains(p[q], t) {
		p[q] = append(p[q], t)
	}
}

// equivMatrix is the per-query-element candidate table.
type equivMatrix struct {
	rows   []*bitset.BitSet
	counts []int // popcount per row, -1 for absent rows
}

// build fills the matrix for nq query and nt target elements. present and
// visible report query and target membership; match is the local predicate.
// In strict mode it stops and returns false as soon as a present query
// element ends with an empty row; otherwise empty rows are kept (an MCS row
// without candidates only forces a null node).
func (e *equivMatrix) build(nq, nt int, present, visible func(int) bool, match func(q, t int) bool, pins pinSet, strict bool) bool {
	if cap(e.rows) < nq {
		e.rows = append(e.rows[:cap(e.rows)], make([]*bitset.BitSet, nq-cap(e.rows))...)
	}
	e.rows = e.rows[:nq]
	e.counts = resizeFill(e.counts, nq)

	for q := 0; q < nq; q++ {
		row := e.rows[q]
		if row == nil || row.Len() != uint(nt) {
			row = bitset.New(uint(nt))
			e.rows[q] = row
		} else {
			row.ClearAll()
		}
		if !present(q) {
			continue
		}

		if allowed, pinned := pins[q]; pinned {
			for _, t := range allowed {
				if t < nt && visible(t) && match(q, t) {
					row.Set(uint(t))
				}
			}
		} else {
			for t := 0; t < nt; t++ {
				if visible(t) && match(q, t) {
					row.Set(uint(t))
				}
			}
		}

		e.counts[q] = int(row.Count())
		if strict && e.counts[q] == 0 {
			return false
		}
	}

	return true
}

// test reports whether target t is a candidate of query element q.
func (e *equivMatrix) test(q, t int) bool {
	if q < 0 || q >= len(e.rows) || t < 0 {
		return false
	}

	return e.rows[q].Test(uint(t))
}
