// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_complete.go - Complete(n): K_n, every atom pair bonded.
//
// Complexity:
//   • Time: O(n²) bonds.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodComplete   = "Complete"
	minCompleteAtoms = 1
)

// Complete returns a Constructor that appends K_n; bonds are emitted in
// lexicographic (i, j) order with i < j.
func Complete(n int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minCompleteAtoms {
			return builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addBond(methodComplete, m, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
