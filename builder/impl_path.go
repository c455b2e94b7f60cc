// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_path.go - Path(n): a chain of n atoms and n-1 bonds.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodPath   = "Path"
	minPathAtoms = 1
)

// Path returns a Constructor that appends the chain P_n: bonds i–(i+1).
// A single atom (n == 1) is allowed.
func Path(n int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minPathAtoms {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addBond(methodPath, m, cfg, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
