// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_cycle.go - Cycle(n): a ring of n atoms.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewAtoms).
//   • Emits bonds in stable order i -> (i+1)%n for i=0..n-1.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodCycle   = "Cycle"
	minCycleAtoms = 3
)

// Cycle returns a Constructor that appends the ring C_n.
func Cycle(n int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minCycleAtoms {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleAtoms, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, n)
		for i := 0; i < n; i++ {
			if err := addBond(methodCycle, m, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
