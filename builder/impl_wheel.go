// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_wheel.go - Wheel(n): a hub bonded to every atom of a ring C_{n-1}.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodWheel   = "Wheel"
	minWheelAtoms = 4
)

// Wheel returns a Constructor that appends W_n (n atoms in total). The hub is
// the first atom of the component; ring bonds are emitted before spokes.
func Wheel(n int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minWheelAtoms {
			return builderErrorf(methodWheel, "n=%d < min=%d: %w", n, minWheelAtoms, ErrTooFewAtoms)
		}
		hub := addAtoms(m, cfg, n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addBond(methodWheel, m, cfg, hub+1+i, hub+1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addBond(methodWheel, m, cfg, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
