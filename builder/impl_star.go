// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_star.go - Star(n): one center atom bonded to n-1 leaves (K1,n-1).

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodStar   = "Star"
	minStarAtoms = 2
)

// Star returns a Constructor that appends a star with n atoms in total.
// The center is the first atom of the component.
func Star(n int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minStarAtoms {
			return builderErrorf(methodStar, "n=%d < min=%d: %w", n, minStarAtoms, ErrTooFewAtoms)
		}
		center := addAtoms(m, cfg, n)
		for i := 1; i < n; i++ {
			if err := addBond(methodStar, m, cfg, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}
