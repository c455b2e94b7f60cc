// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_grid.go - Grid(rows, cols): a rectangular lattice, a crude stand-in
// for fused ring systems.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewAtoms).
//   • Atom (r,c) has offset r*cols+c; horizontal bonds are emitted before vertical ones.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d cols=%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewAtoms)
		}
		base := addAtoms(m, cfg, rows*cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if err := addBond(methodGrid, m, cfg, at(r, c), at(r, c+1)); err != nil {
					return err
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addBond(methodGrid, m, cfg, at(r, c), at(r+1, c)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
