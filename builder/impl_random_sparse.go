// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • RNG required when 0 < p < 1 (ErrNeedRandSource otherwise).
//   • Pairs (i<j) are sampled in lexicographic order, one Float64 draw per
//     pair, so a fixed seed yields a fixed molecule.

package builder

import "github.com/katalvlaran/molmatch/molgraph"

const (
	methodRandomSparse   = "RandomSparse"
	minRandomSparseAtoms = 1
	probMin, probMax     = 0.0, 1.0
)

// RandomSparse returns a Constructor that appends G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(m *molgraph.Molecule, cfg builderConfig) error {
		if n < minRandomSparseAtoms {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, minRandomSparseAtoms, ErrTooFewAtoms)
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "p=%.6f: %w", p, ErrNeedRandSource)
		}

		base := addAtoms(m, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p >= probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addBond(methodRandomSparse, m, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
