// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMolecule(bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical molecules.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molmatch/molgraph"
)

// Constructor appends one component to m using the resolved builderConfig.
// Constructors validate parameters before touching m.
type Constructor func(m *molgraph.Molecule, cfg builderConfig) error

// BuildMolecule creates a new Molecule, resolves the builder configuration
// from bopts and applies all constructors in order. The first constructor
// error is wrapped with "BuildMolecule: %w" and returned; no partial result
// is returned.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
func BuildMolecule(bopts []BuilderOption, cons ...Constructor) (*molgraph.Molecule, error) {
	m := molgraph.NewMolecule(0, 0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}

	return m, nil
}

// MustBuild is BuildMolecule for fixtures; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *molgraph.Molecule {
	m, err := BuildMolecule(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}

// addAtoms appends n atoms labelled by cfg.elementFn and returns the index of the first.
func addAtoms(m *molgraph.Molecule, cfg builderConfig, n int) int {
	base := m.NumAtoms()
	for i := 0; i < n; i++ {
		m.AddElement(cfg.elementFn(base + i))
	}

	return base
}

// addBond joins a and b with an order drawn from cfg.orderFn.
func addBond(method string, m *molgraph.Molecule, cfg builderConfig, a, b int) error {
	if _, err := m.AddBond(a, b, cfg.orderFn(cfg.rng)); err != nil {
		return builderErrorf(method, "AddBond(%d,%d): %v: %w", a, b, err, ErrConstructFailed)
	}

	return nil
}
