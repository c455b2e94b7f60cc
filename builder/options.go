// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// options.go - functional options for BuildMolecule. Option constructors
// validate eagerly and panic on programmer errors (nil functions).

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithElements sets the element labelling function.
func WithElements(fn ElementFn) BuilderOption {
	if fn == nil {
		panic("builder: WithElements(nil)")
	}
	return func(c *builderConfig) {
		c.elementFn = fn
	}
}

// WithOrders sets the bond order function.
func WithOrders(fn OrderFn) BuilderOption {
	if fn == nil {
		panic("builder: WithOrders(nil)")
	}
	return func(c *builderConfig) {
		c.orderFn = fn
	}
}

// WithRand uses r for all stochastic decisions.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
