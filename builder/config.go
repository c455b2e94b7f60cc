// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// config.go - immutable builder configuration resolved from BuilderOption values.

package builder

import "math/rand"

// builderConfig carries the resolved knobs shared by all constructors.
type builderConfig struct {
	// elementFn labels atom idx (absolute index in the molecule).
	elementFn ElementFn

	// orderFn chooses the order of every emitted bond.
	orderFn OrderFn

	// rng drives stochastic constructors and random orders; nil unless set.
	rng *rand.Rand
}

// newBuilderConfig applies opts over the defaults, left to right.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		elementFn: DefaultElementFn,
		orderFn:   DefaultOrderFn,
		rng:       nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
