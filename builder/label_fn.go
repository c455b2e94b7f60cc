// SPDX-License-Identifier: MIT
// Package: molmatch/builder
//
// label_fn.go - atom element and bond order schemes.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/molmatch/molgraph"
)

// DefaultElement is the element assigned by DefaultElementFn.
const DefaultElement = "C"

// ElementFn returns the element symbol of the atom with absolute index idx.
type ElementFn func(idx int) string

// OrderFn returns the order of the next emitted bond. rng may be nil.
type OrderFn func(rng *rand.Rand) molgraph.BondOrder

// DefaultElementFn labels every atom with DefaultElement.
func DefaultElementFn(int) string { return DefaultElement }

// DefaultOrderFn emits single bonds.
func DefaultOrderFn(*rand.Rand) molgraph.BondOrder { return molgraph.Single }

// ConstantElement labels every atom with symbol.
func ConstantElement(symbol string) ElementFn {
	return func(int) string { return symbol }
}

// CycleElements labels atom idx with symbols[idx % len(symbols)].
// It panics if symbols is empty.
func CycleElements(symbols ...string) ElementFn {
	if len(symbols) == 0 {
		panic("builder: CycleElements() needs at least one symbol")
	}
	s := append([]string(nil), symbols...)
	return func(idx int) string {
		if idx < 0 {
			idx = -idx
		}
		return s[idx%len(s)]
	}
}

// ConstantOrder emits bonds of order o.
func ConstantOrder(o molgraph.BondOrder) OrderFn {
	return func(*rand.Rand) molgraph.BondOrder { return o }
}

// RandomOrder picks uniformly among orders using the configured RNG, or the
// first order when no RNG is configured. It panics if orders is empty.
func RandomOrder(orders ...molgraph.BondOrder) OrderFn {
	if len(orders) == 0 {
		panic("builder: RandomOrder() needs at least one order")
	}
	o := append([]molgraph.BondOrder(nil), orders...)
	return func(rng *rand.Rand) molgraph.BondOrder {
		if rng == nil {
			return o[0]
		}
		return o[rng.Intn(len(o))]
	}
}
