// Package builder provides deterministic molecule fixtures in a functional-options
// style: small topologies (path, cycle, star, complete, wheel, grid) and seeded
// random graphs used by tests, benchmarks and examples of the matching engine.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMolecule(bopts, cons...) creates a Molecule and applies constructors in order.
//     – Every constructor appends a new connected component; atoms are numbered
//     consecutively from the current atom count.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, element-labelling and bond-order functions.
//   - Labelling schemes:
//     – ElementFn: DefaultElementFn ("C"), ConstantElement, CycleElements.
//     – OrderFn:   DefaultOrderFn (Single), ConstantOrder, RandomOrder.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical molecules.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewAtoms, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed) wrapped with method context for errors.Is.
package builder
