// Package molgraph defines the read-only molecular graph contract consumed by
// the matching engine, together with a compact in-memory implementation.
//
// The contract (Graph) exposes:
//
//   - Stable 0-based atom and bond indices (NumAtoms, NumBonds, Atom, Bond).
//   - Membership predicates (ContainsAtom, ContainsBond). A graph may hide part
//     of its index space; hidden elements keep their indices, so a caller can
//     restrict the visible subgraph between two searches without renumbering.
//   - Neighbor traversal yielding parallel (neighbor atom, incident bond) pairs.
//   - BondBetween(a, b) lookup.
//
// Implementations:
//
//   - Molecule: mutable builder-style graph with per-element visibility masks.
//   - View:     restriction of any Graph to a subset of atoms and bonds.
//
// Neighbors returns every incident bond, hidden or not; consumers re-check
// ContainsAtom/ContainsBond on each step. Neither implementation repairs an
// internally inconsistent graph (for example a visible bond whose endpoint
// atom is hidden); such bonds are simply never traversed by the engine.
//
// Complexity:
//
//   - AddAtom O(1) amortized, AddBond O(deg), BondBetween O(min deg).
//   - Neighbors O(1) (returns the stored adjacency slice).
//
// Concurrency:
//
//   - Concurrent reads are safe. Mutation (AddAtom, AddBond, Hide*/Show*) must
//     not overlap with any read, including a running search.
package molgraph
