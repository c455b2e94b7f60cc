// Package matching finds structural correspondences between a small query
// molecular graph and a larger target: exact substructure embeddings and,
// when none exist, maximum common substructures (MCS).
//
// What:
//
//   - SubstructureSearch: backtracking exact matcher. It grows an injective
//     atom assignment one query atom at a time, preferring atoms adjacent to
//     the partial mapping, and checks every query bond against the target
//     as soon as both of its atoms are placed.
//   - MCSearch: Durand–Pasari clique search over an association graph. With
//     AtomRows the nodes are (query atom, target atom) pairs; with BondRows
//     they are (query bond, target bond) pairs. The null-node budget bounds
//     the search to cliques at least as large as the best found so far.
//   - Screen: one query against many targets with a bounded worker pool,
//     returning the hit indices as a roaring bitmap.
//
// Compatibility:
//
//   - AtomMatcher, BondMatcher and GraphMatcher decide which elements may
//     correspond. Each is called with a nil *Mapping while the candidate
//     tables are built. A matcher whose RequiresMapping reports true is
//     called again with every complete mapping and can veto it.
//   - AddAtomMappingConstraint / AddBondMappingConstraint pin a query
//     element to one or more target elements.
//
// Results:
//
//   - Mappings are pooled per searcher and stay valid until the next search
//     or SetQuery. Mapping.Clone detaches one.
//   - UniqueMappingsOnly keeps one mapping per set of covered target atoms
//     and bonds; MaxNumMappings caps the number stored.
//   - "No match" is a false result, never an error.
//
// Complexity:
//
//   - Exact: worst case O(T^Q) states for Q query atoms and T target atoms;
//     candidate tables O(Q*T) predicate calls.
//   - MCS: association graph O(N^2) edge tests for N nodes; clique search
//     exponential in the number of rows, bounded by the null-node budget.
//
// Concurrency:
//
//   - A searcher is single-threaded; use one per goroutine. Stop may be
//     called from any goroutine and takes effect at the next recursion step.
//
// Errors:
//
//   - ErrNilGraph       nil query or target
//   - ErrNoQuery        search before SetQuery
//   - ErrBadConstraint  negative index in a mapping constraint
//   - ErrWrongRowKind   FindMaxBondMappings on bond rows, or the reverse
package matching
