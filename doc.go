// Package molmatch is a molecular graph matching toolkit: exact substructure
// search and maximum common substructure search over small labelled graphs.
//
// Packages:
//
//	molgraph/  Graph contract, in-memory Molecule, restricted View
//	builder/   deterministic molecule fixtures (paths, rings, stars, grids, random)
//	matching/  exact matcher, atom- and bond-rowed MCS, bulk screening
//
// Quick start:
//
//	q := builder.MustBuild(nil, builder.Cycle(6))
//	s := matching.NewSubstructureSearch()
//	_ = s.SetQuery(q)
//	ok, _ := s.FindMappings(target)
//	for _, m := range s.Mappings() {
//		// m.Atoms().Target(queryAtom)
//	}
//
// See examples/fragment_screen for a runnable program.
package molmatch
