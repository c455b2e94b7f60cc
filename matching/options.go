// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options shared by SubstructureSearch and MCSearch.

package matching

import "log/slog"

// DefaultMinSubstructureSize is the smallest MCS reported unless overridden.
const DefaultMinSubstructureSize = 1

// Option configures a searcher at construction time.
type Option func(*Options)

// Options holds searcher configuration. Runtime setters on the searchers
// (SetUniqueMappingsOnly, SetMaxNumMappings, ...) write the same fields.
type Options struct {
	// AtomMatcher and BondMatcher are the element-level predicates.
	// Defaults: ElementAtom{} and OrderBond{}.
	AtomMatcher AtomMatcher
	BondMatcher BondMatcher

	// GraphMatcher is an optional whole-graph predicate (nil: none).
	GraphMatcher GraphMatcher

	// UniqueMappingsOnly drops mappings covering the same target atoms and
	// bonds as an already stored one. Atoms are part of the key, so isolated
	// query atoms landing on different target atoms are not duplicates.
	UniqueMappingsOnly bool

	// MaxNumMappings caps the number of stored mappings; 0 means no cap.
	MaxNumMappings int

	// MinSubstructureSize is the smallest clique an MCS search accepts,
	// counted in rows (atoms or bonds). Ignored by SubstructureSearch.
	MinSubstructureSize int

	// Logger receives one debug record per search. Default discards.
	Logger *slog.Logger
}

// DefaultOptions returns Options with element/order predicates, no graph
// predicate, no uniqueness filter, no cap, minimum MCS size 1 and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		AtomMatcher:         ElementAtom{},
		BondMatcher:         OrderBond{},
		GraphMatcher:        nil,
		UniqueMappingsOnly:  false,
		MaxNumMappings:      0,
		MinSubstructureSize: DefaultMinSubstructureSize,
		Logger:              slog.New(slog.DiscardHandler),
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithAtomMatcher sets the atom predicate. It panics on nil.
func WithAtomMatcher(m AtomMatcher) Option {
	if m == nil {
		panic("matching: WithAtomMatcher(nil)")
	}
	return func(o *Options) { o.AtomMatcher = m }
}

// WithBondMatcher sets the bond predicate. It panics on nil.
func WithBondMatcher(m BondMatcher) Option {
	if m == nil {
		panic("matching: WithBondMatcher(nil)")
	}
	return func(o *Options) { o.BondMatcher = m }
}

// WithGraphMatcher sets the whole-graph predicate; nil removes it.
func WithGraphMatcher(m GraphMatcher) Option {
	return func(o *Options) { o.GraphMatcher = m }
}

// WithUniqueMappingsOnly enables or disables signature deduplication.
func WithUniqueMappingsOnly(unique bool) Option {
	return func(o *Options) { o.UniqueMappingsOnly = unique }
}

// WithMaxNumMappings caps stored mappings (0 = unlimited). It panics if n < 0.
func WithMaxNumMappings(n int) Option {
	if n < 0 {
		panic("matching: WithMaxNumMappings(n<0)")
	}
	return func(o *Options) { o.MaxNumMappings = n }
}

// WithMinSubstructureSize sets the MCS size threshold. It panics if n < 0.
func WithMinSubstructureSize(n int) Option {
	if n < 0 {
		panic("matching: WithMinSubstructureSize(n<0)")
	}
	return func(o *Options) { o.MinSubstructureSize = n }
}

// WithLogger routes search diagnostics to l. Passing nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
