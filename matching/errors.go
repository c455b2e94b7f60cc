// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of the matching package.
//
// "No match" is never an error: searches report it as false with an empty
// result set. Errors are reserved for misuse of the API.

package matching

import "errors"

var (
	// ErrNilGraph is returned when a nil query or target graph is passed in.
	ErrNilGraph = errors.New("matching: graph is nil")

	// ErrNoQuery is returned when a search is started before SetQuery.
	ErrNoQuery = errors.New("matching: no query set")

	// ErrBadConstraint is returned when a mapping constraint names a negative index.
	ErrBadConstraint = errors.New("matching: invalid mapping constraint")

	// ErrWrongRowKind is returned when an MCS operation does not apply to the
	// searcher's row kind.
	ErrWrongRowKind = errors.New("matching: operation not supported for this row kind")
)
