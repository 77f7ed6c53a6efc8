package vvector

import (
	"github.com/lewieW/vvector/allocator"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific container behaviors to activate or deactivate
type CreateFlags int32

const (
	// CreateTrackLeaks registers the vector in the process-wide live-vector
	// registry until it is destroyed, so that LogLeakedVectors can report
	// containers that were never released. Intended for tests and debugging.
	CreateTrackLeaks CreateFlags = 1 << iota
)

// DefaultPageElements is the number of element slots in one capacity page
// when CreateOptions does not override it. Capacity always grows and shrinks
// in whole pages, so this constant is an externally observable
// performance/memory trade-off: larger pages mean fewer reallocations and
// more slack, smaller pages the reverse.
const DefaultPageElements = 32

// CreateOptions contains optional settings when creating a vector
type CreateOptions struct {
	// Flags indicates specific container behaviors to activate or deactivate
	Flags CreateFlags

	// Allocator is the memory source for the vector's buffer. When nil, the
	// library's heap-backed default is used. Every allocation, reallocation,
	// and release the vector performs over its whole lifetime is routed
	// through this value, so it must outlive the vector.
	Allocator allocator.Allocator

	// Logger receives Debug-level events for create, grow, shrink, and
	// destroy. When nil, logging is disabled.
	Logger *slog.Logger

	// PageElements overrides DefaultPageElements as the page granule for
	// this vector. Values below 1 select the default.
	PageElements int
}

func (o *CreateOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return noopLogger
}

var noopLogger = slog.New(discardHandler{})
