// Package allocator defines the memory-provider capability used by vvector
// containers. A container obtains every byte it manages through an Allocator:
// the default implementation is backed by the ordinary Go heap, and consumers
// can substitute their own implementation at container creation to route the
// container's memory traffic through an arena, a pool, or an instrumented
// source.
package allocator

// Allocator provides, resizes, and releases the single backing buffer owned
// by a container. Implementations do not need to be safe for concurrent use;
// a container calls its allocator from whatever goroutine the container
// itself is confined to.
//
// Reallocate must leave the original buffer intact and usable when it returns
// an error. The container relies on this to guarantee that a failed grow or
// shrink never loses data- implementations that release the original buffer
// on failure will corrupt any container using them.
type Allocator interface {
	// Allocate returns a new buffer of exactly size bytes. Implementations
	// must return an error rather than a short buffer when the request
	// cannot be satisfied.
	Allocate(size int) ([]byte, error)
	// Reallocate returns a buffer of exactly newSize bytes whose first
	// min(len(buf), newSize) bytes match the contents of buf. The returned
	// buffer may or may not alias buf. On error, buf is still live and
	// still owned by the caller.
	Reallocate(buf []byte, newSize int) ([]byte, error)
	// Deallocate releases a buffer previously returned by Allocate or
	// Reallocate. The buffer's size travels with the slice- len(buf) is
	// always the exact size that was requested.
	Deallocate(buf []byte) error
}

// ContextProvider is an optional interface for Allocator implementations
// that carry an opaque consumer-owned context value, such as those built
// from a Funcs descriptor. The context is owned by whoever supplied it-
// neither the allocator machinery nor the container will retain it past
// the allocator's own lifetime or attempt to release it.
type ContextProvider interface {
	Context() any
}

// ContextOf returns the opaque context value carried by a, or nil when a
// does not carry one. It exists for diagnostics and tests; application
// logic should not need it.
func ContextOf(a Allocator) any {
	if provider, ok := a.(ContextProvider); ok {
		return provider.Context()
	}

	return nil
}
