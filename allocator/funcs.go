package allocator

// Funcs is a descriptor of allocation callbacks plus an opaque context value,
// for consumers that prefer supplying three functions over implementing
// Allocator. The Context value is passed unmodified to every callback; the
// descriptor machinery never inspects or releases it.
//
// Any nil member falls back to the library default for that operation. The
// fallback is resolved once, when NewFuncs builds the Allocator- mutating a
// Funcs value after handing it to NewFuncs has no effect on the returned
// Allocator.
type Funcs struct {
	// Allocate returns a new buffer of exactly size bytes.
	Allocate func(size int, ctx any) ([]byte, error)
	// Reallocate resizes buf to newSize bytes, preserving contents up to
	// min(oldSize, newSize). oldSize is a hint equal to len(buf). On error
	// the original buffer must be left intact; see Allocator.
	Reallocate func(buf []byte, newSize, oldSize int, ctx any) ([]byte, error)
	// Deallocate releases buf. size is a hint equal to len(buf).
	Deallocate func(buf []byte, size int, ctx any) error

	// Context is an opaque value owned by the consumer, handed back on
	// every callback.
	Context any
}

// funcsAllocator adapts a normalized Funcs descriptor to the Allocator
// interface.
type funcsAllocator struct {
	funcs Funcs
}

var _ Allocator = funcsAllocator{}
var _ ContextProvider = funcsAllocator{}

// NewFuncs builds an Allocator from a callback descriptor. The descriptor is
// copied by value and normalized immediately: each nil callback is replaced
// with the library default for that operation, so the returned Allocator
// never has to re-check for missing members.
func NewFuncs(funcs Funcs) Allocator {
	def := heapAllocator{}

	if funcs.Allocate == nil {
		funcs.Allocate = func(size int, ctx any) ([]byte, error) {
			return def.Allocate(size)
		}
	}
	if funcs.Reallocate == nil {
		funcs.Reallocate = func(buf []byte, newSize, oldSize int, ctx any) ([]byte, error) {
			return def.Reallocate(buf, newSize)
		}
	}
	if funcs.Deallocate == nil {
		funcs.Deallocate = func(buf []byte, size int, ctx any) error {
			return def.Deallocate(buf)
		}
	}

	return funcsAllocator{funcs: funcs}
}

func (a funcsAllocator) Allocate(size int) ([]byte, error) {
	return a.funcs.Allocate(size, a.funcs.Context)
}

func (a funcsAllocator) Reallocate(buf []byte, newSize int) ([]byte, error) {
	return a.funcs.Reallocate(buf, newSize, len(buf), a.funcs.Context)
}

func (a funcsAllocator) Deallocate(buf []byte) error {
	return a.funcs.Deallocate(buf, len(buf), a.funcs.Context)
}

func (a funcsAllocator) Context() any {
	return a.funcs.Context
}
