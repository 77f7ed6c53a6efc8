package allocator

import (
	"github.com/cockroachdb/errors"
)

// heapAllocator is the library default. Buffers come from the ordinary Go
// heap and are released by dropping the reference and letting the collector
// reclaim them.
type heapAllocator struct{}

// Default returns the library's default heap-backed Allocator. It is
// stateless; every call returns an equivalent value.
func Default() Allocator {
	return heapAllocator{}
}

func (heapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Newf("requested a buffer of %d bytes", size)
	}

	return make([]byte, size), nil
}

// Reallocate never fails and never releases the original buffer- the new
// buffer is always a fresh heap allocation with the old contents copied in.
// This is the primitive contract the container's failure paths depend on.
func (h heapAllocator) Reallocate(buf []byte, newSize int) ([]byte, error) {
	if newSize < 0 {
		return nil, errors.Newf("requested a buffer of %d bytes", newSize)
	}
	if newSize == len(buf) {
		return buf, nil
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, buf)

	return newBuf, nil
}

func (heapAllocator) Deallocate(buf []byte) error {
	return nil
}
