package vvector

import "unsafe"

type headerFlags int

const (
	// flagCustomAllocator records that the vector was constructed with a
	// consumer-supplied allocator rather than the library default.
	flagCustomAllocator headerFlags = 1 << iota
)

// header is the in-band metadata block at byte offset 0 of every buffer. The
// element region starts immediately after it. All fields are pointer-width
// and signed so that size arithmetic can go negative for defensive checks
// instead of wrapping.
//
// capacity counts every byte allocated to the buffer, header included, and
// always equals len(buf)- Validate treats a disagreement between the two as
// an engine bug.
type header struct {
	capacity int
	length   int
	elemSize int
	flags    headerFlags
}

// headerSize is the byte offset of the element region.
const headerSize = int(unsafe.Sizeof(header{}))

// header returns the in-band metadata of the current buffer. Callers must
// have established that the vector is valid. The pointer aliases the buffer
// and is invalidated by any reallocation, so it must be re-obtained after
// every grow or shrink.
func (v *RawVector) header() *header {
	return (*header)(unsafe.Pointer(&v.buf[0]))
}

// elementRegion returns the bytes after the header, holding the element
// slots. The slice aliases the buffer and is invalidated by reallocation.
func (v *RawVector) elementRegion() []byte {
	return v.buf[headerSize:]
}

// capacityElements converts the header's byte capacity to whole element
// slots.
func capacityElements(h *header) int {
	return (h.capacity - headerSize) / h.elemSize
}

// isFull reports whether every allocated slot is live, meaning the next
// insertion needs another page first.
func isFull(h *header) bool {
	return h.capacity == headerSize+h.length*h.elemSize
}
