package vvector

import (
	"github.com/lewieW/vvector/allocator"
)

// Diagnostic accessors. These expose the container's internal geometry for
// tests and debugging; they are not part of the stable contract and
// application logic should not depend on them.

// Capacity returns the total bytes currently allocated to the buffer, header
// included. Zero for a nil or destroyed vector.
func (v *RawVector) Capacity() int {
	if !v.valid() {
		return 0
	}

	return v.header().capacity
}

// CapacityElements returns the number of element slots currently allocated,
// live or not. It is always a whole multiple of PageElements. Zero for a nil
// or destroyed vector.
func (v *RawVector) CapacityElements() int {
	if !v.valid() {
		return 0
	}

	return capacityElements(v.header())
}

// ElementSize returns the byte size of one element slot. Zero for a nil or
// destroyed vector.
func (v *RawVector) ElementSize() int {
	if !v.valid() {
		return 0
	}

	return v.header().elemSize
}

// RawElementSize returns the element size with the legacy sign convention:
// negative when a custom allocator is attached, positive otherwise. The
// in-band metadata itself keeps the size and the allocator flag in separate
// fields; this accessor only reproduces the historical diagnostic view.
func (v *RawVector) RawElementSize() int {
	if !v.valid() {
		return 0
	}

	h := v.header()
	if h.flags&flagCustomAllocator != 0 {
		return -h.elemSize
	}

	return h.elemSize
}

// HasCustomAllocator reports whether the vector was constructed with a
// consumer-supplied allocator.
func (v *RawVector) HasCustomAllocator() bool {
	return v.valid() && v.header().flags&flagCustomAllocator != 0
}

// PageElements returns the page granule the vector grows and shrinks by, in
// element slots.
func (v *RawVector) PageElements() int {
	if v == nil {
		return 0
	}

	return v.pageElems
}

// Allocator returns the allocator the vector resolved at construction: the
// consumer-supplied one when present, the library default otherwise. Nil for
// a nil vector.
func (v *RawVector) Allocator() allocator.Allocator {
	if v == nil {
		return nil
	}

	return v.alloc
}

// AllocatorContext returns the opaque context value carried by the vector's
// allocator, or nil when it carries none.
func (v *RawVector) AllocatorContext() any {
	if v == nil {
		return nil
	}

	return allocator.ContextOf(v.alloc)
}
