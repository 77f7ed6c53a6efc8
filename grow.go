package vvector

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"
)

// reallocate replaces the buffer with one of newCapacity bytes and commits
// the new capacity to the metadata. The metadata write happens only after
// the allocator reports success- on failure the prior buffer is untouched,
// still owned by the vector, and still described accurately by its header.
func (v *RawVector) reallocate(newCapacity int) error {
	h := v.header()
	oldCapacity := h.capacity

	newBuf, err := v.alloc.Reallocate(v.buf, newCapacity)
	if err != nil {
		return cerrors.Mark(
			cerrors.Wrapf(err, "resizing vector buffer from %d to %d bytes", oldCapacity, newCapacity),
			ErrOutOfMemory)
	}
	if len(newBuf) < newCapacity {
		return cerrors.Newf("allocator returned a %d-byte buffer for a %d-byte request", len(newBuf), newCapacity)
	}

	v.buf = newBuf[:newCapacity]
	v.header().capacity = newCapacity

	v.logger.Debug("vvector: buffer resized",
		slog.Int("oldCapacityBytes", oldCapacity),
		slog.Int("newCapacityBytes", newCapacity))

	debugValidate(v)
	return nil
}

// growIfFull acquires one more capacity page when every allocated slot is
// live. It is the grow-on-demand path taken before each insertion.
func (v *RawVector) growIfFull() error {
	h := v.header()
	if !isFull(h) {
		return nil
	}

	return v.reallocate(h.capacity + v.pageElems*h.elemSize)
}

// Reserve grows capacity by enough whole pages to hold n more elements
// beyond the current capacity. It is additive- "ensure room for n MORE
// elements"- not a target total. A negative n reports ErrNegativeCount;
// n of zero is a no-op.
func (v *RawVector) Reserve(n int) error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "reserving capacity")
	}
	if n < 0 {
		return cerrors.Wrapf(ErrNegativeCount, "reserving %d elements", n)
	}

	h := v.header()
	addBytes := pagesForElements(n, v.pageElems) * v.pageElems * h.elemSize
	if addBytes == 0 {
		return nil
	}

	return v.reallocate(h.capacity + addBytes)
}

// ShrinkToFit releases capacity pages that hold no live elements,
// reallocating the buffer down to exactly the pages needed for the current
// length. When no whole page is unused it does nothing. Element contents are
// preserved; on allocator failure the vector is unchanged and still usable.
func (v *RawVector) ShrinkToFit() error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "shrinking vector")
	}

	h := v.header()
	availablePages := capacityElements(h) / v.pageElems
	usedPages := pagesForElements(h.length, v.pageElems)
	if availablePages == usedPages {
		return nil
	}

	return v.reallocate(headerSize + usedPages*v.pageElems*h.elemSize)
}
