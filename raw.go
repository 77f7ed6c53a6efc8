package vvector

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/lewieW/vvector/allocator"
	"golang.org/x/exp/slog"
)

// RawVector is a type-erased dynamic array: a contiguous run of fixed-size
// element slots whose per-element byte size is chosen at creation time.
// Elements are opaque byte blobs- the container copies them with raw memory
// copies and never interprets their contents, so type safety is the caller's
// responsibility. Vector[T] provides a compile-time-typed facade for the
// common case.
//
// A RawVector owns exactly one backing buffer, obtained from its allocator,
// which holds the metadata header followed by the element region. Growth and
// shrink replace the buffer; the RawVector value held by the caller stays
// valid across relocation, but element views returned by At, Front, and Back
// alias the old buffer and must not be held across any mutating call.
//
// RawVector is not safe for concurrent use. Callers must externally
// serialize access to a given vector.
type RawVector struct {
	// buf is nil exactly when the vector has been destroyed. Every
	// operation checks this before touching the header.
	buf []byte

	alloc     allocator.Allocator
	logger    *slog.Logger
	pageElems int
	id        uint64
}

// New creates a vector for elements of elementSize bytes. The vector starts
// empty with no element pages allocated; the first insertion allocates the
// first page. elementSize must be positive- a zero-size element would make
// every capacity computation degenerate, so it is rejected up front rather
// than left as an unreachable state.
//
// The options' allocator, when present, provides the buffer for the entire
// lifetime of the vector, destruction included.
func New(elementSize int, options CreateOptions) (*RawVector, error) {
	if elementSize <= 0 {
		return nil, cerrors.Wrapf(ErrElementSize, "element size is %d", elementSize)
	}

	pageElems := options.PageElements
	if pageElems < 1 {
		pageElems = DefaultPageElements
	}

	var flags headerFlags
	alloc := options.Allocator
	if alloc != nil {
		flags |= flagCustomAllocator
	} else {
		alloc = allocator.Default()
	}

	buf, err := alloc.Allocate(headerSize)
	if err != nil {
		return nil, cerrors.Mark(cerrors.Wrapf(err, "allocating vector buffer"), ErrOutOfMemory)
	}
	if len(buf) < headerSize {
		return nil, cerrors.Newf("allocator returned a %d-byte buffer for a %d-byte request", len(buf), headerSize)
	}

	v := &RawVector{
		buf:       buf[:headerSize],
		alloc:     alloc,
		logger:    options.logger(),
		pageElems: pageElems,
	}
	*v.header() = header{
		capacity: headerSize,
		length:   0,
		elemSize: elementSize,
		flags:    flags,
	}

	if options.Flags&CreateTrackLeaks != 0 {
		v.id = registerVector(v)
	}

	v.logger.Debug("vvector: created",
		slog.Int("elementSize", elementSize),
		slog.Int("pageElements", pageElems),
		slog.Bool("customAllocator", flags&flagCustomAllocator != 0))

	debugValidate(v)
	return v, nil
}

// Destroy releases the vector's buffer through the allocator that created it
// and moves the vector to the invalid state. Destroying an already-destroyed
// or nil vector reports ErrVectorInvalid; there is no way back to the valid
// state except constructing a new vector.
func (v *RawVector) Destroy() error {
	if v == nil || v.buf == nil {
		return cerrors.Wrap(ErrVectorInvalid, "destroying vector")
	}

	// Capture the allocator and buffer before clearing the handle state, so
	// the release never reads through a freed reference.
	alloc := v.alloc
	buf := v.buf
	length := v.header().length

	v.buf = nil
	if v.id != 0 {
		unregisterVector(v.id)
	}

	if err := alloc.Deallocate(buf); err != nil {
		return cerrors.Wrapf(err, "releasing vector buffer")
	}

	v.logger.Debug("vvector: destroyed",
		slog.Int("length", length),
		slog.Int("capacityBytes", len(buf)))

	return nil
}

// valid reports whether the vector can be operated on.
func (v *RawVector) valid() bool {
	return v != nil && v.buf != nil
}

// Len returns the number of live elements. A nil or destroyed vector has
// length 0, so loop idioms like "for !v.IsEmpty() { v.RemoveBack() }"
// terminate instead of faulting on a bad handle.
func (v *RawVector) Len() int {
	if !v.valid() {
		return 0
	}

	return v.header().length
}

// IsEmpty reports whether the vector holds no elements. A nil or destroyed
// vector is empty.
func (v *RawVector) IsEmpty() bool {
	return v.Len() == 0
}

// At returns a view of the element at index, valid for 0 <= index < Len().
// The view aliases the vector's buffer- no copy is made, and writing through
// it writes the element in place. Any mutating call may relocate the buffer
// and invalidate the view.
func (v *RawVector) At(index int) ([]byte, error) {
	if !v.valid() {
		return nil, cerrors.Wrap(ErrVectorInvalid, "reading element")
	}

	h := v.header()
	if index < 0 || index >= h.length {
		return nil, cerrors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, h.length)
	}

	start := headerSize + index*h.elemSize
	return v.buf[start : start+h.elemSize : start+h.elemSize], nil
}

// Front returns a view of the first element. An empty vector reports
// ErrVectorEmpty rather than a view of an undefined slot.
func (v *RawVector) Front() ([]byte, error) {
	if !v.valid() {
		return nil, cerrors.Wrap(ErrVectorInvalid, "reading front element")
	}
	if v.header().length == 0 {
		return nil, cerrors.Wrap(ErrVectorEmpty, "reading front element")
	}

	return v.At(0)
}

// Back returns a view of the last element. An empty vector reports
// ErrVectorEmpty rather than a view of an undefined slot.
func (v *RawVector) Back() ([]byte, error) {
	if !v.valid() {
		return nil, cerrors.Wrap(ErrVectorInvalid, "reading back element")
	}
	if v.header().length == 0 {
		return nil, cerrors.Wrap(ErrVectorEmpty, "reading back element")
	}

	return v.At(v.header().length - 1)
}

// Set overwrites the element at index with a byte-for-byte copy of value,
// valid for 0 <= index < Len(). It never changes length or capacity and
// never reallocates. value must be non-nil and exactly ElementSize bytes.
func (v *RawVector) Set(index int, value []byte) error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "writing element")
	}

	h := v.header()
	if index < 0 || index >= h.length {
		return cerrors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, h.length)
	}
	if value == nil {
		return cerrors.Wrap(ErrNilValue, "writing element")
	}
	if len(value) != h.elemSize {
		return cerrors.Wrapf(ErrValueSize, "value is %d bytes, element size is %d", len(value), h.elemSize)
	}

	copy(v.elementRegion()[index*h.elemSize:], value)
	return nil
}

// Insert places a copy of value at index, valid for 0 <= index <= Len(); an
// index equal to Len() appends. All elements at or after index shift one
// slot toward the back. If the buffer is full, one capacity page is acquired
// first; when that acquisition fails the insertion is aborted with
// ErrOutOfMemory and the vector is unchanged and still usable.
func (v *RawVector) Insert(index int, value []byte) error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "inserting element")
	}

	h := v.header()
	if index < 0 || index > h.length {
		return cerrors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, h.length)
	}
	if value == nil {
		return cerrors.Wrap(ErrNilValue, "inserting element")
	}
	if len(value) != h.elemSize {
		return cerrors.Wrapf(ErrValueSize, "value is %d bytes, element size is %d", len(value), h.elemSize)
	}

	if err := v.growIfFull(); err != nil {
		return err
	}

	// The buffer may have moved; re-read everything through the new header.
	h = v.header()
	elems := v.elementRegion()
	es := h.elemSize

	copy(elems[(index+1)*es:(h.length+1)*es], elems[index*es:h.length*es])
	copy(elems[index*es:], value)
	h.length++

	debugValidate(v)
	return nil
}

// PushBack appends a copy of value, equivalent to Insert(Len(), value).
func (v *RawVector) PushBack(value []byte) error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "appending element")
	}

	return v.Insert(v.header().length, value)
}

// RemoveAt deletes the element at index, valid for 0 <= index < Len(). All
// elements after index shift one slot toward the front; capacity is not
// reduced- use ShrinkToFit to return unused pages.
func (v *RawVector) RemoveAt(index int) error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "removing element")
	}

	h := v.header()
	if index < 0 || index >= h.length {
		return cerrors.Wrapf(ErrIndexOutOfRange, "index %d with length %d", index, h.length)
	}

	elems := v.elementRegion()
	es := h.elemSize

	copy(elems[index*es:], elems[(index+1)*es:h.length*es])
	h.length--

	debugValidate(v)
	return nil
}

// RemoveBack deletes the last element, equivalent to RemoveAt(Len()-1). On
// an empty vector it reports the distinct ErrVectorEmpty condition without
// touching memory.
func (v *RawVector) RemoveBack() error {
	if !v.valid() {
		return cerrors.Wrap(ErrVectorInvalid, "removing back element")
	}
	if v.header().length == 0 {
		return cerrors.Wrap(ErrVectorEmpty, "removing back element")
	}

	return v.RemoveAt(v.header().length - 1)
}
