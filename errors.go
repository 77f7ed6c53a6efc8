package vvector

import "github.com/pkg/errors"

// Sentinel errors returned by container operations. They classify the failure;
// the returned error may wrap one of these with call-site context, so match
// with errors.Is rather than equality.
var (
	// ErrVectorInvalid is returned when an operation is given a nil vector
	// or a vector whose buffer has already been released by Destroy. Length
	// queries treat this condition as an empty container instead.
	ErrVectorInvalid = errors.New("vector is nil or its buffer has been released")

	// ErrIndexOutOfRange is returned for an index outside the operation's
	// valid range. Reads accept [0, Len()); Insert additionally accepts an
	// index equal to Len().
	ErrIndexOutOfRange = errors.New("index is outside the vector's valid range")

	// ErrNilValue is returned when a write or insert is given a nil value
	// slice.
	ErrNilValue = errors.New("value must not be nil")

	// ErrValueSize is returned when a value slice's length does not equal
	// the vector's element size.
	ErrValueSize = errors.New("value length does not match the vector's element size")

	// ErrElementSize is returned by construction when the requested element
	// size is not a positive number of bytes.
	ErrElementSize = errors.New("element size must be a positive number of bytes")

	// ErrNegativeCount is returned when Reserve is given a negative element
	// count.
	ErrNegativeCount = errors.New("element count must not be negative")

	// ErrVectorEmpty is the distinct nothing-to-do condition reported when
	// RemoveBack, Front, Back, or Pop is called on a container with no
	// elements. It is an expected condition, not a misuse.
	ErrVectorEmpty = errors.New("vector has no elements")

	// ErrOutOfMemory marks failures of the vector's allocator, via
	// cockroachdb/errors marks- detect it with that library's Is. The
	// returned error also carries the allocator's own error as its cause,
	// which plain errors.Is can see. When this is reported, the vector's
	// prior buffer and metadata are intact and the vector remains usable.
	ErrOutOfMemory = errors.New("the vector's allocator could not provide memory")

	// ErrPointerElement is returned by NewOf when the element type contains
	// pointers. Elements live in pointerless byte storage that the garbage
	// collector does not scan, so pointer-bearing element types would keep
	// no referents alive.
	ErrPointerElement = errors.New("element type must not contain pointers")
)
