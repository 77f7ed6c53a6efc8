package vvector

import (
	"github.com/pkg/errors"
)

// Validatable is used by the debugValidate helper to allow it to act upon
// all types with a Validate method
type Validatable interface {
	Validate() error
}

// Validate performs internal consistency checks on the vector's metadata.
// When the engine is functioning correctly it is not possible for this
// method to return an error- a non-nil result indicates a bug in the engine
// itself rather than caller misuse, which is why operations do not attempt
// to recover from these states at runtime. With the debug_vvector build tag,
// every mutating operation runs these checks automatically.
func (v *RawVector) Validate() error {
	if !v.valid() {
		return errors.New("no valid buffer for this vector")
	}

	h := v.header()

	if h.elemSize <= 0 {
		return errors.Errorf("metadata element size is %d, must be positive", h.elemSize)
	}
	if h.capacity != len(v.buf) {
		return errors.Errorf("metadata capacity is %d bytes but the allocation is %d bytes", h.capacity, len(v.buf))
	}
	if h.capacity < headerSize {
		return errors.Errorf("metadata capacity is %d bytes, smaller than the %d-byte header", h.capacity, headerSize)
	}

	pageBytes := v.pageElems * h.elemSize
	if (h.capacity-headerSize)%pageBytes != 0 {
		return errors.Errorf("element region is %d bytes, not a whole multiple of the %d-byte page", h.capacity-headerSize, pageBytes)
	}

	if h.length < 0 {
		return errors.Errorf("metadata length is %d, must not be negative", h.length)
	}
	if h.length*h.elemSize > h.capacity-headerSize {
		return errors.Errorf("%d live elements of %d bytes exceed the %d-byte element region", h.length, h.elemSize, h.capacity-headerSize)
	}

	return nil
}
