package vvector

import (
	"reflect"
	"unsafe"

	cerrors "github.com/cockroachdb/errors"
)

// Vector is the compile-time-typed facade over the byte engine: a dynamic
// array of T values with the same page-granular capacity behavior, allocator
// indirection, and error contract as RawVector. The element size is taken
// from unsafe.Sizeof at construction, so there is no per-call size plumbing
// and no way to hand the container a wrong-sized value.
//
// Elements live in pointerless byte storage that the garbage collector does
// not scan, so T must not contain pointers of any kind; NewOf rejects
// pointer-bearing types. Use RawVector directly when the element size is
// only known at runtime.
//
// Like RawVector, a Vector is not safe for concurrent use, and element
// references returned by At, Front, and Back are invalidated by any
// mutating call.
type Vector[T any] struct {
	raw *RawVector
}

// NewOf creates an empty Vector for elements of type T, which must be a
// pointer-free type of nonzero size. The options are those of New.
func NewOf[T any](options CreateOptions) (*Vector[T], error) {
	var zero T
	elemType := reflect.TypeOf(&zero).Elem()
	if typeHasPointers(elemType) {
		return nil, cerrors.Wrapf(ErrPointerElement, "element type %s", elemType)
	}

	raw, err := New(int(unsafe.Sizeof(zero)), options)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{raw: raw}, nil
}

// Raw returns the underlying type-erased engine, for diagnostics and for
// operations Vector does not expose. Mutating through both views is fine as
// long as all access stays on one goroutine.
func (v *Vector[T]) Raw() *RawVector {
	if v == nil {
		return nil
	}

	return v.raw
}

// Destroy releases the vector; see RawVector.Destroy.
func (v *Vector[T]) Destroy() error {
	return v.Raw().Destroy()
}

// Len returns the number of live elements; zero for a nil or destroyed
// vector.
func (v *Vector[T]) Len() int {
	return v.Raw().Len()
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Raw().IsEmpty()
}

// At returns a pointer to the element at index, valid for 0 <= index <
// Len(). The pointer aliases the vector's storage: writes through it update
// the element in place, and any mutating call invalidates it.
func (v *Vector[T]) At(index int) (*T, error) {
	slot, err := v.Raw().At(index)
	if err != nil {
		return nil, err
	}

	return (*T)(unsafe.Pointer(&slot[0])), nil
}

// Front returns a pointer to the first element, or ErrVectorEmpty.
func (v *Vector[T]) Front() (*T, error) {
	slot, err := v.Raw().Front()
	if err != nil {
		return nil, err
	}

	return (*T)(unsafe.Pointer(&slot[0])), nil
}

// Back returns a pointer to the last element, or ErrVectorEmpty.
func (v *Vector[T]) Back() (*T, error) {
	slot, err := v.Raw().Back()
	if err != nil {
		return nil, err
	}

	return (*T)(unsafe.Pointer(&slot[0])), nil
}

// Set overwrites the element at index with value; see RawVector.Set.
func (v *Vector[T]) Set(index int, value T) error {
	return v.Raw().Set(index, valueBytes(&value))
}

// Insert places value at index, shifting later elements back; see
// RawVector.Insert.
func (v *Vector[T]) Insert(index int, value T) error {
	return v.Raw().Insert(index, valueBytes(&value))
}

// Push appends value to the back of the vector.
func (v *Vector[T]) Push(value T) error {
	return v.Raw().PushBack(valueBytes(&value))
}

// Pop copies out the last element and removes it. On an empty vector it
// reports ErrVectorEmpty and returns the zero value.
func (v *Vector[T]) Pop() (T, error) {
	var result T

	slot, err := v.Raw().Back()
	if err != nil {
		return result, err
	}
	copy(valueBytes(&result), slot)

	if err := v.Raw().RemoveBack(); err != nil {
		return result, err
	}

	return result, nil
}

// RemoveAt deletes the element at index, shifting later elements forward;
// see RawVector.RemoveAt.
func (v *Vector[T]) RemoveAt(index int) error {
	return v.Raw().RemoveAt(index)
}

// Reserve grows capacity by whole pages for n more elements; see
// RawVector.Reserve.
func (v *Vector[T]) Reserve(n int) error {
	return v.Raw().Reserve(n)
}

// ShrinkToFit releases capacity pages that hold no live elements; see
// RawVector.ShrinkToFit.
func (v *Vector[T]) ShrinkToFit() error {
	return v.Raw().ShrinkToFit()
}

// valueBytes views a T as its underlying bytes without copying.
func valueBytes[T any](value *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(value)), int(unsafe.Sizeof(*value)))
}

// typeHasPointers reports whether values of t contain pointers the garbage
// collector would need to scan. Strings, slices, maps, channels, functions,
// interfaces, and pointers all do; arrays and structs do if any of their
// components do.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
