// Package vvector implements a dynamic array ("vector") container with
// pluggable memory allocators.
//
// The engine is type-erased: a RawVector stores opaque, fixed-size elements
// whose byte size is supplied at creation time, holding them in a single
// backing buffer that begins with an in-band metadata header. Capacity grows
// and shrinks in fixed pages of element slots, on demand before insertions
// and explicitly through Reserve and ShrinkToFit. Vector[T] wraps the engine
// with a compile-time-typed API for pointer-free element types.
//
// Every byte the container manages comes from an allocator.Allocator resolved
// at creation: the library's heap-backed default, a consumer implementation,
// or a callback descriptor built with allocator.NewFuncs. This makes each
// container instance-configurable- useful for routing a container's memory
// through an arena or for observing its allocation behavior with
// allocator.NewCounting.
//
// Containers are single-threaded: no operation blocks, and access to a given
// vector must be externally serialized. Element views returned by read
// operations alias the backing buffer and are invalidated by any mutating
// call.
package vvector
