package com

import "unsafe"

// Hooks for the bulk-array entry points.
var (
	safeArrayLock    = sysSafeArrayLock
	safeArrayUnlock  = sysSafeArrayUnlock
	safeArrayDestroy = sysSafeArrayDestroy
)

// safeArrayHeader mirrors the foreign SAFEARRAY descriptor for the
// one-dimensional arrays this binding accepts.
type safeArrayHeader struct {
	dims     uint16
	features uint16
	elemSize uint32
	locks    uint32
	data     unsafe.Pointer
	bounds   [1]safeArrayBound
}

type safeArrayBound struct {
	count uint32
	lower int32
}

// SafeArray is a locked, foreign-owned contiguous buffer exposed as a
// typed read-only view. Wrapping locks the buffer; Close unlocks and
// then destroys it, exactly once. Slices handed out by Slice must not be
// used after Close. Elements remain owned by the array: destroying it
// releases them, so callers borrow, never keep, element references.
type SafeArray[T any] struct {
	raw *safeArrayHeader
}

// NewSafeArray locks raw and validates it is exactly one-dimensional.
// Any other dimensionality is a contract violation: a panic under
// Strict, otherwise E_UNEXPECTED after the buffer has been unlocked and
// destroyed so nothing leaks.
func NewSafeArray[T any](raw unsafe.Pointer) (*SafeArray[T], error) {
	if raw == nil {
		return nil, nilOut()
	}
	hdr := (*safeArrayHeader)(raw)
	if hr := safeArrayLock(hdr); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if hdr.dims != 1 {
		violation("bulk array is not one-dimensional")
		safeArrayUnlock(hdr)
		safeArrayDestroy(hdr)
		return nil, E_UNEXPECTED.Err()
	}
	return &SafeArray[T]{raw: hdr}, nil
}

// Len reports the element count. A closed array has length zero.
func (a *SafeArray[T]) Len() int {
	if a.raw == nil {
		return 0
	}
	return int(a.raw.bounds[0].count)
}

// Slice exposes the locked buffer as a typed read-only view. The view is
// invalid after Close.
func (a *SafeArray[T]) Slice() []T {
	if a.raw == nil || a.raw.data == nil {
		return nil
	}
	return unsafe.Slice((*T)(a.raw.data), a.Len())
}

// Close unlocks and then destroys the buffer. Safe to call more than
// once; only the first call releases.
func (a *SafeArray[T]) Close() {
	if a == nil || a.raw == nil {
		return
	}
	safeArrayUnlock(a.raw)
	safeArrayDestroy(a.raw)
	a.raw = nil
}
