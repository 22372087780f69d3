package com

import (
	"unicode/utf16"
	"unsafe"
)

// Hook for the foreign string deallocator.
var freeBSTR = sysFreeBSTR

// BSTR is an owned foreign string. The owner must call Close exactly
// once; Close is idempotent so deferring it is safe.
type BSTR struct {
	p *uint16
}

// BSTRFromPtr takes ownership of a foreign string pointer. A nil pointer
// yields an empty BSTR, mirroring the foreign convention that a nil BSTR
// is the empty string.
func BSTRFromPtr(p *uint16) BSTR {
	return BSTR{p: p}
}

// Slice returns the string's code units up to (not including) the
// terminating NUL. The slice borrows the foreign buffer and must not be
// used after Close.
func (b BSTR) Slice() []uint16 {
	return sliceToNul(b.p)
}

// String decodes the string into Go-owned UTF-8.
func (b BSTR) String() string {
	return string(utf16.Decode(b.Slice()))
}

// Close frees the foreign buffer. Safe to call on an empty BSTR and
// safe to call more than once.
func (b *BSTR) Close() {
	if b.p != nil {
		freeBSTR(b.p)
		b.p = nil
	}
}

// sliceToNul forms a view over a NUL-terminated code-unit buffer.
func sliceToNul(p *uint16) []uint16 {
	if p == nil {
		return nil
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Add(ptr, 2) {
		n++
	}
	return unsafe.Slice(p, n)
}
