package com

import "unicode/utf16"

// WideStr is a read-only view over a NUL-terminated foreign string
// buffer. It borrows the buffer and is only valid while the buffer is.
// Equality is by content, never by address.
type WideStr struct {
	p *uint16
}

// WideStrFromSlice forms a view over s. The first NUL in s must be its
// last element; anything else is E_INVALIDARG.
func WideStrFromSlice(s []uint16) (WideStr, error) {
	for i, u := range s {
		if u == 0 {
			if i != len(s)-1 {
				return WideStr{}, E_INVALIDARG.Err()
			}
			return WideStr{p: &s[0]}, nil
		}
	}
	return WideStr{}, E_INVALIDARG.Err()
}

// WideStrFromPtr forms a view over a raw pointer without checking
// termination. A nil pointer yields no view rather than an error.
func WideStrFromPtr(p *uint16) (WideStr, bool) {
	if p == nil {
		return WideStr{}, false
	}
	return WideStr{p: p}, true
}

// NewWideStr encodes a Go string into an owned, NUL-terminated buffer
// and returns a view over it. s must not contain a NUL.
func NewWideStr(s string) WideStr {
	buf := append(utf16.Encode([]rune(s)), 0)
	return WideStr{p: &buf[0]}
}

// Ptr returns the view's raw pointer for passing to foreign calls.
func (w WideStr) Ptr() *uint16 {
	return w.p
}

// Len reports the number of code units before the terminating NUL.
func (w WideStr) Len() int {
	return len(w.Slice())
}

// Slice returns the code units up to the terminating NUL.
func (w WideStr) Slice() []uint16 {
	return sliceToNul(w.p)
}

// String decodes the view into Go-owned UTF-8.
func (w WideStr) String() string {
	return string(utf16.Decode(w.Slice()))
}

// Equal reports whether two views have the same content.
func (w WideStr) Equal(o WideStr) bool {
	a, b := w.Slice(), o.Slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualBSTR reports whether the view's content equals an owned foreign
// string's content.
func (w WideStr) EqualBSTR(b BSTR) bool {
	other := WideStr{p: b.p}
	return w.Equal(other)
}
