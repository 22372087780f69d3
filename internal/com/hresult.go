package com

import (
	"errors"
	"fmt"
)

// HRESULT is a foreign status code. Zero and other non-negative values
// report success; negative values are error codes. The layer does not
// interpret codes beyond that split, with one exception: S_FALSE, which
// enumeration uses as its "no more items" sentinel.
type HRESULT int32

// Status codes used by this binding. Names follow the foreign
// documentation, as go-ole and the platform headers do.
const (
	S_OK          HRESULT = 0
	S_FALSE       HRESULT = 1
	E_NOINTERFACE HRESULT = -2147467262 // 0x80004002
	E_POINTER     HRESULT = -2147467261 // 0x80004003
	E_INVALIDARG  HRESULT = -2147024809 // 0x80070057
	E_UNEXPECTED  HRESULT = -2147418113 // 0x8000FFFF
)

// Succeeded reports whether hr is a success status.
func (hr HRESULT) Succeeded() bool {
	return hr >= 0
}

// Err returns nil for success statuses and an *Error otherwise.
func (hr HRESULT) Err() error {
	if hr.Succeeded() {
		return nil
	}
	return &Error{HR: hr}
}

// Error carries a failing foreign status code.
type Error struct {
	HR HRESULT
}

func (e *Error) Error() string {
	return fmt.Sprintf("HRESULT 0x%08X", uint32(e.HR))
}

// Code extracts the HRESULT from err if it is (or wraps) an *Error.
// The second result reports whether one was found.
func Code(err error) (HRESULT, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.HR, true
	}
	return 0, false
}

func hresultFrom(r uintptr) HRESULT {
	return HRESULT(int32(uint32(r)))
}
