package com

import "unsafe"

// Virtual dispatch hook; tests swap this to intercept method calls made
// through fake vtables.
var callVirtual = sysCallVirtual

// SwapDispatcher replaces the virtual-call dispatcher and returns the
// previous one. Tests in binding packages use it to route calls on fake
// vtables to Go handlers; restore the returned dispatcher when done.
func SwapDispatcher(fn func(uintptr, ...uintptr) uintptr) func(uintptr, ...uintptr) uintptr {
	old := callVirtual
	callVirtual = fn
	return old
}

var coCreateInstance = sysCoCreateInstance

// IUnknown vtable slots shared by every capability.
const (
	slotQueryInterface = 0
	slotAddRef         = 1
	slotRelease        = 2
)

// FirstMethodSlot is the vtable slot of the first capability-specific
// method, immediately after the IUnknown triple.
const FirstMethodSlot = 3

// Unknown is a live, single-owner reference to one capability view of a
// foreign object. It must not be copied; use Clone for an additional
// reference. Close releases the foreign reference exactly once.
type Unknown struct {
	ptr unsafe.Pointer
}

// FromRaw wraps a raw interface pointer. The caller transfers ownership
// of one foreign reference to the returned handle.
func FromRaw(p unsafe.Pointer) *Unknown {
	if p == nil {
		return nil
	}
	return &Unknown{ptr: p}
}

// CreateInstance asks the subsystem for a new object of class clsid bound
// to the capability iid.
func CreateInstance(clsid, iid *GUID) (*Unknown, error) {
	p, hr := coCreateInstance(clsid, iid)
	if !hr.Succeeded() {
		return nil, hr.Err()
	}
	if p == nil {
		return nil, nilOut()
	}
	return &Unknown{ptr: p}, nil
}

// Raw exposes the underlying interface pointer without transferring
// ownership.
func (u *Unknown) Raw() unsafe.Pointer {
	return u.ptr
}

// slot reads the vtable entry at index i.
func (u *Unknown) slot(i int) uintptr {
	vtbl := *(*uintptr)(u.ptr)
	return *(*uintptr)(unsafe.Pointer(vtbl + uintptr(i)*unsafe.Sizeof(uintptr(0))))
}

// Call invokes the method at vtable slot i with u as the receiver and
// returns the foreign status. Out parameters written by the method are
// only initialized when the status succeeded.
//
// Arguments are opaque words. When an argument is the address of
// Go-managed memory that is not otherwise live across the call (a
// NewWideStr buffer, say), the caller must pin it with
// runtime.KeepAlive after Call returns; the uintptr conversion alone
// does not keep it reachable through this frame.
func (u *Unknown) Call(i int, args ...uintptr) HRESULT {
	all := make([]uintptr, 0, len(args)+1)
	all = append(all, uintptr(u.ptr))
	all = append(all, args...)
	return hresultFrom(callVirtual(u.slot(i), all...))
}

// Cast returns a new handle bound to the iid capability view of the same
// underlying object. The source handle stays valid regardless of the
// outcome; an object that does not implement the capability fails with
// E_NOINTERFACE.
func (u *Unknown) Cast(iid *GUID) (*Unknown, error) {
	var out unsafe.Pointer
	hr := u.Call(slotQueryInterface,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if !hr.Succeeded() {
		return nil, hr.Err()
	}
	if out == nil {
		return nil, nilOut()
	}
	return &Unknown{ptr: out}, nil
}

// Clone takes an additional foreign reference and returns an independent
// handle to the same capability view.
func (u *Unknown) Clone() *Unknown {
	u.Call(slotAddRef)
	return &Unknown{ptr: u.ptr}
}

// Close drops the handle's foreign reference. Further calls are no-ops.
func (u *Unknown) Close() {
	if u == nil || u.ptr == nil {
		return
	}
	u.Call(slotRelease)
	u.ptr = nil
}

// CallObject invokes a method whose final out parameter must receive a
// new object reference. A success status with a nil out pointer is a
// contract violation.
func (u *Unknown) CallObject(i int, args ...uintptr) (*Unknown, error) {
	var out unsafe.Pointer
	all := append(append([]uintptr{}, args...), uintptr(unsafe.Pointer(&out)))
	if hr := u.Call(i, all...); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if out == nil {
		return nil, nilOut()
	}
	return &Unknown{ptr: out}, nil
}

// CallObjectOptional is CallObject for methods that may legitimately
// report success with no object; it then returns (nil, nil).
func (u *Unknown) CallObjectOptional(i int, args ...uintptr) (*Unknown, error) {
	var out unsafe.Pointer
	all := append(append([]uintptr{}, args...), uintptr(unsafe.Pointer(&out)))
	if hr := u.Call(i, all...); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if out == nil {
		return nil, nil
	}
	return &Unknown{ptr: out}, nil
}

// CallString invokes a method whose final out parameter receives an
// owned foreign string, copies it out, and frees it.
func (u *Unknown) CallString(i int, args ...uintptr) (string, error) {
	var p *uint16
	all := append(append([]uintptr{}, args...), uintptr(unsafe.Pointer(&p)))
	if hr := u.Call(i, all...); !hr.Succeeded() {
		return "", hr.Err()
	}
	b := BSTRFromPtr(p)
	defer b.Close()
	return b.String(), nil
}

// CallBool invokes a method whose final out parameter receives a foreign
// 16-bit boolean.
func (u *Unknown) CallBool(i int, args ...uintptr) (bool, error) {
	var v int16
	all := append(append([]uintptr{}, args...), uintptr(unsafe.Pointer(&v)))
	if hr := u.Call(i, all...); !hr.Succeeded() {
		return false, hr.Err()
	}
	return v != 0, nil
}

// nilOut covers calls that reported success but never initialized their
// out pointer. A well-behaved foreign object never does this.
func nilOut() error {
	violation("success status with nil out pointer")
	return E_POINTER.Err()
}
