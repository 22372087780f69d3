//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const clsctxAll = 23

var (
	ole32    = windows.NewLazySystemDLL("ole32.dll")
	oleaut32 = windows.NewLazySystemDLL("oleaut32.dll")

	procCoInitializeEx   = ole32.NewProc("CoInitializeEx")
	procCoUninitialize   = ole32.NewProc("CoUninitialize")
	procCoCreateInstance = ole32.NewProc("CoCreateInstance")
	procSafeArrayLock    = oleaut32.NewProc("SafeArrayLock")
	procSafeArrayUnlock  = oleaut32.NewProc("SafeArrayUnlock")
	procSafeArrayDestroy = oleaut32.NewProc("SafeArrayDestroy")
	procSysFreeString    = oleaut32.NewProc("SysFreeString")
)

func sysCoInitializeEx() HRESULT {
	r, _, _ := procCoInitializeEx.Call(0, 0)
	return hresultFrom(r)
}

func sysCoUninitialize() {
	_, _, _ = procCoUninitialize.Call()
}

func sysCoCreateInstance(clsid, iid *GUID) (unsafe.Pointer, HRESULT) {
	var out unsafe.Pointer
	r, _, _ := procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(clsid)),
		0,
		clsctxAll,
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)),
	)
	return out, hresultFrom(r)
}

func sysCallVirtual(fn uintptr, args ...uintptr) uintptr {
	r, _, _ := syscall.SyscallN(fn, args...)
	return r
}

func sysSafeArrayLock(sa *safeArrayHeader) HRESULT {
	r, _, _ := procSafeArrayLock.Call(uintptr(unsafe.Pointer(sa)))
	return hresultFrom(r)
}

func sysSafeArrayUnlock(sa *safeArrayHeader) HRESULT {
	r, _, _ := procSafeArrayUnlock.Call(uintptr(unsafe.Pointer(sa)))
	return hresultFrom(r)
}

func sysSafeArrayDestroy(sa *safeArrayHeader) HRESULT {
	r, _, _ := procSafeArrayDestroy.Call(uintptr(unsafe.Pointer(sa)))
	return hresultFrom(r)
}

func sysFreeBSTR(p *uint16) {
	_, _, _ = procSysFreeString.Call(uintptr(unsafe.Pointer(p)))
}
