//go:build !windows

package com

import "unsafe"

// The foreign subsystem only exists on Windows. These stubs keep the
// package compiling elsewhere so the portable logic stays testable;
// tests replace the hook variables and never reach them.

func sysCoInitializeEx() HRESULT {
	panic("com: foreign object subsystem requires windows")
}

func sysCoUninitialize() {}

func sysCoCreateInstance(_, _ *GUID) (unsafe.Pointer, HRESULT) {
	panic("com: foreign object subsystem requires windows")
}

func sysCallVirtual(_ uintptr, _ ...uintptr) uintptr {
	panic("com: virtual dispatch requires windows")
}

func sysSafeArrayLock(_ *safeArrayHeader) HRESULT {
	panic("com: bulk arrays require windows")
}

func sysSafeArrayUnlock(_ *safeArrayHeader) HRESULT {
	panic("com: bulk arrays require windows")
}

func sysSafeArrayDestroy(_ *safeArrayHeader) HRESULT {
	panic("com: bulk arrays require windows")
}

func sysFreeBSTR(_ *uint16) {}
