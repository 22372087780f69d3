package vssetup

import (
	"testing"
	"unsafe"

	"vsprereq/internal/com"
)

// fakeObject carries a vtable of opaque tokens; hookSlots routes calls
// on those tokens to Go handlers, standing in for the foreign
// dispatcher. Handlers receive the raw argument words with the receiver
// at index 0.
type fakeObject struct {
	vtbl *[24]uintptr
}

func newFakeObject() *fakeObject {
	var vtbl [24]uintptr
	for i := range vtbl {
		vtbl[i] = uintptr(0x1000 + i)
	}
	return &fakeObject{vtbl: &vtbl}
}

func (f *fakeObject) handle() *com.Unknown {
	return com.FromRaw(unsafe.Pointer(f))
}

func hookSlots(t *testing.T, handlers map[int]func(args []uintptr) uintptr) {
	t.Helper()
	restore := com.SwapDispatcher(func(fn uintptr, args ...uintptr) uintptr {
		h, ok := handlers[int(fn-0x1000)]
		if !ok {
			t.Fatalf("unexpected virtual call: slot %d", int(fn-0x1000))
		}
		return h(args)
	})
	t.Cleanup(func() { com.SwapDispatcher(restore) })
}
