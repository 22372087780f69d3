package vssetup

import (
	"runtime"
	"unsafe"

	"vsprereq/internal/com"
)

// ISetupPropertyStore vtable layout.
const (
	slotGetNames = com.FirstMethodSlot + iota
	slotGetValue
)

// SetupPropertyStore is a read-only key/value store of foreign values.
type SetupPropertyStore struct {
	h *com.Unknown
}

// Names lists the property names held by the store.
func (s *SetupPropertyStore) Names() ([]string, error) {
	var raw unsafe.Pointer
	if hr := s.h.Call(slotGetNames, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	return bstrArrayStrings(raw)
}

// Value looks name up and decodes the resulting tagged union.
func (s *SetupPropertyStore) Value(name string) (com.Value, error) {
	w := com.NewWideStr(name)
	var v com.Variant
	hr := s.h.Call(slotGetValue,
		uintptr(unsafe.Pointer(w.Ptr())),
		uintptr(unsafe.Pointer(&v)))
	runtime.KeepAlive(w)
	if !hr.Succeeded() {
		return com.Value{}, hr.Err()
	}
	return v.Decode(), nil
}

// Close releases the store.
func (s *SetupPropertyStore) Close() {
	s.h.Close()
}

// bstrArrayStrings copies a bulk array of foreign strings into Go
// strings and releases the array. The elements are owned by the array,
// so they are read in place and never freed individually.
func bstrArrayStrings(raw unsafe.Pointer) ([]string, error) {
	arr, err := com.NewSafeArray[*uint16](raw)
	if err != nil {
		return nil, err
	}
	defer arr.Close()
	out := make([]string, 0, arr.Len())
	for _, p := range arr.Slice() {
		w, ok := com.WideStrFromPtr(p)
		if !ok {
			out = append(out, "")
			continue
		}
		out = append(out, w.String())
	}
	return out, nil
}
