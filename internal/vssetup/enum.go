package vssetup

import (
	"errors"
	"iter"
	"unsafe"

	"vsprereq/internal/com"
)

// IEnumSetupInstances vtable layout.
const (
	slotNext = com.FirstMethodSlot + iota
	slotSkip
	slotReset
	slotClone
)

// Done reports ordinary exhaustion of a cursor. It is distinct from both
// success and real errors, mirroring the foreign "no more items"
// sentinel.
var Done = errors.New("vssetup: no more instances")

// EnumSetupInstances is a batched pull cursor over setup instances,
// restartable via Reset or by cloning a cursor still at the start.
type EnumSetupInstances struct {
	h *com.Unknown
}

// Next pulls up to max instances. It returns Done on exhaustion and the
// foreign error otherwise; returned instances are owned by the caller
// and must be closed.
func (e *EnumSetupInstances) Next(max int) ([]*SetupInstance, error) {
	if max <= 0 {
		return nil, nil
	}
	raw := make([]unsafe.Pointer, max)
	var fetched uint32
	hr := e.h.Call(slotNext,
		uintptr(max),
		uintptr(unsafe.Pointer(&raw[0])),
		uintptr(unsafe.Pointer(&fetched)))
	if err := nextStatus(hr, fetched, uint32(max)); err != nil {
		// A short final batch still hands us references; release them
		// so ending the sequence cannot leak.
		for _, p := range raw[:min(int(fetched), max)] {
			com.FromRaw(p).Close()
		}
		return nil, err
	}
	out := make([]*SetupInstance, 0, fetched)
	for _, p := range raw[:fetched] {
		out = append(out, &SetupInstance{h: com.FromRaw(p)})
	}
	return out, nil
}

// nextStatus classifies one pull: nil accepts the fetched items, Done
// reports exhaustion, anything else is an error. A fetch count above the
// requested maximum means the other side of the protocol has gone very
// wrong.
func nextStatus(hr com.HRESULT, fetched, max uint32) error {
	switch {
	case hr == com.S_FALSE:
		return Done
	case !hr.Succeeded():
		return hr.Err()
	case fetched > max:
		return com.E_UNEXPECTED.Err()
	default:
		return nil
	}
}

// Skip advances past n instances and reports whether that many were
// actually available.
func (e *EnumSetupInstances) Skip(n uint32) (bool, error) {
	hr := e.h.Call(slotSkip, uintptr(n))
	if hr == com.S_FALSE {
		return false, nil
	}
	if err := hr.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Reset rewinds the cursor to the start. Idempotent.
func (e *EnumSetupInstances) Reset() {
	e.h.Call(slotReset)
}

// Clone returns an independent cursor at the same position.
func (e *EnumSetupInstances) Clone() (*EnumSetupInstances, error) {
	h, err := e.h.CallObject(slotClone)
	if err != nil {
		return nil, err
	}
	return &EnumSetupInstances{h: h}, nil
}

// All is the convenience iterator form: single-item pulls until anything
// other than plain success comes back. That deliberately conflates
// exhaustion with foreign failure; callers that need the distinction use
// Next. Each yielded instance is owned by the caller.
func (e *EnumSetupInstances) All() iter.Seq[*SetupInstance] {
	return drain(e.pullOne)
}

func (e *EnumSetupInstances) pullOne() (*SetupInstance, bool) {
	var raw unsafe.Pointer
	hr := e.h.Call(slotNext, 1, uintptr(unsafe.Pointer(&raw)), 0)
	if hr != com.S_OK || raw == nil {
		return nil, false
	}
	return &SetupInstance{h: com.FromRaw(raw)}, true
}

// drain adapts a single-item pull into a finite sequence.
func drain[T any](pull func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := pull()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Close releases the cursor.
func (e *EnumSetupInstances) Close() {
	e.h.Close()
}
