package com

import "unsafe"

// Tags this binding understands. The queries this system issues can only
// produce these; anything else is the foreign object misbehaving.
const (
	vtEmpty uint16 = 0
	vtI2    uint16 = 2
	vtI4    uint16 = 3
	vtBSTR  uint16 = 8
	vtBool  uint16 = 11
	vtI1    uint16 = 16
	vtUI1   uint16 = 17
	vtUI2   uint16 = 18
	vtUI4   uint16 = 19
	vtI8    uint16 = 20
	vtUI8   uint16 = 21
)

// Variant mirrors the foreign tagged-union layout on 64-bit targets:
// an 8-byte tag header followed by a 16-byte payload union whose first
// word carries every payload this binding reads.
type Variant struct {
	vt  uint16
	_   [3]uint16
	val int64
	_   uintptr
}

// ValueKind discriminates decoded values.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindText
	KindBool
	KindInt
	KindUint
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	default:
		return "unknown"
	}
}

// Value is one decoded foreign result. A text value owns its string; the
// foreign buffer it came from has already been freed.
type Value struct {
	Kind ValueKind
	Text string
	Bool bool
	Int  int64
	Uint uint64
}

// Decode interprets and consumes the raw union. Text payloads are copied
// out and the foreign string freed, so a Variant can only be decoded
// once; a second decode sees a cleared tag and yields KindUnknown. Tags
// outside the supported set yield KindUnknown too (a panic under
// Strict, since well-behaved foreign objects never emit them here).
func (v *Variant) Decode() Value {
	vt, val := v.vt, v.val
	v.vt = vtEmpty
	v.val = 0
	switch vt {
	case vtBSTR:
		b := BSTRFromPtr(*(**uint16)(unsafe.Pointer(&val)))
		defer b.Close()
		return Value{Kind: KindText, Text: b.String()}
	case vtBool:
		return Value{Kind: KindBool, Bool: int16(val) != 0}
	// Narrow payloads occupy only the low bytes of the union word; the
	// rest is not guaranteed to be zeroed.
	case vtI1:
		return Value{Kind: KindInt, Int: int64(int8(val))}
	case vtI2:
		return Value{Kind: KindInt, Int: int64(int16(val))}
	case vtI4:
		return Value{Kind: KindInt, Int: int64(int32(val))}
	case vtI8:
		return Value{Kind: KindInt, Int: val}
	case vtUI1:
		return Value{Kind: KindUint, Uint: uint64(uint8(val))}
	case vtUI2:
		return Value{Kind: KindUint, Uint: uint64(uint16(val))}
	case vtUI4:
		return Value{Kind: KindUint, Uint: uint64(uint32(val))}
	case vtUI8:
		return Value{Kind: KindUint, Uint: uint64(val)}
	default:
		violation("unsupported variant tag")
		return Value{Kind: KindUnknown}
	}
}

// Close releases an undecoded text payload. Needed only when a Variant
// is abandoned without Decode; harmless otherwise.
func (v *Variant) Close() {
	if v.vt == vtBSTR {
		b := BSTRFromPtr(*(**uint16)(unsafe.Pointer(&v.val)))
		b.Close()
		v.vt = vtEmpty
		v.val = 0
	}
}
