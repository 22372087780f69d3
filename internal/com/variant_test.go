package com

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// countFrees replaces the foreign string deallocator with a counter for
// the duration of the test.
func countFrees(t *testing.T) *int {
	t.Helper()
	n := 0
	old := freeBSTR
	freeBSTR = func(*uint16) { n++ }
	t.Cleanup(func() { freeBSTR = old })
	return &n
}

func textVariant(p *uint16) *Variant {
	v := &Variant{vt: vtBSTR}
	*(**uint16)(unsafe.Pointer(&v.val)) = p
	return v
}

func TestVariantSizeAndAlign(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("layout mirrored for 64-bit targets only")
	}
	require.Equal(t, uintptr(24), unsafe.Sizeof(Variant{}))
	require.Equal(t, uintptr(8), unsafe.Alignof(Variant{}))
}

func TestVariantDecodeText(t *testing.T) {
	frees := countFrees(t)
	buf := units("C:\\Installer\\setup.exe", true)

	got := textVariant(&buf[0]).Decode()
	require.Equal(t, KindText, got.Kind)
	require.Equal(t, "C:\\Installer\\setup.exe", got.Text)
	require.Equal(t, 1, *frees, "text ownership transfers exactly once")
}

func TestVariantDecodeScalars(t *testing.T) {
	tests := []struct {
		name string
		vt   uint16
		val  int64
		want Value
	}{
		{"bool true", vtBool, -1, Value{Kind: KindBool, Bool: true}},
		{"bool false", vtBool, 0, Value{Kind: KindBool, Bool: false}},
		{"i2", vtI2, 17, Value{Kind: KindInt, Int: 17}},
		{"i8 negative", vtI8, -9, Value{Kind: KindInt, Int: -9}},
		{"ui4", vtUI4, 19041, Value{Kind: KindUint, Uint: 19041}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := &Variant{vt: tc.vt, val: tc.val}
			require.Equal(t, tc.want, v.Decode())
		})
	}
}

func TestVariantDecodeConsumes(t *testing.T) {
	frees := countFrees(t)
	buf := units("once", true)
	v := textVariant(&buf[0])

	first := v.Decode()
	require.Equal(t, KindText, first.Kind)

	// The raw value is spent: a second decode must not touch the freed
	// buffer and reports the unknown kind.
	second := v.Decode()
	require.Equal(t, KindUnknown, second.Kind)
	require.Equal(t, 1, *frees)
}

func TestVariantDecodeUnsupportedTag(t *testing.T) {
	v := &Variant{vt: 42}
	require.Equal(t, KindUnknown, v.Decode().Kind)
}

func TestVariantDecodeUnsupportedTagStrict(t *testing.T) {
	Strict = true
	t.Cleanup(func() { Strict = false })
	v := &Variant{vt: 42}
	require.Panics(t, func() { v.Decode() })
}

func TestVariantCloseFreesAbandonedText(t *testing.T) {
	frees := countFrees(t)
	buf := units("abandoned", true)
	v := textVariant(&buf[0])
	v.Close()
	v.Close()
	require.Equal(t, 1, *frees)
}
