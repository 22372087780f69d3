package com

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGUIDRoundTrip(t *testing.T) {
	const text = "{B41463C3-8866-43B5-BC33-2B0676F7F42E}"
	g, err := ParseGUID(text)
	require.NoError(t, err)
	require.Equal(t, uint32(0xB41463C3), g.Data1)
	require.Equal(t, uint16(0x8866), g.Data2)
	require.Equal(t, uint16(0x43B5), g.Data3)
	require.Equal(t, [8]byte{0xBC, 0x33, 0x2B, 0x06, 0x76, 0xF7, 0xF4, 0x2E}, g.Data4)
	require.Equal(t, text, g.String())
}

func TestParseGUIDUnbraced(t *testing.T) {
	braced, err := ParseGUID("{177F0C4A-1CD3-4DE7-A32C-71DBBB9FA36D}")
	require.NoError(t, err)
	bare, err := ParseGUID("177F0C4A-1CD3-4DE7-A32C-71DBBB9FA36D")
	require.NoError(t, err)
	require.Equal(t, braced, bare)
}

func TestParseGUIDMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"{}",
		"{177F0C4A-1CD3-4DE7-A32C}",
		"{177F0C4A-1CD3-4DE7-A32C-71DBBB9FA36D-00}",
		"{ZZZF0C4A-1CD3-4DE7-A32C-71DBBB9FA36D}",
	} {
		_, err := ParseGUID(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestMustGUIDPanics(t *testing.T) {
	require.Panics(t, func() { MustGUID("not-a-guid") })
}
