// Package com binds the foreign COM object protocol: process lifecycle,
// reference-counted interface handles, capability casting, tagged-union
// (VARIANT) decoding, locked bulk arrays (SAFEARRAY), and wide strings.
//
// The package is strictly single-threaded. Initialize must complete on a
// thread before any handle is created there, and Uninitialize must never
// run while a handle from that thread is still live. Neither ordering is
// verified at runtime; it is a caller precondition. Handles, variants,
// and arrays are single-owner values and must not cross goroutines.
package com
