package com

// Strict selects how protocol contract violations are handled: an
// unsupported VARIANT tag, a SAFEARRAY that is not one-dimensional, or a
// successful call that left its out pointer nil. These indicate the
// foreign object misbehaved in a way no retry can fix. When Strict is
// false (the default) they surface as recoverable errors or the Unknown
// value kind; when true they panic immediately. Diagnostic builds and
// tests set it once at startup.
var Strict bool

func violation(msg string) {
	if Strict {
		panic("com: " + msg)
	}
}
