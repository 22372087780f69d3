package com

// Hooks for the process-wide lifecycle entry points. The sys
// implementations live in syscall_windows.go; tests swap these to
// observe or fake the calls.
var (
	coInitializeEx = sysCoInitializeEx
	coUninitialize = sysCoUninitialize
)

// Initialize claims the foreign object subsystem for the calling thread.
// It must complete before any handle is created on that thread. The
// returned error wraps the foreign status code on failure.
func Initialize() error {
	return coInitializeEx().Err()
}

// Uninitialize releases the thread's claim on the subsystem.
//
// Calling it while any handle created on this thread is still live is
// undefined. The workflow never calls it directly and lets process exit
// reclaim the subsystem; it exists for WithCOM and for embedders that can
// prove all handles are dead.
func Uninitialize() {
	coUninitialize()
}

// WithCOM runs f between Initialize and Uninitialize. f's result is
// produced before teardown. The caller must ensure no handle escapes f.
func WithCOM(f func() error) error {
	if err := Initialize(); err != nil {
		return err
	}
	err := f()
	Uninitialize()
	return err
}
