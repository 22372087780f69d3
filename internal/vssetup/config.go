package vssetup

import (
	"runtime"
	"unsafe"

	"vsprereq/internal/com"
)

// ISetupConfiguration vtable layout.
const (
	slotEnumInstances = com.FirstMethodSlot + iota
	slotGetInstanceForCurrentProcess
	slotGetInstanceForPath
	slotEnumAllInstances // first ISetupConfiguration2 method
)

// SetupConfiguration is the entry point of the object model.
//
// Creating one fails unless com.Initialize already ran on this thread.
type SetupConfiguration struct {
	h *com.Unknown
}

// New asks the subsystem for a configuration object.
func New() (*SetupConfiguration, error) {
	h, err := com.CreateInstance(&CLSID_SetupConfiguration, &IID_ISetupConfiguration)
	if err != nil {
		return nil, err
	}
	return &SetupConfiguration{h: h}, nil
}

// EnumInstances returns a cursor over the launchable instances.
func (c *SetupConfiguration) EnumInstances() (*EnumSetupInstances, error) {
	h, err := c.h.CallObject(slotEnumInstances)
	if err != nil {
		return nil, err
	}
	return &EnumSetupInstances{h: h}, nil
}

// EnumAllInstances returns a cursor over all instances, including
// incomplete ones. Requires the v2 capability of the configuration
// object.
func (c *SetupConfiguration) EnumAllInstances() (*EnumSetupInstances, error) {
	v2, err := c.h.Cast(&IID_ISetupConfiguration2)
	if err != nil {
		return nil, err
	}
	defer v2.Close()
	h, err := v2.CallObject(slotEnumAllInstances)
	if err != nil {
		return nil, err
	}
	return &EnumSetupInstances{h: h}, nil
}

// InstanceForCurrentProcess returns the instance the running process
// belongs to, if any.
func (c *SetupConfiguration) InstanceForCurrentProcess() (*SetupInstance, error) {
	h, err := c.h.CallObject(slotGetInstanceForCurrentProcess)
	if err != nil {
		return nil, err
	}
	return &SetupInstance{h: h}, nil
}

// InstanceForPath returns the instance that owns the given filesystem
// path.
func (c *SetupConfiguration) InstanceForPath(path string) (*SetupInstance, error) {
	w := com.NewWideStr(path)
	h, err := c.h.CallObject(slotGetInstanceForPath, uintptr(unsafe.Pointer(w.Ptr())))
	runtime.KeepAlive(w)
	if err != nil {
		return nil, err
	}
	return &SetupInstance{h: h}, nil
}

// Close releases the configuration object.
func (c *SetupConfiguration) Close() {
	c.h.Close()
}
