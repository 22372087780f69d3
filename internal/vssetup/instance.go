package vssetup

import (
	"fmt"
	"runtime"
	"unsafe"

	"vsprereq/internal/com"
)

// ISetupInstance vtable layout; the ISetupInstance2 methods extend it.
const (
	slotGetInstanceID = com.FirstMethodSlot + iota
	slotGetInstallDate
	slotGetInstallationName
	slotGetInstallationPath
	slotGetInstallationVersion
	slotGetDisplayName
	slotGetDescription
	slotResolvePath
	slotGetState // first ISetupInstance2 method
	slotGetPackages
	slotGetProduct
	slotGetProductPath
	slotGetErrors
	slotIsLaunchable
	slotIsComplete
	slotGetProperties
	slotGetEnginePath
)

// InstanceState is the bit set describing how complete an instance is.
type InstanceState int32

const (
	StateNone             InstanceState = 0
	StateLocal            InstanceState = 1
	StateRegistered       InstanceState = 2
	StateNoRebootRequired InstanceState = 4
	StateNoErrors         InstanceState = 8
	StateComplete         InstanceState = -1
)

func (s InstanceState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateComplete:
		return "Complete"
	default:
		return fmt.Sprintf("Incomplete(%d)", int32(s))
	}
}

// SetupInstance is one discovered installation of the toolchain host.
type SetupInstance struct {
	h *com.Unknown
}

// InstanceID returns the unique identifier of the instance.
func (i *SetupInstance) InstanceID() (string, error) {
	return i.h.CallString(slotGetInstanceID)
}

// InstallDate returns the install time in foreign FILETIME ticks.
func (i *SetupInstance) InstallDate() (uint64, error) {
	var ft uint64
	if hr := i.h.Call(slotGetInstallDate, uintptr(unsafe.Pointer(&ft))); !hr.Succeeded() {
		return 0, hr.Err()
	}
	return ft, nil
}

// InstallationName returns the internal name of the installation.
func (i *SetupInstance) InstallationName() (string, error) {
	return i.h.CallString(slotGetInstallationName)
}

// InstallationPath returns the root install directory.
func (i *SetupInstance) InstallationPath() (string, error) {
	return i.h.CallString(slotGetInstallationPath)
}

// InstallationVersion returns the dotted version string.
func (i *SetupInstance) InstallationVersion() (string, error) {
	return i.h.CallString(slotGetInstallationVersion)
}

// DisplayName returns the localized product name for the given locale.
func (i *SetupInstance) DisplayName(lcid uint32) (string, error) {
	return i.h.CallString(slotGetDisplayName, uintptr(lcid))
}

// Description returns the localized description for the given locale.
func (i *SetupInstance) Description(lcid uint32) (string, error) {
	return i.h.CallString(slotGetDescription, uintptr(lcid))
}

// ResolvePath makes rel absolute against the installation root.
func (i *SetupInstance) ResolvePath(rel string) (string, error) {
	w := com.NewWideStr(rel)
	s, err := i.h.CallString(slotResolvePath, uintptr(unsafe.Pointer(w.Ptr())))
	runtime.KeepAlive(w)
	return s, err
}

// v2 obtains the ISetupInstance2 capability view. Instances predating it
// refuse the cast.
func (i *SetupInstance) v2() (*com.Unknown, error) {
	return i.h.Cast(&IID_ISetupInstance2)
}

// State returns the completeness bit set.
func (i *SetupInstance) State() (InstanceState, error) {
	v2, err := i.v2()
	if err != nil {
		return StateNone, err
	}
	defer v2.Close()
	var s InstanceState
	if hr := v2.Call(slotGetState, uintptr(unsafe.Pointer(&s))); !hr.Succeeded() {
		return StateNone, hr.Err()
	}
	return s, nil
}

// Packages returns the installed package references as a borrowed bulk
// array. The caller must close the list.
func (i *SetupInstance) Packages() (*PackageList, error) {
	v2, err := i.v2()
	if err != nil {
		return nil, err
	}
	defer v2.Close()
	var raw unsafe.Pointer
	if hr := v2.Call(slotGetPackages, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	arr, err := com.NewSafeArray[unsafe.Pointer](raw)
	if err != nil {
		return nil, err
	}
	return &PackageList{arr: arr}, nil
}

// Product returns the product package reference, or nil when the
// instance reports none.
func (i *SetupInstance) Product() (*SetupProductReference, error) {
	v2, err := i.v2()
	if err != nil {
		return nil, err
	}
	defer v2.Close()
	h, err := v2.CallObjectOptional(slotGetProduct)
	if err != nil || h == nil {
		return nil, err
	}
	return &SetupProductReference{SetupPackageReference{h: h}}, nil
}

// ProductPath returns the path to the main product executable.
func (i *SetupInstance) ProductPath() (string, error) {
	v2, err := i.v2()
	if err != nil {
		return "", err
	}
	defer v2.Close()
	return v2.CallString(slotGetProductPath)
}

// Errors returns the last-operation error state, or nil when there is
// none.
func (i *SetupInstance) Errors() (*SetupErrorState, error) {
	v2, err := i.v2()
	if err != nil {
		return nil, err
	}
	defer v2.Close()
	h, err := v2.CallObjectOptional(slotGetErrors)
	if err != nil || h == nil {
		return nil, err
	}
	return &SetupErrorState{h: h}, nil
}

// IsLaunchable reports whether the instance can currently be started.
func (i *SetupInstance) IsLaunchable() (bool, error) {
	v2, err := i.v2()
	if err != nil {
		return false, err
	}
	defer v2.Close()
	return v2.CallBool(slotIsLaunchable)
}

// IsComplete reports whether the installation finished without missing
// pieces.
func (i *SetupInstance) IsComplete() (bool, error) {
	v2, err := i.v2()
	if err != nil {
		return false, err
	}
	defer v2.Close()
	return v2.CallBool(slotIsComplete)
}

// Properties returns the instance's custom property store, or nil when
// it has none.
func (i *SetupInstance) Properties() (*SetupPropertyStore, error) {
	v2, err := i.v2()
	if err != nil {
		return nil, err
	}
	defer v2.Close()
	h, err := v2.CallObjectOptional(slotGetProperties)
	if err != nil || h == nil {
		return nil, err
	}
	return &SetupPropertyStore{h: h}, nil
}

// EnginePath returns the directory holding the maintenance engine.
func (i *SetupInstance) EnginePath() (string, error) {
	v2, err := i.v2()
	if err != nil {
		return "", err
	}
	defer v2.Close()
	return v2.CallString(slotGetEnginePath)
}

// Catalog casts the instance to its catalog capability.
func (i *SetupInstance) Catalog() (*SetupInstanceCatalog, error) {
	h, err := i.h.Cast(&IID_ISetupInstanceCatalog)
	if err != nil {
		return nil, err
	}
	return &SetupInstanceCatalog{h: h}, nil
}

// PropertyStore casts the instance itself to a property store, exposing
// the registration properties (channelId and friends).
func (i *SetupInstance) PropertyStore() (*SetupPropertyStore, error) {
	h, err := i.h.Cast(&IID_ISetupPropertyStore)
	if err != nil {
		return nil, err
	}
	return &SetupPropertyStore{h: h}, nil
}

// Close releases the instance handle.
func (i *SetupInstance) Close() {
	i.h.Close()
}
