package vssetup

import (
	"unsafe"

	"vsprereq/internal/com"
)

// ISetupPackageReference vtable layout; product-reference methods
// extend it.
const (
	slotGetID = com.FirstMethodSlot + iota
	slotGetVersion
	slotGetChip
	slotGetLanguage
	slotGetBranch
	slotGetType
	slotGetUniqueID
	slotGetIsExtension
	slotGetIsInstalled        // first ISetupProductReference method
	slotGetSupportsExtensions // first ISetupProductReference2 method
)

// SetupPackageReference identifies one package of an instance.
type SetupPackageReference struct {
	h *com.Unknown
}

// ID returns the package identifier.
func (p *SetupPackageReference) ID() (string, error) {
	return p.h.CallString(slotGetID)
}

// Version returns the package version string.
func (p *SetupPackageReference) Version() (string, error) {
	return p.h.CallString(slotGetVersion)
}

// Chip returns the target processor architecture.
func (p *SetupPackageReference) Chip() (string, error) {
	return p.h.CallString(slotGetChip)
}

// Language returns the package language tag.
func (p *SetupPackageReference) Language() (string, error) {
	return p.h.CallString(slotGetLanguage)
}

// Branch returns the build branch of the package.
func (p *SetupPackageReference) Branch() (string, error) {
	return p.h.CallString(slotGetBranch)
}

// Type returns the package kind (Workload, Component, Vsix, ...).
func (p *SetupPackageReference) Type() (string, error) {
	return p.h.CallString(slotGetType)
}

// UniqueID returns the fully qualified package identity.
func (p *SetupPackageReference) UniqueID() (string, error) {
	return p.h.CallString(slotGetUniqueID)
}

// IsExtension reports whether the package was installed as an extension.
func (p *SetupPackageReference) IsExtension() (bool, error) {
	return p.h.CallBool(slotGetIsExtension)
}

// PropertyStore casts the package to its property-store capability.
func (p *SetupPackageReference) PropertyStore() (*SetupPropertyStore, error) {
	h, err := p.h.Cast(&IID_ISetupPropertyStore)
	if err != nil {
		return nil, err
	}
	return &SetupPropertyStore{h: h}, nil
}

// Close releases the reference. Never call it on a borrowed reference
// handed out by a PackageList.
func (p *SetupPackageReference) Close() {
	p.h.Close()
}

// SetupProductReference is the package reference an instance reports as
// its product. The protocol hands it back as a plain package reference;
// the product-specific methods live behind further capability casts.
type SetupProductReference struct {
	SetupPackageReference
}

// IsInstalled reports whether the product itself is installed.
func (p *SetupProductReference) IsInstalled() (bool, error) {
	v, err := p.h.Cast(&IID_ISetupProductReference)
	if err != nil {
		return false, err
	}
	defer v.Close()
	return v.CallBool(slotGetIsInstalled)
}

// SupportsExtensions reports whether the product hosts extensions.
func (p *SetupProductReference) SupportsExtensions() (bool, error) {
	v, err := p.h.Cast(&IID_ISetupProductReference2)
	if err != nil {
		return false, err
	}
	defer v.Close()
	return v.CallBool(slotGetSupportsExtensions)
}

// PackageList is a locked bulk array of package references. Elements are
// borrowed views owned by the array; Close releases the whole list and
// invalidates them.
type PackageList struct {
	arr *com.SafeArray[unsafe.Pointer]
}

// Len reports the number of packages.
func (l *PackageList) Len() int {
	return l.arr.Len()
}

// At returns a borrowed view of the i-th package. The view must not be
// closed and must not outlive the list.
func (l *PackageList) At(i int) *SetupPackageReference {
	return &SetupPackageReference{h: com.FromRaw(l.arr.Slice()[i])}
}

// Close unlocks and destroys the underlying array exactly once.
func (l *PackageList) Close() {
	l.arr.Close()
}
