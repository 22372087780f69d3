package vssetup

import (
	"unsafe"

	"vsprereq/internal/com"
)

// ISetupErrorState vtable layout across its three capability versions.
const (
	slotGetFailedPackages = com.FirstMethodSlot + iota
	slotGetSkippedPackages
	slotGetErrorLogFilePath // first ISetupErrorState2 method
	slotGetLogFilePath
	slotGetRuntimeError // first ISetupErrorState3 method
)

// ISetupErrorInfo vtable layout.
const (
	slotGetErrorHResult = com.FirstMethodSlot + iota
	slotGetErrorClassName
	slotGetErrorMessage
)

// ISetupFailedPackageReference2/3 methods, extending the package
// reference layout.
const (
	slotFailedLogFilePath = slotGetIsExtension + 1 + iota // first ISetupFailedPackageReference2 method
	slotFailedDescription
	slotFailedSignature
	slotFailedDetails
	slotFailedAffectedPackages
	slotFailedAction // first ISetupFailedPackageReference3 method
	slotFailedReturnCode
)

// SetupErrorState records what went wrong during an instance's last
// install operation.
type SetupErrorState struct {
	h *com.Unknown
}

// FailedPackages returns the packages that failed, or nil when none
// did.
func (s *SetupErrorState) FailedPackages() (*FailedPackageList, error) {
	var raw unsafe.Pointer
	if hr := s.h.Call(slotGetFailedPackages, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if raw == nil {
		return nil, nil
	}
	arr, err := com.NewSafeArray[unsafe.Pointer](raw)
	if err != nil {
		return nil, err
	}
	return &FailedPackageList{PackageList{arr: arr}}, nil
}

// SkippedPackages returns the packages that were skipped, or nil when
// none were.
func (s *SetupErrorState) SkippedPackages() (*PackageList, error) {
	var raw unsafe.Pointer
	if hr := s.h.Call(slotGetSkippedPackages, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if raw == nil {
		return nil, nil
	}
	arr, err := com.NewSafeArray[unsafe.Pointer](raw)
	if err != nil {
		return nil, err
	}
	return &PackageList{arr: arr}, nil
}

// ErrorLogFilePath returns the path of the error log.
func (s *SetupErrorState) ErrorLogFilePath() (string, error) {
	v, err := s.h.Cast(&IID_ISetupErrorState2)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.CallString(slotGetErrorLogFilePath)
}

// LogFilePath returns the path of the main log.
func (s *SetupErrorState) LogFilePath() (string, error) {
	v, err := s.h.Cast(&IID_ISetupErrorState2)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.CallString(slotGetLogFilePath)
}

// RuntimeError returns details of the runtime failure, or nil when the
// operation recorded none.
func (s *SetupErrorState) RuntimeError() (*SetupErrorInfo, error) {
	v, err := s.h.Cast(&IID_ISetupErrorState3)
	if err != nil {
		return nil, err
	}
	defer v.Close()
	h, err := v.CallObjectOptional(slotGetRuntimeError)
	if err != nil || h == nil {
		return nil, err
	}
	return &SetupErrorInfo{h: h}, nil
}

// Close releases the error state.
func (s *SetupErrorState) Close() {
	s.h.Close()
}

// SetupErrorInfo describes one runtime failure.
type SetupErrorInfo struct {
	h *com.Unknown
}

// ErrorHResult returns the failure's status code.
func (e *SetupErrorInfo) ErrorHResult() (com.HRESULT, error) {
	var hr com.HRESULT
	if s := e.h.Call(slotGetErrorHResult, uintptr(unsafe.Pointer(&hr))); !s.Succeeded() {
		return 0, s.Err()
	}
	return hr, nil
}

// ErrorClassName returns the foreign exception class name.
func (e *SetupErrorInfo) ErrorClassName() (string, error) {
	return e.h.CallString(slotGetErrorClassName)
}

// ErrorMessage returns the failure message.
func (e *SetupErrorInfo) ErrorMessage() (string, error) {
	return e.h.CallString(slotGetErrorMessage)
}

// Close releases the error info.
func (e *SetupErrorInfo) Close() {
	e.h.Close()
}

// FailedPackageList is a PackageList whose elements carry failure
// details.
type FailedPackageList struct {
	PackageList
}

// At returns a borrowed view of the i-th failed package.
func (l *FailedPackageList) At(i int) *SetupFailedPackageReference {
	return &SetupFailedPackageReference{SetupPackageReference: *l.PackageList.At(i)}
}

// SetupFailedPackageReference is a package reference with failure
// details behind further capability casts.
type SetupFailedPackageReference struct {
	SetupPackageReference
}

// LogFilePath returns the per-package log path.
func (p *SetupFailedPackageReference) LogFilePath() (string, error) {
	return p.callV2String(slotFailedLogFilePath)
}

// Description returns the failure description.
func (p *SetupFailedPackageReference) Description() (string, error) {
	return p.callV2String(slotFailedDescription)
}

// Signature returns the failure signature used for bucketing.
func (p *SetupFailedPackageReference) Signature() (string, error) {
	return p.callV2String(slotFailedSignature)
}

// Details returns the failure detail lines.
func (p *SetupFailedPackageReference) Details() ([]string, error) {
	v, err := p.h.Cast(&IID_ISetupFailedPackageReference2)
	if err != nil {
		return nil, err
	}
	defer v.Close()
	var raw unsafe.Pointer
	if hr := v.Call(slotFailedDetails, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	return bstrArrayStrings(raw)
}

// AffectedPackages returns the packages this failure also affected, or
// nil when none were.
func (p *SetupFailedPackageReference) AffectedPackages() (*PackageList, error) {
	v, err := p.h.Cast(&IID_ISetupFailedPackageReference2)
	if err != nil {
		return nil, err
	}
	defer v.Close()
	var raw unsafe.Pointer
	if hr := v.Call(slotFailedAffectedPackages, uintptr(unsafe.Pointer(&raw))); !hr.Succeeded() {
		return nil, hr.Err()
	}
	if raw == nil {
		return nil, nil
	}
	arr, err := com.NewSafeArray[unsafe.Pointer](raw)
	if err != nil {
		return nil, err
	}
	return &PackageList{arr: arr}, nil
}

// Action returns the install action that failed.
func (p *SetupFailedPackageReference) Action() (string, error) {
	v, err := p.h.Cast(&IID_ISetupFailedPackageReference3)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.CallString(slotFailedAction)
}

// ReturnCode returns the failing action's return code.
func (p *SetupFailedPackageReference) ReturnCode() (string, error) {
	v, err := p.h.Cast(&IID_ISetupFailedPackageReference3)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.CallString(slotFailedReturnCode)
}

func (p *SetupFailedPackageReference) callV2String(slot int) (string, error) {
	v, err := p.h.Cast(&IID_ISetupFailedPackageReference2)
	if err != nil {
		return "", err
	}
	defer v.Close()
	return v.CallString(slot)
}
