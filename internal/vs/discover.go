package vs

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"vsprereq/internal/com"
	"vsprereq/internal/vssetup"
)

// setupEnginePath is the property naming each instance's maintenance
// tool. Instances missing it fall back to the conventional location.
const setupEnginePath = "setupEngineFilePath"

// Discover enumerates the machine's Visual Studio installations and
// classifies each one's components. Instances that cannot be fully read
// are dropped rather than failing the pass, so one half-registered
// installation cannot hide the healthy ones. An unreachable setup
// configuration service yields an empty result.
func Discover(lcid uint32) []*Instance {
	cfg, err := vssetup.New()
	if err != nil {
		return nil
	}
	defer cfg.Close()

	enum, err := cfg.EnumInstances()
	if err != nil {
		return nil
	}
	defer enum.Close()

	native := ToolsetFor(runtime.GOARCH)
	var found []*Instance
	for si := range enum.All() {
		if inst := gather(si, lcid, native); inst != nil {
			found = append(found, inst)
		}
		si.Close()
	}
	return found
}

// gather reads one enumerated instance into an Instance, or nil when
// any required field cannot be read or the installation generation is
// too old to repair.
func gather(si *vssetup.SetupInstance, lcid uint32, native Toolset) *Instance {
	product, err := si.Product()
	if err != nil || product == nil {
		return nil
	}
	productID, err := product.ID()
	product.Close()
	if err != nil {
		return nil
	}
	kind, ok := ParseProduct(productID)
	if !ok {
		return nil
	}

	installPath, err := si.InstallationPath()
	if err != nil {
		return nil
	}
	displayName, err := si.DisplayName(lcid)
	if err != nil {
		return nil
	}
	version, err := si.InstallationVersion()
	if err != nil {
		return nil
	}
	major := majorOf(version)
	// Visual Studio 2017 and older are untested generations; repairing
	// them is out of scope.
	if major < 16 {
		return nil
	}

	setupPath, ok := enginePath(si)
	if !ok {
		return nil
	}

	inst := &Instance{
		DisplayName: displayName,
		Major:       major,
		Product:     kind,
		InstallPath: installPath,
		SetupPath:   setupPath,
	}
	if packages, err := si.Packages(); err == nil {
		inst.Toolset, inst.SDK = classify(packageIDs(packages), native)
		packages.Close()
	}
	return inst
}

func majorOf(version string) int {
	prefix, _, ok := strings.Cut(version, ".")
	if !ok {
		return 0
	}
	major, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return major
}

// enginePath resolves the instance's maintenance tool from its
// property store, with the conventional %ProgramFiles(x86)% location as
// fallback when the property holds no text value.
func enginePath(si *vssetup.SetupInstance) (string, bool) {
	props, err := si.Properties()
	if err != nil || props == nil {
		return "", false
	}
	defer props.Close()
	v, err := props.Value(setupEnginePath)
	if err != nil {
		return "", false
	}
	if v.Kind == com.KindText {
		return v.Text, true
	}
	return fallbackEnginePath(), true
}

func fallbackEnginePath() string {
	programFiles := os.Getenv("ProgramFiles(x86)")
	if programFiles == "" {
		// Almost certainly correct on any system old enough to lack the
		// variable.
		programFiles = `C:\Program Files (x86)`
	}
	return filepath.Join(programFiles, "Microsoft Visual Studio", "installer", "setup.exe")
}

func packageIDs(packages *vssetup.PackageList) []string {
	ids := make([]string, 0, packages.Len())
	for i := 0; i < packages.Len(); i++ {
		if id, err := packages.At(i).ID(); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
