// Package winsdk probes the host for an installed Windows SDK. The SDK
// ships outside Visual Studio's own install tree, so package presence
// in an instance is not proof it is actually usable; this probe checks
// the kit directories themselves.
package winsdk

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SDK is one usable Windows SDK installation.
type SDK struct {
	// Root is the kits root, e.g. C:\Program Files (x86)\Windows Kits\10.
	Root string
	// Version is the full version directory name, e.g. 10.0.19041.0.
	Version string
}

// Find locates the newest Windows SDK whose libraries cover the given
// Go architecture. The WindowsSdkDir environment variable overrides the
// registry-registered kits root. It reports false when no usable SDK is
// installed.
func Find(goarch string) (SDK, bool) {
	root := os.Getenv("WindowsSdkDir")
	if root == "" {
		root = registryRoot()
	}
	if root == "" {
		return SDK{}, false
	}
	return scanRoot(root, libArch(goarch))
}

// libArch maps a Go architecture to the SDK's library directory name.
func libArch(goarch string) string {
	switch goarch {
	case "386":
		return "x86"
	case "arm64":
		return "arm64"
	default:
		return "x64"
	}
}

// scanRoot walks <root>\Include for 10.* version directories that carry
// both the umbrella headers and a matching import library, returning
// the highest complete version.
func scanRoot(root, arch string) (SDK, bool) {
	entries, err := os.ReadDir(filepath.Join(root, "Include"))
	if err != nil {
		return SDK{}, false
	}
	best := SDK{}
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "10.") {
			continue
		}
		version := e.Name()
		if !usable(root, version, arch) {
			continue
		}
		if best.Version == "" || versionLess(best.Version, version) {
			best = SDK{Root: root, Version: version}
		}
	}
	return best, best.Version != ""
}

// usable checks that a version directory holds windows.h and the
// kernel32 import library for the wanted architecture. Partially
// removed SDKs leave version directories behind without either.
func usable(root, version, arch string) bool {
	header := filepath.Join(root, "Include", version, "um", "windows.h")
	if _, err := os.Stat(header); err != nil {
		return false
	}
	lib := filepath.Join(root, "Lib", version, "um", arch, "kernel32.lib")
	_, err := os.Stat(lib)
	return err == nil
}

// versionLess orders dotted version strings numerically per segment,
// with lexicographic order as tiebreak for malformed segments.
func versionLess(a, b string) bool {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aerr := strconv.Atoi(as[i])
		bn, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
			continue
		}
		if an != bn {
			return an < bn
		}
	}
	return len(as) < len(bs)
}
