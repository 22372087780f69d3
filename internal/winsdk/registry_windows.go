//go:build windows

package winsdk

import "golang.org/x/sys/windows/registry"

// installedRootsKey is where SDK installers register the kits root. The
// key lives in the 32-bit registry view on 64-bit systems.
const installedRootsKey = `SOFTWARE\Microsoft\Windows Kits\Installed Roots`

func registryRoot() string {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, installedRootsKey,
		registry.QUERY_VALUE|registry.WOW64_32KEY)
	if err != nil {
		return ""
	}
	defer key.Close()
	root, _, err := key.GetStringValue("KitsRoot10")
	if err != nil {
		return ""
	}
	return root
}
