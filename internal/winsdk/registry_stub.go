//go:build !windows

package winsdk

// Off windows there is no registry; only the WindowsSdkDir override can
// name a kits root.
func registryRoot() string {
	return ""
}
