package vs

import (
	"errors"
	"fmt"
)

// ErrSDKNotFound reports that the maintenance tool's export offered no
// recognizable Windows SDK component.
var ErrSDKNotFound = errors.New("vs: no Windows SDK component in export")

// Exporter asks the maintenance tool what a scoped install request
// would put on disk, returning the component identifiers of the export
// document.
type Exporter interface {
	ExportComponents(inst *Instance) ([]string, error)
}

// ResolveMissing rewrites the instance's components to exactly the set
// that needs installing. The SDK, when missing, is the highest-versioned
// one the maintenance tool offers by default for this instance; the
// toolset, when missing, is always the one for the running architecture
// and needs no query.
func ResolveMissing(inst *Instance, exp Exporter, native Toolset, sdkInstalled, toolsetInstalled bool) error {
	inst.ClearComponents()
	if !sdkInstalled {
		ids, err := exp.ExportComponents(inst)
		if err != nil {
			return fmt.Errorf("exporting default components: %w", err)
		}
		sdk := highestSDK(ids)
		if sdk == nil {
			return ErrSDKNotFound
		}
		inst.SDK = sdk
	}
	if !toolsetInstalled {
		inst.Toolset = &native
	}
	return nil
}

func highestSDK(ids []string) *SDK {
	var best *SDK
	for _, id := range ids {
		if s, ok := ParseSDK(id); ok && (best == nil || s.Version >= best.Version) {
			best = &s
		}
	}
	return best
}
