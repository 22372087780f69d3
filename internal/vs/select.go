package vs

import (
	"errors"
	"slices"
)

// ErrNoInstances reports that discovery found nothing to repair.
var ErrNoInstances = errors.New("vs: no Visual Studio instances found")

// Select ranks the candidates and returns the single best one. The
// ranking prefers, in order: instances that already carry a matching
// toolset, higher major versions, then leaner editions (BuildTools
// before Enterprise before Professional before Community).
func Select(instances []*Instance) (*Instance, error) {
	if len(instances) == 0 {
		return nil, ErrNoInstances
	}
	ranked := slices.Clone(instances)
	slices.SortStableFunc(ranked, compareInstances)
	return ranked[0], nil
}

func compareInstances(a, b *Instance) int {
	if (a.Toolset == nil) != (b.Toolset == nil) {
		if a.Toolset != nil {
			return -1
		}
		return 1
	}
	if a.Major != b.Major {
		return b.Major - a.Major
	}
	return int(a.Product) - int(b.Product)
}
