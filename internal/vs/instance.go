package vs

// Instance is one discovered Visual Studio installation together with
// the classification of its build-relevant optional components.
type Instance struct {
	DisplayName string
	Major       int
	Product     Product
	InstallPath string

	// SetupPath is the maintenance tool (setup.exe) for this instance.
	SetupPath string

	// Toolset and SDK are nil when the instance does not carry the
	// matching component. Resolution rebuilds them after clearing.
	Toolset *Toolset
	SDK     *SDK
}

// ClearComponents forgets the classified components so resolution can
// rebuild exactly the set that needs installing.
func (i *Instance) ClearComponents() {
	i.Toolset = nil
	i.SDK = nil
}

// ComponentIDs returns the identifiers of the recorded components,
// toolset first.
func (i *Instance) ComponentIDs() []string {
	var ids []string
	if i.Toolset != nil {
		ids = append(ids, i.Toolset.ID())
	}
	if i.SDK != nil {
		ids = append(ids, i.SDK.ID)
	}
	return ids
}

// classify walks an instance's component identifiers and keeps the
// highest-versioned SDK (last seen wins on ties) and the toolset whose
// architecture matches native. Identifiers matching neither rule are
// ignored; the component catalog is full of components this tool does
// not care about.
func classify(ids []string, native Toolset) (toolset *Toolset, sdk *SDK) {
	for _, id := range ids {
		if s, ok := ParseSDK(id); ok {
			if sdk == nil || s.Version >= sdk.Version {
				sdk = &s
			}
			continue
		}
		if t, ok := ParseToolset(id); ok && t == native {
			toolset = &t
		}
	}
	return toolset, sdk
}
