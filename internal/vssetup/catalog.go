package vssetup

import "vsprereq/internal/com"

// ISetupInstanceCatalog vtable layout.
const (
	slotGetCatalogInfo = com.FirstMethodSlot + iota
	slotIsPrerelease
)

// SetupInstanceCatalog describes the catalog an instance was installed
// from.
type SetupInstanceCatalog struct {
	h *com.Unknown
}

// CatalogInfo returns the catalog's property store, or nil when the
// instance reports none.
func (c *SetupInstanceCatalog) CatalogInfo() (*SetupPropertyStore, error) {
	h, err := c.h.CallObjectOptional(slotGetCatalogInfo)
	if err != nil || h == nil {
		return nil, err
	}
	return &SetupPropertyStore{h: h}, nil
}

// IsPrerelease reports whether the instance came from a prerelease
// channel.
func (c *SetupInstanceCatalog) IsPrerelease() (bool, error) {
	return c.h.CallBool(slotIsPrerelease)
}

// Close releases the catalog handle.
func (c *SetupInstanceCatalog) Close() {
	c.h.Close()
}
