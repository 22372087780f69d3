// Package vs discovers installed Visual Studio instances, classifies
// their optional components, and picks the instance best suited to
// hosting a native build toolchain.
package vs

import (
	"strconv"
	"strings"
)

// Product identifiers reported by the setup configuration API.
const (
	productBuildTools   = "Microsoft.VisualStudio.Product.BuildTools"
	productEnterprise   = "Microsoft.VisualStudio.Product.Enterprise"
	productProfessional = "Microsoft.VisualStudio.Product.Professional"
	productCommunity    = "Microsoft.VisualStudio.Product.Community"
)

// Product is an installation edition. The numeric order is the
// preference order used by selection: lower sorts first.
type Product int

const (
	ProductBuildTools Product = iota + 1
	ProductEnterprise
	ProductProfessional
	ProductCommunity
)

// ParseProduct maps a product identifier to its edition. Unknown
// identifiers report false.
func ParseProduct(id string) (Product, bool) {
	switch id {
	case productBuildTools:
		return ProductBuildTools, true
	case productEnterprise:
		return ProductEnterprise, true
	case productProfessional:
		return ProductProfessional, true
	case productCommunity:
		return ProductCommunity, true
	}
	return 0, false
}

// ID returns the product identifier string.
func (p Product) ID() string {
	switch p {
	case ProductBuildTools:
		return productBuildTools
	case ProductEnterprise:
		return productEnterprise
	case ProductProfessional:
		return productProfessional
	case ProductCommunity:
		return productCommunity
	}
	return ""
}

func (p Product) String() string {
	if id := p.ID(); id != "" {
		return strings.TrimPrefix(id, "Microsoft.VisualStudio.Product.")
	}
	return "Product(" + strconv.Itoa(int(p)) + ")"
}

// Component identifiers for the MSVC toolset, one per supported
// architecture.
const (
	msvcX86X64 = "Microsoft.VisualStudio.Component.VC.Tools.x86.x64"
	msvcArm64  = "Microsoft.VisualStudio.Component.VC.Tools.ARM64"
)

// Toolset is an MSVC compiler toolset variant.
type Toolset int

const (
	ToolsetX86X64 Toolset = iota
	ToolsetArm64
)

// ParseToolset matches a component identifier against the two known
// toolset components.
func ParseToolset(id string) (Toolset, bool) {
	switch id {
	case msvcX86X64:
		return ToolsetX86X64, true
	case msvcArm64:
		return ToolsetArm64, true
	}
	return 0, false
}

// ToolsetFor returns the toolset matching a Go architecture name.
func ToolsetFor(goarch string) Toolset {
	if goarch == "arm64" {
		return ToolsetArm64
	}
	return ToolsetX86X64
}

// ID returns the toolset's component identifier.
func (t Toolset) ID() string {
	if t == ToolsetArm64 {
		return msvcArm64
	}
	return msvcX86X64
}

func (t Toolset) String() string {
	if t == ToolsetArm64 {
		return "ARM64"
	}
	return "x86/x64"
}

// SDK is a versioned Windows SDK component.
type SDK struct {
	Version int
	ID      string
}

// ParseSDK matches component identifiers of the form
// Microsoft.VisualStudio.Component.Windows10SDK.<n> (or Windows11SDK).
// Anything else, including extra or missing segments and non-numeric
// versions, reports false.
func ParseSDK(id string) (SDK, bool) {
	parts := strings.Split(id, ".")
	if len(parts) != 5 ||
		parts[0] != "Microsoft" || parts[1] != "VisualStudio" || parts[2] != "Component" {
		return SDK{}, false
	}
	if parts[3] != "Windows10SDK" && parts[3] != "Windows11SDK" {
		return SDK{}, false
	}
	version, err := strconv.Atoi(parts[4])
	if err != nil || version < 0 {
		return SDK{}, false
	}
	return SDK{Version: version, ID: id}, true
}
