package vs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSDK(t *testing.T) {
	tests := []struct {
		id      string
		version int
		ok      bool
	}{
		{"Microsoft.VisualStudio.Component.Windows10SDK.19041", 19041, true},
		{"Microsoft.VisualStudio.Component.Windows11SDK.22000", 22000, true},
		{"Microsoft.VisualStudio.Component.Windows10SDK", 0, false},           // four segments
		{"Microsoft.VisualStudio.Component.Windows10SDK.19041.1", 0, false},   // six segments
		{"Microsoft.VisualStudio.Component.Windows10SDK.latest", 0, false},    // non-numeric version
		{"Microsoft.VisualStudio.Component.Windows12SDK.19041", 0, false},     // unknown family
		{"Contoso.VisualStudio.Component.Windows10SDK.19041", 0, false},       // wrong prefix
		{"Microsoft.VisualStudio.Component.VC.Tools.x86.x64", 0, false},       // toolset, not SDK
	}
	for _, tt := range tests {
		sdk, ok := ParseSDK(tt.id)
		require.Equal(t, tt.ok, ok, tt.id)
		if ok {
			require.Equal(t, tt.version, sdk.Version, tt.id)
			require.Equal(t, tt.id, sdk.ID)
		}
	}
}

func TestParseToolset(t *testing.T) {
	ts, ok := ParseToolset("Microsoft.VisualStudio.Component.VC.Tools.x86.x64")
	require.True(t, ok)
	require.Equal(t, ToolsetX86X64, ts)

	ts, ok = ParseToolset("Microsoft.VisualStudio.Component.VC.Tools.ARM64")
	require.True(t, ok)
	require.Equal(t, ToolsetArm64, ts)

	_, ok = ParseToolset("Microsoft.VisualStudio.Component.VC.Tools.arm64")
	require.False(t, ok)
}

func TestToolsetFor(t *testing.T) {
	require.Equal(t, ToolsetArm64, ToolsetFor("arm64"))
	require.Equal(t, ToolsetX86X64, ToolsetFor("amd64"))
	require.Equal(t, ToolsetX86X64, ToolsetFor("386"))
}

func TestParseProductRoundTrip(t *testing.T) {
	for _, p := range []Product{ProductBuildTools, ProductEnterprise, ProductProfessional, ProductCommunity} {
		got, ok := ParseProduct(p.ID())
		require.True(t, ok)
		require.Equal(t, p, got)
	}
	_, ok := ParseProduct("Microsoft.VisualStudio.Product.TeamExplorer")
	require.False(t, ok)
}
