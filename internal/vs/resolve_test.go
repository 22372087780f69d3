package vs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExporter struct {
	ids  []string
	err  error
	used bool
}

func (f *fakeExporter) ExportComponents(*Instance) ([]string, error) {
	f.used = true
	return f.ids, f.err
}

func TestResolveMissingBoth(t *testing.T) {
	inst := &Instance{DisplayName: "X", Toolset: toolsetPtr(ToolsetArm64)}
	exp := &fakeExporter{ids: []string{
		"Microsoft.VisualStudio.Component.Windows10SDK.18362",
		"Microsoft.VisualStudio.Component.Windows10SDK.19041",
		"Microsoft.VisualStudio.Component.Git",
	}}

	err := ResolveMissing(inst, exp, ToolsetX86X64, false, false)
	require.NoError(t, err)
	require.Equal(t, []string{
		"Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
		"Microsoft.VisualStudio.Component.Windows10SDK.19041",
	}, inst.ComponentIDs())
}

func TestResolveMissingToolsetOnlySkipsExport(t *testing.T) {
	inst := &Instance{DisplayName: "X"}
	exp := &fakeExporter{}

	err := ResolveMissing(inst, exp, ToolsetArm64, true, false)
	require.NoError(t, err)
	require.False(t, exp.used)
	require.Equal(t, []string{"Microsoft.VisualStudio.Component.VC.Tools.ARM64"}, inst.ComponentIDs())
}

func TestResolveNoSDKInExport(t *testing.T) {
	inst := &Instance{DisplayName: "X"}
	exp := &fakeExporter{ids: []string{"Microsoft.VisualStudio.Component.Git"}}

	err := ResolveMissing(inst, exp, ToolsetX86X64, false, true)
	require.ErrorIs(t, err, ErrSDKNotFound)
}

func TestResolveExportFailurePropagates(t *testing.T) {
	inst := &Instance{DisplayName: "X"}
	boom := errors.New("installer busy")
	exp := &fakeExporter{err: boom}

	err := ResolveMissing(inst, exp, ToolsetX86X64, false, true)
	require.ErrorIs(t, err, boom)
}
