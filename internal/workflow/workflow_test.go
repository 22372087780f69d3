package workflow

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vsprereq/internal/installer"
	"vsprereq/internal/messages"
	"vsprereq/internal/testutil"
	"vsprereq/internal/vs"
	"vsprereq/internal/winsdk"
)

type fakeTool struct {
	exportIDs   []string
	exportErr   error
	exportCalls int
	modifyErr   error
	modified    []*vs.Instance
}

func (f *fakeTool) ExportComponents(*vs.Instance) ([]string, error) {
	f.exportCalls++
	return f.exportIDs, f.exportErr
}

func (f *fakeTool) Modify(inst *vs.Instance) error {
	f.modified = append(f.modified, inst)
	return f.modifyErr
}

func toolsetPtr(t vs.Toolset) *vs.Toolset { return &t }

func community(toolset *vs.Toolset) *vs.Instance {
	return &vs.Instance{
		DisplayName: "Visual Studio Community 2022",
		Major:       17,
		Product:     vs.ProductCommunity,
		InstallPath: `C:\VS`,
		SetupPath:   `C:\setup.exe`,
		Toolset:     toolset,
	}
}

func newWorkflow(in string, tool Tool, instances []*vs.Instance, sdkOnDisk bool) (*Workflow, *bytes.Buffer) {
	out := &bytes.Buffer{}
	w := &Workflow{
		In:  strings.NewReader(in),
		Out: out,
		Discover: func(uint32) []*vs.Instance {
			return instances
		},
		ProbeSDK: func(string) (winsdk.SDK, bool) {
			if !sdkOnDisk {
				return winsdk.SDK{}, false
			}
			return winsdk.SDK{Root: `C:\Kits\10`, Version: "10.0.19041.0"}, true
		},
		Tool:        tool,
		Arch:        "amd64",
		Locale:      0x0400,
		Interactive: true,
	}
	return w, out
}

func TestSatisfiedSpawnsNothing(t *testing.T) {
	tool := &fakeTool{}
	w, out := newWorkflow("", tool, []*vs.Instance{community(toolsetPtr(vs.ToolsetX86X64))}, true)

	require.NoError(t, w.Run())
	require.Zero(t, tool.exportCalls)
	require.Empty(t, tool.modified)
	require.Contains(t, out.String(), messages.AllInstalled)
	require.NotContains(t, out.String(), messages.ConfirmInstall)
}

func TestMissingBothDeclined(t *testing.T) {
	tool := &fakeTool{exportIDs: []string{
		"Microsoft.VisualStudio.Component.Windows10SDK.18362",
		"Microsoft.VisualStudio.Component.Windows10SDK.19041",
		"Microsoft.VisualStudio.Component.Windows10SDK.17763",
	}}
	inst := community(nil)
	w, out := newWorkflow("n\n", tool, []*vs.Instance{inst}, false)

	require.NoError(t, w.Run())
	require.Empty(t, tool.modified)
	require.Equal(t, []string{
		"Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
		"Microsoft.VisualStudio.Component.Windows10SDK.19041",
	}, inst.ComponentIDs())
	require.Contains(t, out.String(), messages.MissingSDK)
	require.Contains(t, out.String(), messages.MissingToolset)
	require.Contains(t, out.String(), messages.InstallDeclined)
}

func TestMissingBothAccepted(t *testing.T) {
	tool := &fakeTool{exportIDs: []string{
		"Microsoft.VisualStudio.Component.Windows11SDK.22000",
	}}
	inst := community(nil)
	w, _ := newWorkflow("  YES \n", tool, []*vs.Instance{inst}, false)

	require.NoError(t, w.Run())
	require.Len(t, tool.modified, 1)
	require.Same(t, inst, tool.modified[0])
	require.Equal(t, []string{
		"Microsoft.VisualStudio.Component.VC.Tools.x86.x64",
		"Microsoft.VisualStudio.Component.Windows11SDK.22000",
	}, inst.ComponentIDs())
}

func TestMissingToolsetOnlySkipsExport(t *testing.T) {
	tool := &fakeTool{}
	w, _ := newWorkflow("y\n", tool, []*vs.Instance{community(nil)}, true)

	require.NoError(t, w.Run())
	require.Zero(t, tool.exportCalls)
	require.Len(t, tool.modified, 1)
}

func TestAssumeYesSkipsPrompt(t *testing.T) {
	tool := &fakeTool{}
	w, out := newWorkflow("", tool, []*vs.Instance{community(nil)}, true)
	w.AssumeYes = true
	w.Interactive = false

	require.NoError(t, w.Run())
	require.Len(t, tool.modified, 1)
	require.NotContains(t, out.String(), messages.ConfirmInstall)
}

func TestNonInteractiveDeclines(t *testing.T) {
	tool := &fakeTool{}
	w, _ := newWorkflow("y\n", tool, []*vs.Instance{community(nil)}, true)
	w.Interactive = false

	require.NoError(t, w.Run())
	require.Empty(t, tool.modified)
}

func TestReadFailureDeclines(t *testing.T) {
	tool := &fakeTool{}
	w, _ := newWorkflow("", tool, []*vs.Instance{community(nil)}, true)
	w.In = errReader{}

	require.NoError(t, w.Run())
	require.Empty(t, tool.modified)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("stdin gone") }

func TestNoInstances(t *testing.T) {
	tool := &fakeTool{}
	w, out := newWorkflow("", tool, nil, true)

	err := w.Run()
	require.ErrorIs(t, err, vs.ErrNoInstances)
	require.Contains(t, out.String(), messages.NotInstalled)
	require.Contains(t, out.String(), messages.DownloadHint)
}

func TestExportFailurePropagates(t *testing.T) {
	boom := errors.New("installer busy")
	tool := &fakeTool{exportErr: boom}
	w, _ := newWorkflow("y\n", tool, []*vs.Instance{community(toolsetPtr(vs.ToolsetX86X64))}, false)

	require.ErrorIs(t, w.Run(), boom)
	require.Empty(t, tool.modified)
}

func TestModifySpawnFailureSurfaces(t *testing.T) {
	boom := errors.New("spawn failed")
	tool := &fakeTool{modifyErr: boom}
	w, _ := newWorkflow("y\n", tool, []*vs.Instance{community(nil)}, true)

	require.ErrorIs(t, w.Run(), boom)
}

// The accepted path against a real maintenance-tool driver and stub
// executables.
func TestAcceptedRunsRealTool(t *testing.T) {
	dir := t.TempDir()
	argvFile := filepath.Join(dir, "argv")
	testutil.WriteExportStub(t, dir, "setup", argvFile,
		`{"components": ["Microsoft.VisualStudio.Component.Windows10SDK.19041"]}`)

	inst := community(nil)
	inst.SetupPath = filepath.Join(dir, "setup")
	tool := &installer.Tool{Stdout: io.Discard, Stderr: io.Discard, Stdin: strings.NewReader("")}

	w, _ := newWorkflow("y\n", tool, []*vs.Instance{inst}, false)
	require.NoError(t, w.Run())

	// The stub was last invoked as modify; its recorded argv carries the
	// resolved components.
	argv := testutil.ReadArgv(t, argvFile)
	require.Equal(t, "modify", argv[0])
	require.Contains(t, argv, "Microsoft.VisualStudio.Component.VC.Tools.x86.x64")
	require.Contains(t, argv, "Microsoft.VisualStudio.Component.Windows10SDK.19041")
}
