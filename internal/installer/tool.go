package installer

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"vsprereq/internal/vs"
)

// Workload identifiers for the export request. Build Tools ships the
// native toolchain under a different workload than the IDE editions.
const (
	workloadVCTools       = "Microsoft.VisualStudio.Workload.VCTools"
	workloadNativeDesktop = "Microsoft.VisualStudio.Workload.NativeDesktop"
)

var execCommand = exec.Command

// Tool invokes an instance's maintenance tool.
type Tool struct {
	// PathOverride replaces the per-instance setup.exe location when
	// non-empty.
	PathOverride string

	// IncludeOptional adds optional components to the export request.
	IncludeOptional bool

	// Stdin, Stdout and Stderr are inherited by the modify child so the
	// installer UI can interact with the user. Nil values fall back to
	// the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (t *Tool) path(inst *vs.Instance) string {
	if t.PathOverride != "" {
		return t.PathOverride
	}
	return inst.SetupPath
}

// ExportComponents asks the maintenance tool what installing the
// instance's native workload would pull in, returning the component
// identifiers of the resulting export document. It satisfies
// vs.Exporter.
func (t *Tool) ExportComponents(inst *vs.Instance) ([]string, error) {
	config, err := os.CreateTemp("", "vsconfig-*.json")
	if err != nil {
		return nil, fmt.Errorf("creating export config file: %w", err)
	}
	configPath := config.Name()
	// The tool opens the path itself; all we need is the name.
	config.Close()
	defer os.Remove(configPath)

	cmd := execCommand(t.path(inst), exportArgs(inst, configPath, t.IncludeOptional)...)
	// The export operation chats on stdout; none of it is for the user.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running export: %w", err)
	}

	doc, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading export config file: %w", err)
	}
	return ParseExport(doc)
}

// exportArgs builds the export command line for an instance.
func exportArgs(inst *vs.Instance, configPath string, includeOptional bool) []string {
	workload := workloadNativeDesktop
	if inst.Product == vs.ProductBuildTools {
		workload = workloadVCTools
	}
	args := []string{
		"export", "--quiet", "--noUpdateInstaller", "--noWeb",
		"--config", configPath,
		"--installPath", inst.InstallPath,
		"--productId", inst.Product.ID(),
		"--add", workload,
		"--includeRecommended",
	}
	if includeOptional {
		args = append(args, "--includeOptional")
	}
	return args
}

// Modify spawns the maintenance tool's interactive modify operation for
// the instance's recorded components and waits for it to exit. The
// child's exit status is deliberately not inspected; the installer UI
// reports its own outcome to the user. Failing to spawn at all is the
// only error.
func (t *Tool) Modify(inst *vs.Instance) error {
	cmd := execCommand(t.path(inst), modifyArgs(inst)...)
	cmd.Stdin = t.Stdin
	cmd.Stdout = t.Stdout
	cmd.Stderr = t.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting installer: %w", err)
	}
	_ = cmd.Wait()
	return nil
}

// modifyArgs builds the modify command line for an instance.
func modifyArgs(inst *vs.Instance) []string {
	args := []string{
		"modify",
		"--installPath", inst.InstallPath,
		// An interactive GUI focused on just the selected components.
		"--focusedUi",
		"--addProductLang", "En-us",
	}
	for _, id := range inst.ComponentIDs() {
		args = append(args, "--add", id)
	}
	return args
}
