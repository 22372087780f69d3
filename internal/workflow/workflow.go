// Package workflow runs the scan, resolve, confirm, install sequence
// that repairs a Visual Studio instance's build prerequisites.
package workflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"vsprereq/internal/messages"
	"vsprereq/internal/vs"
	"vsprereq/internal/winsdk"
)

// State names one phase of the remediation sequence.
type State int

const (
	StateScanning State = iota
	StateSatisfied
	StateNeedsRepair
	StateResolved
	StateAwaitingConfirmation
	StateInstalling
	StateDeclined
	StateDone
)

// Tool is the maintenance-tool surface the workflow drives.
type Tool interface {
	vs.Exporter
	Modify(*vs.Instance) error
}

var (
	found   = color.New(color.FgGreen)
	missing = color.New(color.FgYellow)
)

// Workflow holds the collaborators of one remediation run. Everything
// that touches the host is injected so tests can run the whole machine
// against fakes.
type Workflow struct {
	In  io.Reader
	Out io.Writer

	Discover func(lcid uint32) []*vs.Instance
	ProbeSDK func(goarch string) (winsdk.SDK, bool)
	Tool     Tool

	// Arch is the running architecture (a GOARCH value); it picks the
	// toolset variant and the SDK library flavor to look for.
	Arch string

	// Locale is the LCID for instance display names.
	Locale uint32

	// AssumeYes answers the confirmation prompt without asking.
	AssumeYes bool

	// Interactive reports whether In can actually be prompted. A
	// non-interactive run declines rather than blocking on a read that
	// can never be answered.
	Interactive bool

	inst             *vs.Instance
	toolsetInstalled bool
	sdkInstalled     bool
}

// Run drives the machine from Scanning to Done. A declined install is
// a normal completion, not an error.
func (w *Workflow) Run() error {
	state := StateScanning
	for state != StateDone {
		next, err := w.step(state)
		if err != nil {
			return err
		}
		state = next
	}
	return nil
}

func (w *Workflow) step(state State) (State, error) {
	switch state {
	case StateScanning:
		return w.scan()
	case StateSatisfied:
		fmt.Fprintln(w.Out, messages.AllInstalled)
		return StateDone, nil
	case StateNeedsRepair:
		return w.resolve()
	case StateResolved:
		fmt.Fprintf(w.Out, messages.ComponentsForFmt+"\n", w.inst.DisplayName)
		for _, id := range w.inst.ComponentIDs() {
			fmt.Fprintf(w.Out, messages.ComponentLineFmt+"\n", id)
		}
		return StateAwaitingConfirmation, nil
	case StateAwaitingConfirmation:
		if w.confirm() {
			return StateInstalling, nil
		}
		return StateDeclined, nil
	case StateInstalling:
		if err := w.Tool.Modify(w.inst); err != nil {
			return StateDone, err
		}
		return StateDone, nil
	case StateDeclined:
		fmt.Fprintln(w.Out, messages.InstallDeclined)
		return StateDone, nil
	default:
		return StateDone, fmt.Errorf("workflow: invalid state %d", state)
	}
}

// scan discovers instances, selects the best candidate, and checks
// which prerequisites it already satisfies.
func (w *Workflow) scan() (State, error) {
	fmt.Fprintln(w.Out, messages.Scanning)

	instances := w.Discover(w.Locale)
	inst, err := vs.Select(instances)
	if err != nil {
		fmt.Fprintln(w.Out, messages.NotInstalled)
		fmt.Fprintln(w.Out, messages.DownloadHint)
		return StateDone, err
	}
	w.inst = inst

	w.toolsetInstalled = inst.Toolset != nil
	if w.toolsetInstalled {
		found.Fprintf(w.Out, messages.FoundComponentFmt+"\n", inst.Toolset.ID())
	}
	if sdk, ok := w.ProbeSDK(w.Arch); ok {
		w.sdkInstalled = true
		found.Fprintf(w.Out, messages.FoundSDKFmt+"\n", sdk.Version)
	}

	if w.toolsetInstalled && w.sdkInstalled {
		return StateSatisfied, nil
	}
	return StateNeedsRepair, nil
}

// resolve reports what is missing and rebuilds the instance's component
// list to exactly the set that needs installing.
func (w *Workflow) resolve() (State, error) {
	if !w.sdkInstalled {
		missing.Fprintln(w.Out, messages.MissingSDK)
	}
	if !w.toolsetInstalled {
		missing.Fprintln(w.Out, messages.MissingToolset)
	}
	fmt.Fprintln(w.Out, messages.FindingComponents)

	native := vs.ToolsetFor(w.Arch)
	if err := vs.ResolveMissing(w.inst, w.Tool, native, w.sdkInstalled, w.toolsetInstalled); err != nil {
		return StateDone, err
	}
	return StateResolved, nil
}

// confirm asks for and reads one line of consent. Anything but a clear
// yes, including a failed read, declines.
func (w *Workflow) confirm() bool {
	if w.AssumeYes {
		return true
	}
	fmt.Fprintln(w.Out, messages.ConfirmInstall)
	if !w.Interactive {
		return false
	}
	line, err := bufio.NewReader(w.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.TrimSpace(line)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}
