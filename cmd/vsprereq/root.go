package main

import (
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vsprereq/internal/com"
	"vsprereq/internal/config"
	"vsprereq/internal/installer"
	"vsprereq/internal/vs"
	"vsprereq/internal/winsdk"
	"vsprereq/internal/workflow"
)

var loadConfig = config.Load

// newRootCmd builds the CLI. stdin is injected so tests can script the
// confirmation prompt.
func newRootCmd(stdin io.Reader) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "vsprereq",
		Short: "Install the Visual Studio components needed to build native code",
		Long: "vsprereq scans the machine for Visual Studio installations, checks the\n" +
			"best candidate for an MSVC toolset and a Windows SDK, and drives the\n" +
			"Visual Studio installer to add whichever of the two is missing.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if assumeYes {
				cfg.AssumeYes = true
			}
			return com.WithCOM(func() error {
				return run(cmd, stdin, cfg)
			})
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "install missing components without asking")
	return cmd
}

func run(cmd *cobra.Command, stdin io.Reader, cfg *config.Config) error {
	tool := &installer.Tool{
		PathOverride:    cfg.SetupPath,
		IncludeOptional: cfg.IncludeOptional,
		Stdin:           stdin,
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	}
	w := &workflow.Workflow{
		In:          stdin,
		Out:         cmd.OutOrStdout(),
		Discover:    vs.Discover,
		ProbeSDK:    winsdk.Find,
		Tool:        tool,
		Arch:        runtime.GOARCH,
		Locale:      cfg.Locale,
		AssumeYes:   cfg.AssumeYes,
		Interactive: isTerminal(stdin),
	}
	return w.Run()
}

// isTerminal reports whether in is an interactive terminal; anything
// piped or redirected cannot answer a prompt.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
