package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"vsprereq/internal/com"
	"vsprereq/internal/messages"
	"vsprereq/internal/vs"
)

// Version is overridden at build time.
var Version = "dev"

func main() {
	runMain(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the CLI and maps failures to exit codes: a foreign
// status code becomes the exit status verbatim, empty discovery exits
// with the conventional 1, anything else is a plain fatal error.
func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer, exit func(int)) {
	cmd := newRootCmd(stdin)
	cmd.Version = Version
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fail(stderr, err, exit)
	}
}

// fail reports err and exits with the code the error calls for.
func fail(stderr io.Writer, err error, exit func(int)) {
	if hr, ok := com.Code(err); ok {
		_, _ = fmt.Fprintf(stderr, messages.ErrorCodeFmt+"\n", uint32(hr))
		exit(int(uint32(hr)))
		return
	}
	if errors.Is(err, vs.ErrNoInstances) {
		// Already reported with a download hint; the numeric status
		// mirrors the foreign "nothing there" code.
		_, _ = fmt.Fprintf(stderr, messages.ErrorCodeFmt+"\n", uint32(com.S_FALSE))
		exit(int(com.S_FALSE))
		return
	}
	_, _ = fmt.Fprintf(stderr, messages.ErrorFmt+"\n", err)
	exit(1)
}
