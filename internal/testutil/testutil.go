package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteArgvStub writes an executable shell stub that records its
// arguments, one per line, to argvFile and exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteArgvStub(t *testing.T, dir string, name string, argvFile string) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\n: > %q\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> %q\ndone\nexit 0\n",
		argvFile, argvFile))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteExportStub writes an executable shell stub that behaves like the
// maintenance tool's export operation: it records its arguments to
// argvFile and writes doc to the path following a --config argument.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteExportStub(t *testing.T, dir string, name string, argvFile string, doc string) {
	t.Helper()
	if strings.Contains(doc, "EOF") {
		t.Fatalf("export doc must not contain the heredoc terminator")
	}
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf(
		"#!/bin/sh\n: > %q\nprev=\"\"\ncfg=\"\"\nfor arg in \"$@\"; do\n"+
			"  printf '%%s\\n' \"$arg\" >> %q\n"+
			"  if [ \"$prev\" = \"--config\" ]; then cfg=\"$arg\"; fi\n"+
			"  prev=\"$arg\"\ndone\n"+
			"if [ -n \"$cfg\" ]; then cat > \"$cfg\" <<'EOF'\n%s\nEOF\nfi\nexit 0\n",
		argvFile, argvFile, doc))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// ReadArgv reads back a file written by WriteArgvStub or
// WriteExportStub as an argument list.
// t is the active test; argvFile is the recorded argument file.
func ReadArgv(t *testing.T, argvFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argvFile)
	if err != nil {
		t.Fatalf("read argv: %v", err)
	}
	out := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}
