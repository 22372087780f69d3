package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"vsprereq/internal/com"
	"vsprereq/internal/vs"
)

func hrBits(hr com.HRESULT) uint32 { return uint32(hr) }

func TestFailForeignStatusBecomesExitCode(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := -1
	fail(stderr, com.E_UNEXPECTED.Err(), func(c int) { code = c })

	require.Equal(t, int(hrBits(com.E_UNEXPECTED)), code)
	require.Contains(t, stderr.String(), "0x8000ffff")
}

func TestFailWrappedForeignStatus(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := -1
	err := fmt.Errorf("starting subsystem: %w", com.E_NOINTERFACE.Err())
	fail(stderr, err, func(c int) { code = c })

	require.Equal(t, int(hrBits(com.E_NOINTERFACE)), code)
}

func TestFailNoInstancesExitsOne(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := -1
	fail(stderr, vs.ErrNoInstances, func(c int) { code = c })

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "0x1")
}

func TestFailPlainError(t *testing.T) {
	stderr := &bytes.Buffer{}
	code := -1
	fail(stderr, errors.New("installer busy"), func(c int) { code = c })

	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "installer busy")
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""))
	cmd.SetArgs([]string{"unexpected"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Error(t, cmd.Execute())
}
