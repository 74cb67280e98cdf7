package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"hanoi"}, args...), nil, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSolver(t *testing.T) {
	t.Run("quiet solver prints only the summary", func(t *testing.T) {
		code, stdout, _ := runArgs("-q", "-i", "solver", "-d", "3")

		require.Equal(t, 0, code)
		require.Contains(t, stdout, "Congratulations! You completed the puzzle in 7 moves (100%).")
		require.Contains(t, stdout, "Time: ")
		require.NotContains(t, stdout, "Picked up")
	})

	t.Run("long flags", func(t *testing.T) {
		code, stdout, _ := runArgs("--quiet", "--input", "solver", "--disks", "5")

		require.Equal(t, 0, code)
		require.Contains(t, stdout, "in 31 moves (100%)")
	})

	t.Run("disk count from the environment", func(t *testing.T) {
		t.Setenv("HANOI_DISKS", "4")

		code, stdout, _ := runArgs("-q", "-i", "solver")

		require.Equal(t, 0, code)
		require.Contains(t, stdout, "in 15 moves (100%)")
	})
}

func TestRunRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-d", "1"},
		{"-d", "70000"},
		{"-i", "joystick"},
	} {
		code, stdout, stderr := runArgs(args...)

		require.Equal(t, 1, code, "args %v", args)
		require.Contains(t, stderr, "usage: hanoi", "args %v", args)
		require.Empty(t, stdout, "no game should start for args %v", args)
	}
}

func TestRunRejectsMalformedFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-d", "three"},
		{"-x"},
		{"-d"},
	} {
		code, stdout, stderr := runArgs(args...)

		require.Equal(t, 1, code, "args %v", args)
		require.Empty(t, stdout, "help must not go to stdout for args %v", args)
		require.Contains(t, stderr, "usage: hanoi", "args %v", args)
		require.NotContains(t, stderr, "Incorrect Usage", "args %v", args)
		require.Equal(t, 1, strings.Count(stderr, "hanoi: "), "the error is reported once for args %v", args)
	}
}

func TestRunKeyboardNeedsTerminal(t *testing.T) {
	code, _, stderr := runArgs("-i", "keyboard")

	require.Equal(t, 1, code)
	require.Contains(t, stderr, "failed to acquire keyboard")
}
