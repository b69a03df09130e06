package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	input := "7 6 4 2 1\n1 2 7 8 9\n9 7 6 2 1\n1 3 2 4 5\n8 6 4 4 1\n1 3 6 7 9\n"
	require.NoError(t, run(&out, zap.NewNop(), input))
	assert.Equal(t, "safe count: 2\nloose safe count: 4\n", out.String())
}

func TestRunReportsSkippedLines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, zap.NewNop(), "1 2 3\nfour 5\n10 10 11 11 13\n"))
	assert.Equal(t, "safe count: 1\nloose safe count: 1\nskipped lines: 1\n", out.String())
}

func TestCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 3 2 4 5\n8 6 4 4 1\n"), 0o644))

	var out bytes.Buffer
	cmd := newCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "safe count: 0\nloose safe count: 2\n", out.String())
}

func TestCommandMissingFile(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})
	assert.ErrorIs(t, cmd.Execute(), os.ErrNotExist)
}
