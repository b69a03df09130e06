package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewCommandPassesInput(t *testing.T) {
	var gotInput string
	cmd := NewCommand("echo", "echo the input", func(out io.Writer, logger *zap.Logger, input string) error {
		require.NotNil(t, logger)
		gotInput = input
		_, err := io.WriteString(out, strings.ToUpper(input))
		return err
	})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{writeInput(t, "1 2 3\n")})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "1 2 3\n", gotInput)
	assert.Equal(t, "1 2 3\n", out.String())
	assert.Equal(t, "echo <input>", cmd.Use)
}

func TestNewCommandArgs(t *testing.T) {
	called := false
	run := func(io.Writer, *zap.Logger, string) error {
		called = true
		return nil
	}

	for _, args := range [][]string{{}, {"a", "b"}} {
		cmd := NewCommand("x", "", run)
		cmd.SetArgs(args)
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
	assert.False(t, called)
}

func TestNewCommandMissingFile(t *testing.T) {
	cmd := NewCommand("x", "", func(io.Writer, *zap.Logger, string) error {
		t.Fatal("run must not be called")
		return nil
	})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.txt")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewCommandBadLogConfig(t *testing.T) {
	t.Setenv("GOPHX_LOG_LEVEL", "shouting")
	cmd := NewCommand("x", "", func(io.Writer, *zap.Logger, string) error {
		t.Fatal("run must not be called")
		return nil
	})
	cmd.SetArgs([]string{writeInput(t, "")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOPHX_LOG_LEVEL")
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput(writeInput(t, "abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}
