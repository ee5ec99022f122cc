package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.js")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "let answer = 42")

	stdout, _, err := run(newParseCmd(), path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "ast.Program")
	assert.Contains(t, stdout, "answer")

	stdout, stderr, err := run(newParseCmd(), "--silent", "--repeat", "3", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Parse time (3 runs)")
	assert.Contains(t, stderr, "Median:")
}

func TestParseCommandReportsSyntaxErrors(t *testing.T) {
	path := writeSource(t, "import x from 'y'")

	_, _, err := run(newParseCmd(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "(1:0)")

	_, _, err = run(newParseCmd(), "--module", "--silent", path)
	assert.NoError(t, err)
}

func TestParseCommandMissingFile(t *testing.T) {
	_, _, err := run(newParseCmd(), filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "a = `x${b}y`")

	stdout, _, err := run(newTokensCmd(), path)
	require.NoError(t, err)
	assert.Equal(t, "0-1\tname\ta\n"+
		"2-3\t=\t=\n"+
		"4-8\ttemplate\t`x${\n"+
		"8-9\tname\tb\n"+
		"9-12\ttemplate\t}y`\n"+
		"12-12\teof\t\n", stdout)
}
