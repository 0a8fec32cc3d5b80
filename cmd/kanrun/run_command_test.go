package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempScript(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.kan")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunCommandRequiresQueryFlag(t *testing.T) {
	path := writeTempScript(t, `(query q1 (== q 1))`)
	cmd := &runCommand{}
	code := cmd.Run([]string{path})
	assert.Equal(t, 1, code)
}

func TestRunCommandRequiresExactlyOneFile(t *testing.T) {
	cmd := &runCommand{}
	code := cmd.Run([]string{"-query=q1"})
	assert.Equal(t, 1, code)
}

func TestRunCommandSucceedsOnValidQuery(t *testing.T) {
	path := writeTempScript(t, `(query q1 (== q 1))`)
	cmd := &runCommand{}
	code := cmd.Run([]string{"-query=q1", path})
	assert.Equal(t, 0, code)
}

func TestRunCommandReportsLoadError(t *testing.T) {
	path := writeTempScript(t, `(query q1 (nosuchrelation q))`)
	cmd := &runCommand{}
	code := cmd.Run([]string{"-query=q1", path})
	assert.Equal(t, 1, code)
}

func TestRunCommandReportsUnknownQuery(t *testing.T) {
	path := writeTempScript(t, `(query q1 (== q 1))`)
	cmd := &runCommand{}
	code := cmd.Run([]string{"-query=nope", path})
	assert.Equal(t, 1, code)
}

func TestRunCommandHelpAndSynopsisAreNonEmpty(t *testing.T) {
	cmd := &runCommand{}
	assert.NotEmpty(t, cmd.Help())
	assert.NotEmpty(t, cmd.Synopsis())
}
