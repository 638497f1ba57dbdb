package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes one mapnav invocation against db and returns its stdout.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	root, e := RootCmd()
	var out, logs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(append(args, "--db", db, "--log-level", "error"))
	err := root.Execute()
	e.close()
	return out.String(), err
}

func mustRun(t *testing.T, db string, args ...string) string {
	t.Helper()
	out, err := run(t, db, args...)
	require.NoError(t, err, "mapnav %s", strings.Join(args, " "))
	return out
}

func TestCLI_Session(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")

	_, err := run(t, db, "info")
	require.ErrorContains(t, err, "run create first")

	out := mustRun(t, db, "create", "--width", "5", "--height", "5")
	assert.Contains(t, out, "square 5x5, 25 nodes")

	out = mustRun(t, db, "path", "0,0", "4,0")
	assert.Equal(t, "1,0 2,0 3,0 4,0\n", out)

	mustRun(t, db, "link", "1,0", "2,0", "--tag", "1")
	out = mustRun(t, db, "path", "0,0", "4,0", "--links")
	assert.NotContains(t, out, "1,0 2,0")
	assert.True(t, strings.HasSuffix(out, "4,0\n"), out)

	out = mustRun(t, db, "range", "2,2", "-r", "1")
	assert.Equal(t, "4 nodes\n2,1 1,2 3,2 2,3\n", out)
	out = mustRun(t, db, "range", "2,2", "--mode", "within", "-r", "1")
	assert.True(t, strings.HasPrefix(out, "8 nodes\n"), out)
	out = mustRun(t, db, "range", "2,2", "--mode", "ring", "-r", "2")
	assert.True(t, strings.HasPrefix(out, "16 nodes\n"), out)

	mustRun(t, db, "raise", "--by", "2")
	mustRun(t, db, "set", "2,2", "--invalid")
	out = mustRun(t, db, "info")
	assert.Contains(t, out, "24 valid, 1 blocked")
	assert.Contains(t, out, "2..2")

	out = mustRun(t, db, "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5, "header plus create, link, raise and set snapshots")
}

func TestCLI_Errors(t *testing.T) {
	db := filepath.Join(t.TempDir(), "cli.db")
	mustRun(t, db, "create", "--width", "3", "--height", "3")

	_, err := run(t, db, "path", "0,0", "9,9")
	assert.ErrorContains(t, err, "no node at 9,9")
	_, err = run(t, db, "path", "zero", "1,1")
	assert.ErrorContains(t, err, "bad coordinate")
	_, err = run(t, db, "range", "1,1", "--mode", "spiral")
	assert.ErrorContains(t, err, "unknown range mode")
	_, err = run(t, db, "set", "1,1")
	assert.ErrorContains(t, err, "nothing to set")
	_, err = run(t, db, "link", "1,1", "1,1")
	assert.Error(t, err)
	_, err = run(t, db, "create", "--kind", "triangle")
	assert.Error(t, err)
}
