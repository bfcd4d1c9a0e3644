// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/config"
	"github.com/katalvlaran/quasicut/model"
)

func writeModel(t *testing.T, m *model.Model) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	fh, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, model.Encode(fh, m))
	require.NoError(t, fh.Close())

	return path
}

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestQcgen_PeriodicChain(t *testing.T) {
	path := writeModel(t, model.PeriodicChain(1))

	out, logs, err := execute(path, "2.5")
	require.NoError(t, err)
	assert.Equal(t, "5\nA 0\nA -1\nA 1\nA -2\nA 2\n", out)
	assert.Contains(t, logs, "structure generated")
	assert.Contains(t, logs, "atoms=5")
}

func TestQcgen_FibonacciWithFlags(t *testing.T) {
	path := writeModel(t, model.Fibonacci())
	svg := filepath.Join(t.TempDir(), "chain.svg")

	out, logs, err := execute(path, "10", "1", "--check-overlaps", "--workers", "2",
		"--log-level", "debug", "--log-json", "--svg", svg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	n, err := strconv.Atoi(lines[0])
	require.NoError(t, err)
	assert.Equal(t, len(lines)-1, n)
	for _, l := range lines[1:] {
		f := strings.Fields(l)
		require.Len(t, f, 2)
		assert.Equal(t, "A", f[0])
	}
	assert.Contains(t, logs, `"msg":"site generated"`)
	assert.NotContains(t, logs, "overlapping")

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestQcgen_ConfigFile(t *testing.T) {
	path := writeModel(t, model.Fibonacci())
	cfg := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log:\n  level: error\nperpScale: 2\n"), 0o644))

	out, logs, err := execute(path, "6", "--config", cfg)
	require.NoError(t, err)
	assert.Empty(t, logs)

	// The positional PERP_SCALE overrides the file; the atoms do not change.
	out2, _, err := execute(path, "6", "1", "--config", cfg)
	require.NoError(t, err)
	assert.ElementsMatch(t, strings.Split(out, "\n"), strings.Split(out2, "\n"))
}

func TestQcgen_Errors(t *testing.T) {
	path := writeModel(t, model.PeriodicChain(1))

	_, _, err := execute(path)
	assert.Error(t, err)

	_, _, err = execute(path, "abc")
	assert.Error(t, err)

	_, _, err = execute(path, "0")
	assert.ErrorIs(t, err, model.ErrInvalidCutoff)

	_, _, err = execute("--", path, "-1")
	assert.ErrorIs(t, err, model.ErrInvalidCutoff)

	_, _, err = execute(path, "2", "0")
	assert.ErrorIs(t, err, model.ErrInvalidCutoff)

	_, _, err = execute(filepath.Join(t.TempDir(), "none.json"), "2")
	assert.Error(t, err)

	_, _, err = execute(path, "2", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(path, "2", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
