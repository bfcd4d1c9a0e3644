// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quasicut/config"
	"github.com/katalvlaran/quasicut/logging"
	"github.com/katalvlaran/quasicut/model"
	"github.com/katalvlaran/quasicut/structure"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
safetyScale: 1.2
workers: 4
checkOverlaps: true
log:
  level: debug
  json: true
`)
	got, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.SafetyScale = 1.2
	want.Workers = 4
	want.CheckOverlaps = true
	want.Log = config.Log{Level: "debug", JSON: true}
	assert.Equal(t, want, got)

	lc := got.Logging(nil)
	assert.Equal(t, logging.LevelDebug, lc.Level)
	assert.True(t, lc.JSON)
}

func TestParse_EmptyIsDefault(t *testing.T) {
	got, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "epsilonn: 1",
		"bad yaml":       "workers: [",
		"negative eps":   "epsilon: -1",
		"safety below 1": "safetyScale: 0.5",
		"zero perpScale": "perpScale: 0",
		"negative tol":   "tolerance: -1e-9",
		"bad workers":    "workers: -2",
		"bad level":      "log: {level: loud}",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestOptions_DriveGenerate(t *testing.T) {
	tun, err := config.Parse([]byte("checkOverlaps: true\nworkers: 0\n"))
	require.NoError(t, err)

	opts := tun.Options()
	o := structure.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	assert.True(t, o.OverlapCheck)
	assert.GreaterOrEqual(t, o.Workers, 1)
	assert.Equal(t, tun.SafetyScale, o.SafetyScale)

	atoms, stats, err := structure.Generate(model.Fibonacci(), 10, opts...)
	require.NoError(t, err)
	assert.NotEmpty(t, atoms)
	assert.Zero(t, stats.Overlaps)
}
