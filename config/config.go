// SPDX-License-Identifier: MIT

// Package config loads the run tunables of the qcgen driver from YAML.
//
// A tunables file overrides the library defaults field by field; keys
// that are absent keep their default values:
//
//	epsilon: 1e-5        # relative inflation of the lattice-walk bound
//	safetyScale: 1.01    # perpendicular cutoff inflation, >= 1
//	perpScale: 1         # perpendicular cutoff multiplier, > 0
//	tolerance: 1e-9      # barycentric facet tolerance
//	workers: 1           # sites processed concurrently, 0 = GOMAXPROCS
//	checkOverlaps: false # count points placed by more than one fragment
//	log:
//	  level: info
//	  json: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quasicut/logging"
	"github.com/katalvlaran/quasicut/quadform"
	"github.com/katalvlaran/quasicut/structure"
)

// ErrInvalidConfig indicates an out-of-range tunable or an unreadable file.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Tunables are the numeric knobs of a generation run.
type Tunables struct {
	Epsilon       float64 `yaml:"epsilon"`
	SafetyScale   float64 `yaml:"safetyScale"`
	PerpScale     float64 `yaml:"perpScale"`
	Tolerance     float64 `yaml:"tolerance"`
	Workers       int     `yaml:"workers"`
	CheckOverlaps bool    `yaml:"checkOverlaps"`
	Log           Log     `yaml:"log"`
}

// Log configures the driver logger.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the library defaults.
func Default() Tunables {
	return Tunables{
		Epsilon:     quadform.DefaultEpsilon,
		SafetyScale: structure.DefaultSafetyScale,
		PerpScale:   1,
		Tolerance:   structure.DefaultTolerance,
		Workers:     1,
		Log:         Log{Level: logging.LevelInfo.String()},
	}
}

// Load reads a YAML tunables file over Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Parse(data)
}

// Parse is Load for in-memory YAML. Empty input yields Default.
func Parse(data []byte) (Tunables, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tunables{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, err
	}

	return t, nil
}

// Validate checks every tunable against the range its option accepts.
func (t Tunables) Validate() error {
	switch {
	case !nonNegative(t.Epsilon):
		return fmt.Errorf("%w: epsilon=%g", ErrInvalidConfig, t.Epsilon)
	case !nonNegative(t.SafetyScale) || t.SafetyScale < 1:
		return fmt.Errorf("%w: safetyScale=%g, want >= 1", ErrInvalidConfig, t.SafetyScale)
	case !nonNegative(t.PerpScale) || t.PerpScale == 0:
		return fmt.Errorf("%w: perpScale=%g, want > 0", ErrInvalidConfig, t.PerpScale)
	case !nonNegative(t.Tolerance):
		return fmt.Errorf("%w: tolerance=%g", ErrInvalidConfig, t.Tolerance)
	case t.Workers < 0:
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, t.Workers)
	}
	if _, err := logging.ParseLevel(t.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts validated tunables into generation options.
// Workers = 0 becomes GOMAXPROCS.
func (t Tunables) Options() []structure.Option {
	workers := t.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	opts := []structure.Option{
		structure.WithEpsilon(t.Epsilon),
		structure.WithSafetyScale(t.SafetyScale),
		structure.WithPerpScale(t.PerpScale),
		structure.WithTolerance(t.Tolerance),
		structure.WithWorkers(workers),
	}
	if t.CheckOverlaps {
		opts = append(opts, structure.WithOverlapCheck())
	}

	return opts
}

// Logging returns the logger configuration writing to out.
// The level is assumed valid; see Validate.
func (t Tunables) Logging(out io.Writer) logging.Config {
	lvl, _ := logging.ParseLevel(t.Log.Level)

	return logging.Config{Level: lvl, JSON: t.Log.JSON, Output: out}
}

func nonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
