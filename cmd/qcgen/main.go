// SPDX-License-Identifier: MIT

// Command qcgen generates the atoms of a cut-and-project structure.
//
// Usage:
//
//	qcgen MODEL.json RPAR [PERP_SCALE] [flags]
//
// The first output line is the atom count; every further line is
// "<label> <x> <y> ...", the Cartesian position in physical space.
// Logs go to stderr.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/quasicut/config"
	"github.com/katalvlaran/quasicut/logging"
	"github.com/katalvlaran/quasicut/model"
	"github.com/katalvlaran/quasicut/structure"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qcgen:", err)
		os.Exit(1)
	}
}

type flags struct {
	config        string
	logLevel      string
	logJSON       bool
	workers       int
	checkOverlaps bool
	svg           string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "qcgen MODEL.json RPAR [PERP_SCALE]",
		Short: "Generate the atoms of a quasicrystal model within a cutoff radius",
		Long: `qcgen reads a superspace model (JSON), enumerates the lattice points whose
projections fall within RPAR in physical space and within the occupation-domain
radius times PERP_SCALE in perpendicular space, and prints the atoms whose
perpendicular projection lies in their site's occupation domain.`,
		Args:          cobra.RangeArgs(2, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML tunables file")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.BoolVar(&f.logJSON, "log-json", false, "log as JSON")
	fl.IntVar(&f.workers, "workers", 1, "sites generated concurrently, 0 = GOMAXPROCS")
	fl.BoolVar(&f.checkOverlaps, "check-overlaps", false, "count points contained in more than one fragment")
	fl.StringVar(&f.svg, "svg", "", "also draw the structure to this SVG file")

	return cmd
}

func run(cmd *cobra.Command, args []string, f flags, stdout, stderr io.Writer) error {
	tun := config.Default()
	if f.config != "" {
		var err error
		if tun, err = config.Load(f.config); err != nil {
			return err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("log-level") {
		tun.Log.Level = f.logLevel
	}
	if fl.Changed("log-json") {
		tun.Log.JSON = f.logJSON
	}
	if fl.Changed("workers") {
		tun.Workers = f.workers
	}
	if fl.Changed("check-overlaps") {
		tun.CheckOverlaps = f.checkOverlaps
	}

	rPar, err := parsePositive("RPAR", args[1])
	if err != nil {
		return err
	}
	if len(args) == 3 {
		if tun.PerpScale, err = parsePositive("PERP_SCALE", args[2]); err != nil {
			return err
		}
	}
	if err = tun.Validate(); err != nil {
		return err
	}
	log := logging.New(tun.Logging(stderr))

	m, err := model.Load(args[0])
	if err != nil {
		return err
	}
	log.Info("model loaded",
		"path", args[0],
		"dimPar", m.DimPar,
		"dimPerp", m.DimPerp,
		"symmetryOps", len(m.SymmetryOps),
		"sites", len(m.AtomSites))

	start := time.Now()
	opts := append(tun.Options(), structure.WithContext(cmd.Context()), structure.WithLogger(log))
	atoms, stats, err := structure.Generate(m, rPar, opts...)
	if err != nil {
		return err
	}
	log.Info("structure generated",
		"rPar", rPar,
		"perpScale", tun.PerpScale,
		"atoms", len(atoms),
		"candidates", stats.Candidates,
		"elapsed", time.Since(start))
	if stats.Overlaps > 0 {
		log.Warn("overlapping occupation domains", "points", stats.Overlaps)
	}

	if err = writeAtoms(stdout, atoms); err != nil {
		return err
	}
	if f.svg != "" {
		return writeSVGFile(f.svg, atoms)
	}

	return nil
}

func parsePositive(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if !(v > 0) {
		return 0, fmt.Errorf("%s=%s: %w", name, s, model.ErrInvalidCutoff)
	}

	return v, nil
}

func writeAtoms(w io.Writer, atoms []structure.Atom) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(atoms))
	for _, a := range atoms {
		bw.WriteString(a.Label)
		for _, x := range a.Position {
			bw.WriteByte(' ')
			bw.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeSVGFile(path string, atoms []structure.Atom) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = structure.WriteSVG(fh, atoms, structure.DefaultSVGOptions()); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
