package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/katalvlaran/wfc/overlapping"
	"github.com/katalvlaran/wfc/solver"
)

func generate(cfg *GenerateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Generate.Parse(cc, args)
	if err != nil {
		cfg.Generate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: generate requires 1 sample image, got %v", cli.ErrUsage, args)
	}

	sample, err := loadSample(cc, args[0])
	if err != nil {
		return err
	}

	heuristic := solver.Entropy
	if cfg.Scanline {
		heuristic = solver.Scanline
	}
	m, err := overlapping.NewModel(sample, overlapping.Options{
		N:              cfg.N,
		Symmetry:       cfg.Symmetry,
		Width:          cfg.Width,
		Height:         cfg.Height,
		PeriodicInput:  cfg.PeriodicIn,
		PeriodicOutput: cfg.PeriodicOut,
		Ground:         cfg.Ground,
		Heuristic:      heuristic,
		StepLimit:      cfg.Steps,
	})
	if err != nil {
		return err
	}
	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "%s %d colors, %d patterns\n",
			color.CyanString("model:"), m.ColorCount(), m.PatternCount())
	}

	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	base := solver.RNGFromSeed(int64(cfg.Seed))

	var degraded *overlapping.Result
	for attempt := uint64(0); attempt < uint64(attempts); attempt++ {
		res, err := m.GenerateWithRNG(solver.DeriveRNG(base, attempt))
		switch {
		case err == nil:
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "%s attempt %d/%d converged\n",
					color.GreenString("solved:"), attempt+1, attempts)
			}
			return writePNG(cc, cfg.Out, res.Image)
		case errors.Is(err, solver.ErrContradiction):
			degraded = res
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "%s attempt %d/%d hit a contradiction\n",
					color.YellowString("retry:"), attempt+1, attempts)
			}
		default:
			// Ground failures and exhausted step budgets do not improve with a
			// different RNG stream.
			return err
		}
	}

	if cfg.Salvage && degraded != nil {
		fmt.Fprintf(os.Stderr, "%s writing degraded render to %s\n",
			color.YellowString("salvage:"), cfg.Out)
		if err := writePNG(cc, cfg.Out, degraded.Image); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "%s no solution in %d attempts\n",
		color.RedString("failed:"), attempts)
	return cli.ExitCodeErr(1)
}
