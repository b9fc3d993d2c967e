package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/katalvlaran/wfc/overlapping"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		cfg.Info.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: info requires 1 sample image, got %v", cli.ErrUsage, args)
	}

	sample, err := loadSample(cc, args[0])
	if err != nil {
		return err
	}

	// The output size does not affect extraction; the minimal legal size
	// keeps model construction cheap.
	m, err := overlapping.NewModel(sample, overlapping.Options{
		N:             cfg.N,
		Symmetry:      cfg.Symmetry,
		Width:         cfg.N,
		Height:        cfg.N,
		PeriodicInput: cfg.PeriodicIn,
	})
	if err != nil {
		return err
	}

	weights := m.Weights()
	total := 0.0
	for _, w := range weights {
		total += w
	}
	sorted := append([]float64(nil), weights...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	fmt.Fprintf(cc.Out, "%s %dx%d, %d colors\n",
		color.CyanString("sample:"), sample.Width, sample.Height, m.ColorCount())
	fmt.Fprintf(cc.Out, "%s %d unique (N=%d, symmetry=%d), total weight %.0f\n",
		color.CyanString("patterns:"), m.PatternCount(), cfg.N, cfg.Symmetry, total)
	fmt.Fprintf(cc.Out, "%s heaviest %.0f, lightest %.0f\n",
		color.CyanString("spread:"), sorted[0], sorted[len(sorted)-1])
	return nil
}
