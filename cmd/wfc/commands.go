package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "wfc").
		WithSynopsis("wfc [opts] command [opts]").
		WithDescription("wfc synthesizes textures from a small sample image.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return wfcMain(cfg, cc, args)
		}).
		WithSubs(
			GenerateCommand(cfg),
			InfoCommand(cfg))
}

func wfcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func GenerateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenerateConfig{
		MainConfig: mainCfg,
		N:          3,
		Symmetry:   8,
		Width:      48,
		Height:     48,
		PeriodicIn: true,
		Attempts:   10,
		Out:        "out.png",
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Generate, "generate").
		WithAliases("g", "gen").
		WithSynopsis("generate [opts] <sample.{png,jpg,bmp}>").
		WithDescription("generate a texture locally similar to the sample image").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return generate(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{
		MainConfig: mainCfg,
		N:          3,
		Symmetry:   8,
		PeriodicIn: true,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info [opts] <sample.{png,jpg,bmp}>").
		WithDescription("report colors, patterns and weights extracted from a sample").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}
